/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"
)

const (
	// IniFileName is the key of the pgbouncer configuration inside the
	// generated ConfigMap, and the name of the mounted file
	IniFileName = "pgbouncer.ini"

	// UserListFileName is the key of the userlist inside the generated
	// ConfigMap, and the name of the mounted file
	UserListFileName = "userlist.txt"

	// UserListHashKey is the key of the userlist content fingerprint
	// inside the generated ConfigMap
	UserListHashKey = "userlisthash"

	// ConfigDirectory is where the configuration ConfigMap is mounted
	// inside the pooler Pod
	ConfigDirectory = "/etc/pgbouncer"

	// PgBouncerPort is the port the pooler listens on
	PgBouncerPort = 5432
)

// Files is the rendered configuration of a pooler instance
type Files struct {
	// The pgbouncer.ini content
	Ini string

	// The userlist.txt content
	UserList string

	// The fingerprint of the userlist, computed over the raw
	// credentials
	UserListHash string
}

// Materialize renders the configuration of a pooler instance from its
// spec and the routes and users belonging to it
func Materialize(
	spec *apiv1alpha1.PgBouncerSpec,
	databases []apiv1alpha1.PgBouncerDatabaseSpec,
	users []apiv1alpha1.PgBouncerUserSpec,
) Files {
	userList, userListHash := buildUserList(users)

	return Files{
		Ini:          buildIni(spec, databases),
		UserList:     userList,
		UserListHash: userListHash,
	}
}

// buildIni renders the pgbouncer.ini content
func buildIni(spec *apiv1alpha1.PgBouncerSpec, databases []apiv1alpha1.PgBouncerDatabaseSpec) string {
	builder := NewIniBuilder()

	builder.Section("pgbouncer")

	settings := &spec.PgBouncer

	builder.Setting("pool_mode", settings.PoolMode)
	builder.Setting("listen_port", PgBouncerPort)
	builder.Setting("listen_addr", "0.0.0.0")
	builder.Setting("auth_type", settings.AuthType)
	builder.CommaSeparated("admin_users", settings.AdminUsers)
	builder.CommaSeparated("ignore_startup_parameters", settings.IgnoreStartupParameters)
	builder.Setting("server_tls_sslmode", settings.ServerTlsSslMode)
	builder.Setting("client_tls_sslmode", settings.ClientTlsSslMode)
	builder.Setting("max_client_conn", settings.MaxClientConn)
	builder.Setting("max_db_connections", settings.MaxDbConnections)
	builder.Setting("auth_file", fmt.Sprintf("%s/%s", ConfigDirectory, UserListFileName))

	builder.Section("databases")
	for i := range databases {
		db := &databases[i]

		value := fmt.Sprintf("host=%v ", db.Host)
		if db.Port != nil {
			value += fmt.Sprintf("port=%v ", *db.Port)
		}
		if db.User != nil {
			value += fmt.Sprintf("user=%v ", *db.User)
		}
		if db.InternalDatabaseName != nil {
			value += fmt.Sprintf("dbname=%v ", *db.InternalDatabaseName)
		}

		builder.Setting(db.ExposedDatabaseName, value)
	}

	return builder.String()
}

// buildUserList renders the userlist.txt content together with its
// fingerprint.
//
// The fingerprint is computed over the raw declared credentials rather
// than the encoded ones: scram encoding draws a fresh salt on every
// call, so the encoded text is not a stable change-detection signal.
func buildUserList(users []apiv1alpha1.PgBouncerUserSpec) (string, string) {
	sorted := make([]apiv1alpha1.PgBouncerUserSpec, len(users))
	copy(sorted, users)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Username < sorted[j].Username
	})

	hasher := sha256.New()

	var userList string
	for i := range sorted {
		user := &sorted[i]

		hasher.Write([]byte(user.Username))
		hasher.Write([]byte(user.Password.RawText()))

		userList += fmt.Sprintf("\"%s\" \"%s\"\n", user.Username, user.Password.PasswordText(user.Username))
	}

	return userList, hex.EncodeToString(hasher.Sum(nil))
}
