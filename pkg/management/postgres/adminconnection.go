/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

// Package postgres contains the helpers used to reach a PostgreSQL
// server with administrative privileges
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	// this is needed to correctly open the sql connection with the pq driver
	_ "github.com/lib/pq"
	"sigs.k8s.io/controller-runtime/pkg/client"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"
	"github.com/Digizuite/postgres-topology-operator/pkg/management/log"
)

// AdminConnection is an open administrative connection to a
// PostgreSQL server, remembering the admin user and database names
// for use in SQL string assembly
type AdminConnection struct {
	// DB is the open connection
	DB *sql.DB

	// AdminUsername is the name of the administrative user the
	// connection belongs to
	AdminUsername string

	// Database is the name of the database the connection is opened
	// against
	Database string
}

// Close releases the underlying connection
func (conn *AdminConnection) Close() error {
	return conn.DB.Close()
}

// OpenAdminConnection resolves the admin connection reference of the
// passed resource and opens a connection to the server it describes.
// A missing PostgresAdminConnection object is a failure the caller is
// expected to retry.
func OpenAdminConnection(
	ctx context.Context,
	kubeClient client.Client,
	resource apiv1alpha1.HasAdminConnection,
) (*AdminConnection, error) {
	reference := resource.GetConnectionReference()

	var adminConnection apiv1alpha1.PostgresAdminConnection
	err := kubeClient.Get(ctx, client.ObjectKey{
		Name:      reference.Name,
		Namespace: reference.EffectiveNamespace(resource),
	}, &adminConnection)
	if err != nil {
		return nil, fmt.Errorf("while getting postgres admin connection %q: %w", reference.Name, err)
	}

	return Open(ctx, &adminConnection.Spec)
}

// Open connects to the PostgreSQL server described by the passed spec
func Open(ctx context.Context, spec *apiv1alpha1.PostgresAdminConnectionSpec) (*AdminConnection, error) {
	contextLogger := log.FromContext(ctx)

	channelBinding := apiv1alpha1.ChannelBindingDisable
	if spec.ChannelBinding != nil {
		channelBinding = *spec.ChannelBinding
	}
	// The driver negotiates channel binding on its own and exposes no
	// knob for it, so the computed preference is only logged
	contextLogger.Debug("Opening admin connection",
		"host", spec.Host,
		"database", spec.Database,
		"channelBinding", transportChannelBinding(channelBinding))

	dsn := connectionString(spec)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("while opening connection to %v: %w", spec.Host, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("while connecting to %v: %w", spec.Host, err)
	}

	return &AdminConnection{
		DB:            db,
		AdminUsername: spec.Username,
		Database:      spec.Database,
	}, nil
}

// connectionString assembles the keyword/value connection string for
// the passed spec
func connectionString(spec *apiv1alpha1.PostgresAdminConnectionSpec) string {
	parameters := []string{
		fmt.Sprintf("host=%v", escapeConnectionValue(spec.Host)),
		fmt.Sprintf("port=%v", spec.Port),
		fmt.Sprintf("user=%v", escapeConnectionValue(spec.Username)),
		fmt.Sprintf("password=%v", escapeConnectionValue(spec.Password.RawText())),
		fmt.Sprintf("dbname=%v", escapeConnectionValue(spec.Database)),
		fmt.Sprintf("sslmode=%v", transportSslMode(spec.SslMode)),
	}

	return strings.Join(parameters, " ")
}

// transportSslMode maps the declared sslmode onto the one handed to
// the driver. The driver verifies nothing under `require`, which is
// why verify-ca and verify-full are currently collapsed onto it.
func transportSslMode(declared apiv1alpha1.PostgresSslMode) apiv1alpha1.PostgresSslMode {
	switch declared {
	case apiv1alpha1.PostgresSslModeDisable:
		return apiv1alpha1.PostgresSslModeDisable
	case apiv1alpha1.PostgresSslModeAllow, apiv1alpha1.PostgresSslModePrefer:
		return apiv1alpha1.PostgresSslModePrefer
	default:
		return apiv1alpha1.PostgresSslModeRequire
	}
}

// transportChannelBinding maps the declared channel binding onto the
// transport preference.
//
// NOTE: `require` maps to `prefer` here. This reproduces the behavior
// the operator has always had; see the open question decisions in
// DESIGN.md before changing it.
func transportChannelBinding(declared apiv1alpha1.ChannelBinding) apiv1alpha1.ChannelBinding {
	switch declared {
	case apiv1alpha1.ChannelBindingDisable:
		return apiv1alpha1.ChannelBindingDisable
	case apiv1alpha1.ChannelBindingPrefer:
		return apiv1alpha1.ChannelBindingPrefer
	case apiv1alpha1.ChannelBindingRequire:
		return apiv1alpha1.ChannelBindingPrefer
	default:
		return apiv1alpha1.ChannelBindingDisable
	}
}

// escapeConnectionValue quotes a value for use inside a keyword/value
// connection string
func escapeConnectionValue(value string) string {
	if value == "" {
		return "''"
	}

	if !strings.ContainsAny(value, " '\\") {
		return value
	}

	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `'`, `\'`)
	return "'" + escaped + "'"
}
