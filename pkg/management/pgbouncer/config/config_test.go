/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package config

import (
	"k8s.io/utils/ptr"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// sha256 of the empty input
const emptyInputHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

var _ = Describe("Configuration materialization", func() {
	var spec *apiv1alpha1.PgBouncerSpec

	BeforeEach(func() {
		spec = &apiv1alpha1.PgBouncerSpec{
			PgBouncer: apiv1alpha1.PgBouncerSettings{
				PoolMode:         apiv1alpha1.PgBouncerPoolModeTransaction,
				AuthType:         apiv1alpha1.PgBouncerAuthTypeScramSha256,
				ServerTlsSslMode: apiv1alpha1.PostgresSslModePrefer,
				ClientTlsSslMode: apiv1alpha1.PostgresSslModeDisable,
				MaxClientConn:    200,
				MaxDbConnections: 20,
			},
			Service: apiv1alpha1.PgBouncerServiceSettings{
				Name: "main-pooler",
			},
		}
	})

	It("renders the pgbouncer section in a fixed order", func() {
		files := Materialize(spec, nil, nil)
		Expect(files.Ini).To(Equal("[pgbouncer]\n" +
			"pool_mode = transaction\n" +
			"listen_port = 5432\n" +
			"listen_addr = 0.0.0.0\n" +
			"auth_type = scram-sha-256\n" +
			"server_tls_sslmode = prefer\n" +
			"client_tls_sslmode = disable\n" +
			"max_client_conn = 200\n" +
			"max_db_connections = 20\n" +
			"auth_file = /etc/pgbouncer/userlist.txt\n" +
			"[databases]\n"))
	})

	It("renders admin users and ignored startup parameters when present", func() {
		spec.PgBouncer.AdminUsers = []string{"postgres", "admin"}
		spec.PgBouncer.IgnoreStartupParameters = []string{"extra_float_digits"}

		files := Materialize(spec, nil, nil)
		Expect(files.Ini).To(ContainSubstring("auth_type = scram-sha-256\n" +
			"admin_users = postgres, admin\n" +
			"ignore_startup_parameters = extra_float_digits\n" +
			"server_tls_sslmode = prefer\n"))
	})

	It("renders one databases entry per route, with the trailing space retained", func() {
		databases := []apiv1alpha1.PgBouncerDatabaseSpec{
			{
				ExposedDatabaseName: "app",
				Host:                "db.local",
			},
			{
				ExposedDatabaseName:  "reports",
				InternalDatabaseName: ptr.To("reporting"),
				Host:                 "db.local",
				Port:                 ptr.To(int32(5433)),
				User:                 ptr.To("reporter"),
			},
		}

		files := Materialize(spec, databases, nil)
		Expect(files.Ini).To(HaveSuffix("[databases]\n" +
			"app = host=db.local \n" +
			"reports = host=db.local port=5433 user=reporter dbname=reporting \n"))
	})

	It("sorts the userlist by username", func() {
		users := []apiv1alpha1.PgBouncerUserSpec{
			{Username: "bob", Password: apiv1alpha1.PostgresPassword{Plain: ptr.To("b")}},
			{Username: "alice", Password: apiv1alpha1.PostgresPassword{Plain: ptr.To("a")}},
			{Username: "carol", Password: apiv1alpha1.PostgresPassword{Plain: ptr.To("c")}},
		}

		files := Materialize(spec, nil, users)
		Expect(files.UserList).To(Equal("\"alice\" \"a\"\n\"bob\" \"b\"\n\"carol\" \"c\"\n"))
		// sha256 of "aliceabobbcarolc"
		Expect(files.UserListHash).To(Equal(
			"0b7a020fff00142859e368dddb997db38f628cd1b4a2f64832e6375135db0da3"))
	})

	It("computes the same hash for any permutation of the users", func() {
		users := []apiv1alpha1.PgBouncerUserSpec{
			{Username: "bob", Password: apiv1alpha1.PostgresPassword{Plain: ptr.To("b")}},
			{Username: "alice", Password: apiv1alpha1.PostgresPassword{Plain: ptr.To("a")}},
			{Username: "carol", Password: apiv1alpha1.PostgresPassword{Plain: ptr.To("c")}},
		}
		permuted := []apiv1alpha1.PgBouncerUserSpec{users[2], users[0], users[1]}

		Expect(Materialize(spec, nil, users).UserListHash).
			To(Equal(Materialize(spec, nil, permuted).UserListHash))
	})

	It("hashes the raw credentials even when the written form is encoded", func() {
		users := []apiv1alpha1.PgBouncerUserSpec{
			{Username: "app", Password: apiv1alpha1.PostgresPassword{ScramSHA256: ptr.To("pencil")}},
		}

		first := Materialize(spec, nil, users)
		second := Materialize(spec, nil, users)

		// the scram salt makes the written text differ between calls,
		// while the hash stays stable
		Expect(first.UserList).ToNot(Equal(second.UserList))
		Expect(first.UserListHash).To(Equal(second.UserListHash))
	})

	It("renders an empty user set as an empty userlist", func() {
		files := Materialize(spec, nil, nil)
		Expect(files.UserList).To(BeEmpty())
		Expect(files.UserListHash).To(Equal(emptyInputHash))
	})

	It("is deterministic for identical inputs", func() {
		databases := []apiv1alpha1.PgBouncerDatabaseSpec{
			{ExposedDatabaseName: "app", Host: "db.local"},
		}
		users := []apiv1alpha1.PgBouncerUserSpec{
			{Username: "app", Password: apiv1alpha1.PostgresPassword{Plain: ptr.To("pw")}},
		}

		first := Materialize(spec, databases, users)
		second := Materialize(spec, databases, users)
		Expect(first).To(Equal(second))
	})
})
