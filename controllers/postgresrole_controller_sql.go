/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package controllers

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"
	"github.com/Digizuite/postgres-topology-operator/pkg/management/log"
	"github.com/Digizuite/postgres-topology-operator/pkg/management/postgres"
	"github.com/Digizuite/postgres-topology-operator/pkg/metrics"
)

// roleExists tells whether a role is already defined in the server
func roleExists(ctx context.Context, connection *postgres.AdminConnection, role string) (bool, error) {
	row := connection.DB.QueryRowContext(ctx,
		"SELECT count(*) FROM pg_roles WHERE rolname = $1", role)

	var count int
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("while looking up role %v: %w", role, err)
	}

	return count > 0, nil
}

// dropRole revokes the privileges of a role on the admin database and
// drops it
func dropRole(ctx context.Context, connection *postgres.AdminConnection, role string) error {
	contextLogger := log.FromContext(ctx)

	contextLogger.Info("Dropping role", "role", role)

	if err := execute(ctx, connection,
		fmt.Sprintf("REVOKE ALL PRIVILEGES ON DATABASE %v FROM %v CASCADE",
			connection.Database, role)); err != nil {
		return err
	}

	if err := execute(ctx, connection, fmt.Sprintf("DROP ROLE %v", role)); err != nil {
		return err
	}

	contextLogger.Info("Dropped role", "role", role)
	return nil
}

// reconcileRoleInDatabase upserts the role, resets its password and
// applies the declared grants
func reconcileRoleInDatabase(
	ctx context.Context,
	connection *postgres.AdminConnection,
	role *apiv1alpha1.PostgresRole,
) error {
	contextLogger := log.FromContext(ctx)

	username := role.Spec.Role
	passwordText := role.Spec.Password.PasswordText(username)

	exists, err := roleExists(ctx, connection, username)
	if err != nil {
		return err
	}

	if exists {
		contextLogger.Info("Role already exists, updating password to be safe", "role", username)
		err = execute(ctx, connection,
			fmt.Sprintf("ALTER USER %v WITH PASSWORD %v", username, pq.QuoteLiteral(passwordText)))
	} else {
		contextLogger.Info("Role does not exist, creating it", "role", username)
		err = execute(ctx, connection,
			fmt.Sprintf("CREATE USER %v WITH PASSWORD %v", username, pq.QuoteLiteral(passwordText)))
	}
	if err != nil {
		return err
	}

	if role.Spec.GrantRoleToAdminUser != nil && *role.Spec.GrantRoleToAdminUser {
		contextLogger.Info("Granting role to admin user",
			"role", username, "adminUser", connection.AdminUsername)
		if err := execute(ctx, connection,
			fmt.Sprintf("GRANT %v TO %v", username, connection.AdminUsername)); err != nil {
			return err
		}
	}

	contextLogger.Info("Granting connect on database",
		"role", username, "database", connection.Database)
	if err := execute(ctx, connection,
		fmt.Sprintf("GRANT CONNECT ON DATABASE %v TO %v", connection.Database, username)); err != nil {
		return err
	}

	contextLogger.Info("Postgres role reconciled in database", "role", username)
	return nil
}

// execute runs a statement on the admin connection, counting it in
// the operator metrics
func execute(ctx context.Context, connection *postgres.AdminConnection, query string) error {
	metrics.PostgresStatements.Inc()

	if _, err := connection.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("while executing %q: %w", query, err)
	}

	return nil
}
