/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package controllers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Digizuite/postgres-topology-operator/pkg/management/log"
	"github.com/Digizuite/postgres-topology-operator/pkg/management/postgres"
)

// getSchemaOwner looks up the current owner of a schema, telling
// whether the schema exists at all
func getSchemaOwner(
	ctx context.Context,
	connection *postgres.AdminConnection,
	schema string,
) (owner string, exists bool, err error) {
	row := connection.DB.QueryRowContext(ctx,
		"SELECT schema_owner FROM information_schema.schemata WHERE schema_name = $1", schema)

	err = row.Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("while looking up schema %v: %w", schema, err)
	}

	return owner, true, nil
}

// reconcileSchemaInDatabase creates the schema or aligns its owner
func reconcileSchemaInDatabase(
	ctx context.Context,
	connection *postgres.AdminConnection,
	schema string,
	ownerName *string,
) error {
	contextLogger := log.FromContext(ctx)

	currentOwner, exists, err := getSchemaOwner(ctx, connection, schema)
	if err != nil {
		return err
	}

	switch {
	case exists && ownerName == nil:
		contextLogger.Info("Schema already exists without a declared owner", "schema", schema)

	case exists && *ownerName == currentOwner:
		contextLogger.Info("Schema already exists with the declared owner",
			"schema", schema, "owner", currentOwner)

	case exists:
		contextLogger.Info("Changing schema owner",
			"schema", schema, "currentOwner", currentOwner, "owner", *ownerName)
		if err := execute(ctx, connection,
			fmt.Sprintf("ALTER SCHEMA %v OWNER TO %v", schema, *ownerName)); err != nil {
			return err
		}

	case ownerName == nil:
		contextLogger.Info("Creating schema", "schema", schema)
		if err := execute(ctx, connection,
			fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %v", schema)); err != nil {
			return err
		}

	default:
		contextLogger.Info("Creating schema with owner", "schema", schema, "owner", *ownerName)
		if err := execute(ctx, connection,
			fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %v AUTHORIZATION %v", schema, *ownerName)); err != nil {
			return err
		}
	}

	return nil
}

// dropSchema drops a schema and everything it contains
func dropSchema(ctx context.Context, connection *postgres.AdminConnection, schema string) error {
	return execute(ctx, connection, fmt.Sprintf("DROP SCHEMA IF EXISTS %v CASCADE", schema))
}
