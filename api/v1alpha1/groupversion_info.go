/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

// Package v1alpha1 contains API Schema definitions for the
// postgres.digizuite.com v1alpha1 API group
// +kubebuilder:object:generate=true
// +groupName=postgres.digizuite.com
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

const (
	// PostgresAdminConnectionKind is the kind name of PostgresAdminConnections
	PostgresAdminConnectionKind = "PostgresAdminConnection"

	// PostgresRoleKind is the kind name of PostgresRoles
	PostgresRoleKind = "PostgresRole"

	// PostgresSchemaKind is the kind name of PostgresSchemas
	PostgresSchemaKind = "PostgresSchema"

	// PgBouncerKind is the kind name of PgBouncers
	PgBouncerKind = "PgBouncer"

	// PgBouncerDatabaseKind is the kind name of PgBouncerDatabases
	PgBouncerDatabaseKind = "PgBouncerDatabase"

	// PgBouncerUserKind is the kind name of PgBouncerUsers
	PgBouncerUserKind = "PgBouncerUser"
)

var (
	// GroupVersion is group version used to register these objects
	GroupVersion = schema.GroupVersion{Group: "postgres.digizuite.com", Version: "v1alpha1"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)
