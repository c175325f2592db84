/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

// Package utils contains the constants shared by the controllers and
// the specification builders
package utils

const (
	// FinalizerName is the finalizer placed on the resources whose
	// deletion requires cleanup inside PostgreSQL
	FinalizerName = "postgres.digizuite.com/finalizer"

	// FieldManager is the field manager used on every server-side
	// apply issued by the operator
	FieldManager = "postgres-topology-operator"

	// AppLabelName is the name of the label carrying the application
	// name on the pooler Pods
	AppLabelName = "app"

	// PgBouncerOwnerLabelName is the name of the label tying the
	// pooler Pods to the PgBouncer resource owning them
	PgBouncerOwnerLabelName = "postgres-topology-operator/pg_bouncer"

	// PgBouncerSpecHashAnnotationName is the name of the annotation
	// containing the hash of the PgBouncer spec rendered into a
	// Deployment
	PgBouncerSpecHashAnnotationName = "postgres.digizuite.com/pgBouncerSpecHash"
)
