/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PgBouncerChild is implemented by the resources belonging to a
// PgBouncer instance: PgBouncerDatabase and PgBouncerUser
type PgBouncerChild interface {
	metav1.Object

	// GetPgBouncerReference returns the reference to the owning
	// pooler instance
	GetPgBouncerReference() *PgBouncerReference
}

// HasAdminConnection is implemented by the resources carrying a
// reference to a PostgresAdminConnection
type HasAdminConnection interface {
	metav1.Object

	// GetConnectionReference returns the reference to the admin
	// connection to use
	GetConnectionReference() PostgresAdminConnectionReference
}

// IsForPgBouncer tells whether a child resource belongs to the passed
// pooler instance, comparing the referenced name and the effective
// namespace of the reference
func IsForPgBouncer(child PgBouncerChild, bouncer *PgBouncer) bool {
	ref := child.GetPgBouncerReference()
	if ref == nil {
		return false
	}

	return ref.Name == bouncer.Name && ref.EffectiveNamespace(child) == bouncer.Namespace
}

// EffectiveNamespace returns the namespace the reference points into,
// defaulting to the namespace of the referring object
func (ref *PgBouncerReference) EffectiveNamespace(from metav1.Object) string {
	if ref.Namespace != "" {
		return ref.Namespace
	}

	return from.GetNamespace()
}

// EffectiveNamespace returns the namespace the reference points into,
// defaulting to the namespace of the referring object
func (ref *PostgresAdminConnectionReference) EffectiveNamespace(from metav1.Object) string {
	if ref.Namespace != "" {
		return ref.Namespace
	}

	return from.GetNamespace()
}

// EffectiveNamespace returns the namespace the reference points into,
// defaulting to the namespace of the referring object
func (ref *PostgresRoleReference) EffectiveNamespace(from metav1.Object) string {
	if ref.Namespace != "" {
		return ref.Namespace
	}

	return from.GetNamespace()
}
