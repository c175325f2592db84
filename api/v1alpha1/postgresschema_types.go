/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PostgresSchemaOwner declares the owner of a schema, either as a
// literal role name or as a reference to a managed PostgresRole.
// Exactly one of the fields must be set.
// +kubebuilder:validation:MaxProperties=1
// +kubebuilder:validation:MinProperties=1
type PostgresSchemaOwner struct {
	// The literal name of the owning role
	// +optional
	Name *string `json:"name,omitempty"`

	// A reference to the managed PostgresRole owning the schema
	// +optional
	ManagedRole *PostgresRoleReference `json:"managedRole,omitempty"`
}

// PostgresSchemaSpec describes a schema managed inside a PostgreSQL
// server
type PostgresSchemaSpec struct {
	// The name of the schema
	Schema string `json:"schema"`

	// The owner of the schema. When unset, ownership is left to the
	// connecting administrative user.
	// +optional
	SchemaOwner *PostgresSchemaOwner `json:"schemaOwner,omitempty"`

	// The admin connection used to manage the schema
	Connection PostgresAdminConnectionReference `json:"connection"`
}

// PostgresSchemaStatus is the status of a PostgresSchema
type PostgresSchemaStatus struct {
}

// +genclient
// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Schema",type="string",JSONPath=".spec.schema",description="Name of the schema"

// PostgresSchema is a schema managed inside a PostgreSQL server
type PostgresSchema struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata"`

	Spec PostgresSchemaSpec `json:"spec"`
	// +optional
	Status PostgresSchemaStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// PostgresSchemaList contains a list of PostgresSchema
type PostgresSchemaList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PostgresSchema `json:"items"`
}

// GetConnectionReference implements the HasAdminConnection interface
func (s *PostgresSchema) GetConnectionReference() PostgresAdminConnectionReference {
	return s.Spec.Connection
}

func init() {
	SchemeBuilder.Register(&PostgresSchema{}, &PostgresSchemaList{})
}
