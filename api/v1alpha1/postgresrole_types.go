/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PostgresRoleSpec describes a role managed inside a PostgreSQL server
type PostgresRoleSpec struct {
	// The name of the SQL role
	Role string `json:"role"`

	// The password of the role
	Password PostgresPassword `json:"password"`

	// When set, a PgBouncerUser with the same credentials is
	// registered in the referenced PgBouncer
	// +optional
	RegisterInPgBouncer *PgBouncerReference `json:"registerInPgBouncer,omitempty"`

	// When true, the role is granted to the administrative user of
	// the connection
	// +optional
	GrantRoleToAdminUser *bool `json:"grantRoleToAdminUser,omitempty"`

	// The admin connection used to manage the role
	Connection PostgresAdminConnectionReference `json:"connection"`
}

// StatusEncodedPassword remembers the encoded form of a previously
// applied password together with the declared value it was derived
// from
type StatusEncodedPassword struct {
	// The declared password the encoding was computed from
	Original PostgresPassword `json:"original"`

	// The encoded password that was applied
	Encoded string `json:"encoded"`
}

// PostgresRoleStatus is the status of a PostgresRole
type PostgresRoleStatus struct {
	// The most recently applied password encoding
	// +optional
	EncodedPassword *StatusEncodedPassword `json:"encodedPassword,omitempty"`
}

// +genclient
// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Role",type="string",JSONPath=".spec.role",description="Name of the role"

// PostgresRole is a role managed inside a PostgreSQL server
type PostgresRole struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata"`

	Spec PostgresRoleSpec `json:"spec"`
	// +optional
	Status PostgresRoleStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// PostgresRoleList contains a list of PostgresRole
type PostgresRoleList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PostgresRole `json:"items"`
}

// GetConnectionReference implements the HasAdminConnection interface
func (r *PostgresRole) GetConnectionReference() PostgresAdminConnectionReference {
	return r.Spec.Connection
}

func init() {
	SchemeBuilder.Register(&PostgresRole{}, &PostgresRoleList{})
}
