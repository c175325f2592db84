/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PgBouncerDatabaseSpec describes one route exposed by a pooler
// instance, rendered as one entry of its [databases] section
type PgBouncerDatabaseSpec struct {
	// The database name offered to connecting clients
	ExposedDatabaseName string `json:"exposedDatabaseName"`

	// The database name used towards the backing server, when it
	// differs from the exposed one
	// +optional
	InternalDatabaseName *string `json:"internalDatabaseName,omitempty"`

	// The hostname of the backing PostgreSQL server
	Host string `json:"host"`

	// The port of the backing PostgreSQL server
	// +optional
	Port *int32 `json:"port,omitempty"`

	// The user connections to this route are forced to
	// +optional
	User *string `json:"user,omitempty"`

	// The pooler instance this route belongs to
	PgBouncer PgBouncerReference `json:"pgBouncer"`
}

// PgBouncerDatabaseStatus is the status of a PgBouncerDatabase
type PgBouncerDatabaseStatus struct {
	// Whether the route has been rendered into the pooler configuration
	// +optional
	Ready bool `json:"ready,omitempty"`
}

// +genclient
// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Database",type="string",JSONPath=".spec.exposedDatabaseName",description="Name of the database"

// PgBouncerDatabase is a route exposed by a managed pooler instance
type PgBouncerDatabase struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata"`

	Spec PgBouncerDatabaseSpec `json:"spec"`
	// +optional
	Status PgBouncerDatabaseStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// PgBouncerDatabaseList contains a list of PgBouncerDatabase
type PgBouncerDatabaseList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PgBouncerDatabase `json:"items"`
}

// GetPgBouncerReference implements the PgBouncerChild interface
func (d *PgBouncerDatabase) GetPgBouncerReference() *PgBouncerReference {
	return &d.Spec.PgBouncer
}

func init() {
	SchemeBuilder.Register(&PgBouncerDatabase{}, &PgBouncerDatabaseList{})
}
