/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PostgresAdminConnectionSpec describes how to reach a PostgreSQL
// server with administrative privileges
type PostgresAdminConnectionSpec struct {
	// The hostname of the PostgreSQL server
	Host string `json:"host"`

	// The port of the PostgreSQL server
	Port int32 `json:"port"`

	// The name of the administrative user
	Username string `json:"username"`

	// The password of the administrative user
	Password PostgresPassword `json:"password"`

	// The database to connect to
	Database string `json:"database"`

	// The sslmode used when connecting
	SslMode PostgresSslMode `json:"sslMode"`

	// The SCRAM channel binding configuration. Defaults to `disable`.
	// +optional
	ChannelBinding *ChannelBinding `json:"channelBinding,omitempty"`
}

// +genclient
// +kubebuilder:object:root=true
// +kubebuilder:printcolumn:name="Host",type="string",JSONPath=".spec.host",description="Postgres host"
// +kubebuilder:printcolumn:name="Database",type="string",JSONPath=".spec.database",description="Name of the database"
// +kubebuilder:printcolumn:name="Username",type="string",JSONPath=".spec.username",description="Name of the admin user"

// PostgresAdminConnection is a credential and endpoint to a PostgreSQL
// server, referenced by the other resources of this operator
type PostgresAdminConnection struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata"`

	Spec PostgresAdminConnectionSpec `json:"spec"`
}

// +kubebuilder:object:root=true

// PostgresAdminConnectionList contains a list of PostgresAdminConnection
type PostgresAdminConnectionList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PostgresAdminConnection `json:"items"`
}

func init() {
	SchemeBuilder.Register(&PostgresAdminConnection{}, &PostgresAdminConnectionList{})
}
