/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package v1alpha1

// PostgresSslMode is the sslmode requested when connecting to a
// PostgreSQL server
// +kubebuilder:validation:Enum=disable;allow;prefer;require;verify-ca;verify-full
type PostgresSslMode string

const (
	// PostgresSslModeDisable never uses TLS
	PostgresSslModeDisable = PostgresSslMode("disable")

	// PostgresSslModeAllow uses TLS only when the server insists on it
	PostgresSslModeAllow = PostgresSslMode("allow")

	// PostgresSslModePrefer uses TLS when the server supports it
	PostgresSslModePrefer = PostgresSslMode("prefer")

	// PostgresSslModeRequire requires TLS without certificate verification
	PostgresSslModeRequire = PostgresSslMode("require")

	// PostgresSslModeVerifyCa requires TLS and verifies the server certificate
	PostgresSslModeVerifyCa = PostgresSslMode("verify-ca")

	// PostgresSslModeVerifyFull requires TLS and verifies the server
	// certificate and its hostname
	PostgresSslModeVerifyFull = PostgresSslMode("verify-full")
)

// ChannelBinding is the SCRAM channel binding configuration used when
// connecting to a PostgreSQL server
// +kubebuilder:validation:Enum=disable;prefer;require
type ChannelBinding string

const (
	// ChannelBindingDisable does not use channel binding
	ChannelBindingDisable = ChannelBinding("disable")

	// ChannelBindingPrefer attempts channel binding but allows sessions without it
	ChannelBindingPrefer = ChannelBinding("prefer")

	// ChannelBindingRequire requires the use of channel binding
	ChannelBindingRequire = ChannelBinding("require")
)

// PgBouncerReference points to a PgBouncer object, possibly in another
// namespace. When the namespace is not set, the namespace of the
// referring object is used.
type PgBouncerReference struct {
	// The name of the PgBouncer object
	Name string `json:"name"`

	// The namespace of the PgBouncer object. Defaults to the namespace
	// of the object holding the reference.
	// +optional
	Namespace string `json:"namespace,omitempty"`
}

// PostgresAdminConnectionReference points to a PostgresAdminConnection
// object, possibly in another namespace
type PostgresAdminConnectionReference struct {
	// The name of the PostgresAdminConnection object
	Name string `json:"name"`

	// The namespace of the PostgresAdminConnection object. Defaults to
	// the namespace of the object holding the reference.
	// +optional
	Namespace string `json:"namespace,omitempty"`
}

// PostgresRoleReference points to a PostgresRole object, possibly in
// another namespace
type PostgresRoleReference struct {
	// The name of the PostgresRole object
	Name string `json:"name"`

	// The namespace of the PostgresRole object. Defaults to the
	// namespace of the object holding the reference.
	// +optional
	Namespace string `json:"namespace,omitempty"`
}
