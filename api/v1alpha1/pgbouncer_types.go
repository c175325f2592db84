/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package v1alpha1

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PgBouncerPoolMode is the pool_mode setting of a pooler instance
// +kubebuilder:validation:Enum=transaction;session;statement
type PgBouncerPoolMode string

const (
	// PgBouncerPoolModeTransaction releases server connections after
	// each transaction
	PgBouncerPoolModeTransaction = PgBouncerPoolMode("transaction")

	// PgBouncerPoolModeSession releases server connections when the
	// client disconnects
	PgBouncerPoolModeSession = PgBouncerPoolMode("session")

	// PgBouncerPoolModeStatement releases server connections after
	// each statement
	PgBouncerPoolModeStatement = PgBouncerPoolMode("statement")
)

// PgBouncerAuthType is the auth_type setting of a pooler instance
// +kubebuilder:validation:Enum=plain;md5;scram-sha-256
type PgBouncerAuthType string

const (
	// PgBouncerAuthTypePlain authenticates with cleartext passwords
	PgBouncerAuthTypePlain = PgBouncerAuthType("plain")

	// PgBouncerAuthTypeMd5 authenticates with md5 verifiers
	PgBouncerAuthTypeMd5 = PgBouncerAuthType("md5")

	// PgBouncerAuthTypeScramSha256 authenticates with SCRAM-SHA-256
	// verifiers
	PgBouncerAuthTypeScramSha256 = PgBouncerAuthType("scram-sha-256")
)

// PgBouncerSettings are the settings rendered into the [pgbouncer]
// section of the generated configuration
type PgBouncerSettings struct {
	// The pooling mode
	PoolMode PgBouncerPoolMode `json:"poolMode"`

	// How clients authenticate against the pooler
	AuthType PgBouncerAuthType `json:"authType"`

	// The users allowed on the pgbouncer admin console
	// +optional
	AdminUsers []string `json:"adminUsers,omitempty"`

	// Startup parameters the pooler accepts and discards instead of
	// refusing the connection
	// +optional
	IgnoreStartupParameters []string `json:"ignoreStartupParameters,omitempty"`

	// The sslmode used on connections towards PostgreSQL
	ServerTlsSslMode PostgresSslMode `json:"serverTlsSslMode"`

	// The sslmode offered to connecting clients
	ClientTlsSslMode PostgresSslMode `json:"clientTlsSslMode"`

	// The maximum number of client connections
	MaxClientConn int32 `json:"maxClientConn"`

	// The maximum number of server connections per database
	MaxDbConnections int32 `json:"maxDbConnections"`
}

// PgBouncerPodOptions are scheduling and sizing options applied to the
// pooler Pods
type PgBouncerPodOptions struct {
	// The node selector of the pooler Pods
	// +optional
	NodeSelector map[string]string `json:"nodeSelector,omitempty"`

	// The resource requirements of the pooler container
	// +optional
	Resources *corev1.ResourceRequirements `json:"resources,omitempty"`
}

// PgBouncerServiceSettings describe the Service exposing the pooler
type PgBouncerServiceSettings struct {
	// The name of the Service
	Name string `json:"name"`

	// Annotations placed on the Service
	// +optional
	Annotations map[string]string `json:"annotations,omitempty"`

	// The port the Service listens on. Defaults to 5432.
	// +optional
	Port *int32 `json:"port,omitempty"`
}

// PgBouncerSpec describes a managed pooler instance
type PgBouncerSpec struct {
	// The pooler settings
	PgBouncer PgBouncerSettings `json:"pgBouncer"`

	// Scheduling and sizing options for the pooler Pods
	// +optional
	PodOptions *PgBouncerPodOptions `json:"podOptions,omitempty"`

	// The Service exposing the pooler
	Service PgBouncerServiceSettings `json:"service"`
}

// PgBouncerStatus is the status of a PgBouncer
type PgBouncerStatus struct {
	// The hash of the most recently applied userlist
	// +optional
	LastUserConfigHash *string `json:"lastUserConfigHash,omitempty"`
}

// +genclient
// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Service",type="string",JSONPath=".spec.service.name",description="Name of the service"

// PgBouncer is a managed connection pooler instance fronting a
// PostgreSQL server
type PgBouncer struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata"`

	Spec PgBouncerSpec `json:"spec"`
	// +optional
	Status PgBouncerStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// PgBouncerList contains a list of PgBouncer
type PgBouncerList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PgBouncer `json:"items"`
}

func init() {
	SchemeBuilder.Register(&PgBouncer{}, &PgBouncerList{})
}
