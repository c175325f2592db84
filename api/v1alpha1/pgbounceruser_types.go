/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PgBouncerUserSpec describes one credential known to a pooler
// instance, rendered as one line of its userlist
type PgBouncerUserSpec struct {
	// The name of the user
	Username string `json:"username"`

	// The password of the user
	Password PostgresPassword `json:"password"`

	// The pooler instance this user belongs to
	PgBouncer PgBouncerReference `json:"pgBouncer"`
}

// PgBouncerUserStatus is the status of a PgBouncerUser
type PgBouncerUserStatus struct {
	// Whether the user has been rendered into the pooler userlist
	// +optional
	Ready bool `json:"ready,omitempty"`
}

// +genclient
// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Username",type="string",JSONPath=".spec.username",description="Name of the user"

// PgBouncerUser is a credential known to a managed pooler instance.
// It can be declared directly or registered by a PostgresRole.
type PgBouncerUser struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata"`

	Spec PgBouncerUserSpec `json:"spec"`
	// +optional
	Status PgBouncerUserStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// PgBouncerUserList contains a list of PgBouncerUser
type PgBouncerUserList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PgBouncerUser `json:"items"`
}

// GetPgBouncerReference implements the PgBouncerChild interface
func (u *PgBouncerUser) GetPgBouncerReference() *PgBouncerReference {
	return &u.Spec.PgBouncer
}

func init() {
	SchemeBuilder.Register(&PgBouncerUser{}, &PgBouncerUserList{})
}
