/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package v1alpha1

import (
	"strings"

	"github.com/Digizuite/postgres-topology-operator/pkg/management/postgres/password"
)

const (
	md5Prefix   = "md5"
	scramPrefix = "SCRAM-SHA-256$"
)

// PostgresPassword declares a password together with the form it
// should be stored in. Exactly one of the fields must be set.
//
// A value that is already in its encoded form (recognized by the
// "md5" or "SCRAM-SHA-256$" prefix) is stored as is.
// +kubebuilder:validation:MaxProperties=1
// +kubebuilder:validation:MinProperties=1
type PostgresPassword struct {
	// The plaintext password, stored with no interpretation
	// +optional
	Plain *string `json:"plain,omitempty"`

	// A plaintext or MD5 password. When the value is not prefixed
	// with `md5` it is reencoded as md5.
	// +optional
	MD5 *string `json:"md5,omitempty"`

	// A plaintext or SCRAM-SHA-256 password. When the value is not
	// prefixed with `SCRAM-SHA-256$` it is reencoded as
	// SCRAM-SHA-256.
	// +optional
	ScramSHA256 *string `json:"scram-sha-256,omitempty"`
}

// PasswordText returns the password in the form to be sent to
// PostgreSQL, encoding the raw value when the declared variant asks
// for it. The username is part of the salt for md5 passwords.
func (p *PostgresPassword) PasswordText(username string) string {
	switch {
	case p.Plain != nil:
		return *p.Plain

	case p.MD5 != nil:
		if strings.HasPrefix(*p.MD5, md5Prefix) {
			return *p.MD5
		}
		return password.MD5([]byte(*p.MD5), username)

	case p.ScramSHA256 != nil:
		if strings.HasPrefix(*p.ScramSHA256, scramPrefix) {
			return *p.ScramSHA256
		}
		return password.ScramSHA256([]byte(*p.ScramSHA256))
	}

	return ""
}

// RawText returns the declared password value, ignoring the variant
func (p *PostgresPassword) RawText() string {
	switch {
	case p.Plain != nil:
		return *p.Plain
	case p.MD5 != nil:
		return *p.MD5
	case p.ScramSHA256 != nil:
		return *p.ScramSHA256
	}

	return ""
}
