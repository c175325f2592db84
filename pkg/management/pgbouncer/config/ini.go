/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

// Package config generates the pgbouncer.ini and userlist.txt content
// of a managed pooler instance
package config

import (
	"fmt"
	"strings"
)

// IniBuilder is an append-only emitter of INI-style configuration.
// Output preserves insertion order and is not escaped; callers are
// responsible for producing valid values.
type IniBuilder struct {
	output strings.Builder
}

// NewIniBuilder creates an empty builder
func NewIniBuilder() *IniBuilder {
	return &IniBuilder{}
}

// Section appends a section header
func (b *IniBuilder) Section(name string) {
	b.output.WriteString("[" + name + "]\n")
}

// Setting appends a key = value line
func (b *IniBuilder) Setting(key string, value interface{}) {
	b.output.WriteString(fmt.Sprintf("%s = %v\n", key, value))
}

// Optional appends a key = value line, doing nothing for a nil value
func (b *IniBuilder) Optional(key string, value *string) {
	if value == nil {
		return
	}

	b.Setting(key, *value)
}

// CommaSeparated appends the values joined by ", ", doing nothing for
// an empty list
func (b *IniBuilder) CommaSeparated(key string, values []string) {
	if len(values) == 0 {
		return
	}

	b.Setting(key, strings.Join(values, ", "))
}

// String returns the accumulated configuration text
func (b *IniBuilder) String() string {
	return b.output.String()
}
