/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package config

import (
	"k8s.io/utils/ptr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IniBuilder", func() {
	It("emits sections, settings and comma separated values in insertion order", func() {
		builder := NewIniBuilder()

		builder.Section("pgbouncer")
		builder.Setting("pool_mode", "transaction")
		builder.Setting("listen_port", 5432)
		builder.CommaSeparated("comma_separated", []string{"one", "two", "three"})

		Expect(builder.String()).To(Equal(
			"[pgbouncer]\npool_mode = transaction\nlisten_port = 5432\ncomma_separated = one, two, three\n"))
	})

	It("skips absent optional values", func() {
		builder := NewIniBuilder()

		builder.Optional("is_some", ptr.To("some"))
		builder.Optional("is_none", nil)

		Expect(builder.String()).To(Equal("is_some = some\n"))
	})

	It("skips empty value lists", func() {
		builder := NewIniBuilder()

		builder.CommaSeparated("empty", nil)

		Expect(builder.String()).To(BeEmpty())
	})
})
