/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package v1alpha1

import (
	"encoding/json"
	"strings"

	"k8s.io/utils/ptr"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PostgresPassword", func() {
	It("keeps plain passwords untouched", func() {
		pw := PostgresPassword{Plain: ptr.To("secret")}
		Expect(pw.PasswordText("alice")).To(Equal("secret"))
		Expect(pw.RawText()).To(Equal("secret"))
	})

	It("encodes md5 passwords salted with the username", func() {
		pw := PostgresPassword{MD5: ptr.To("secret")}
		Expect(pw.PasswordText("alice")).To(Equal("md54a0a68b43b6cd5cf266fa02f196e2371"))
	})

	It("passes through already encoded md5 passwords for any username", func() {
		encoded := "md54a0a68b43b6cd5cf266fa02f196e2371"
		pw := PostgresPassword{MD5: ptr.To(encoded)}
		Expect(pw.PasswordText("alice")).To(Equal(encoded))
		Expect(pw.PasswordText("bob")).To(Equal(encoded))
		Expect(pw.RawText()).To(Equal(encoded))
	})

	It("encodes scram passwords into a verifier", func() {
		pw := PostgresPassword{ScramSHA256: ptr.To("pencil")}
		encoded := pw.PasswordText("alice")
		Expect(encoded).To(HavePrefix("SCRAM-SHA-256$4096:"))
		Expect(strings.Count(encoded, "$")).To(Equal(2))
		Expect(pw.RawText()).To(Equal("pencil"))
	})

	It("passes through already encoded scram passwords", func() {
		encoded := "SCRAM-SHA-256$4096:AAA$BBB:CCC"
		pw := PostgresPassword{ScramSHA256: ptr.To(encoded)}
		Expect(pw.PasswordText("whoever")).To(Equal(encoded))
	})

	It("serializes with the variant as the only key", func() {
		pw := PostgresPassword{ScramSHA256: ptr.To("pencil")}
		raw, err := json.Marshal(pw)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(raw)).To(Equal(`{"scram-sha-256":"pencil"}`))

		var parsed PostgresPassword
		Expect(json.Unmarshal(raw, &parsed)).To(Succeed())
		Expect(parsed.ScramSHA256).To(HaveValue(Equal("pencil")))
		Expect(parsed.Plain).To(BeNil())
		Expect(parsed.MD5).To(BeNil())
	})
})
