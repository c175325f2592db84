/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package password

import (
	"encoding/base64"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MD5 encoding", func() {
	It("salts the password with the username", func() {
		Expect(MD5([]byte("secret"), "alice")).
			To(Equal("md54a0a68b43b6cd5cf266fa02f196e2371"))
	})

	It("produces a lowercase hex digest with the md5 prefix", func() {
		encoded := MD5([]byte("password"), "user")
		Expect(encoded).To(HavePrefix("md5"))
		Expect(encoded).To(HaveLen(3 + 32))
		Expect(encoded).To(Equal(strings.ToLower(encoded)))
	})
})

var _ = Describe("SCRAM-SHA-256 encoding", func() {
	It("computes the verifier for a known salt", func() {
		salt := make([]byte, 16)
		Expect(scramSHA256WithSalt([]byte("pencil"), salt)).To(Equal(
			"SCRAM-SHA-256$4096:AAAAAAAAAAAAAAAAAAAAAA==$" +
				"cYb24178IFPJfwkjIWWOe5UyMYsPha0jpvVheOzD7fM=:" +
				"VwyhxkJCO8QGAizhocQO03bRswvgJ9KCi+BMFMz6uvY="))
	})

	It("matches the RFC 7677 example salt", func() {
		salt, err := base64.StdEncoding.DecodeString("W22ZaJ0SNY7soEsUEjb6gQ==")
		Expect(err).ToNot(HaveOccurred())

		Expect(scramSHA256WithSalt([]byte("pencil"), salt)).To(Equal(
			"SCRAM-SHA-256$4096:W22ZaJ0SNY7soEsUEjb6gQ==$" +
				"WG5d8oPm3OtcPnkdi4Uo7BkeZkBFzpcXkuLmtbsT4qY=:" +
				"wfPLwcE6nTWhTAmQ7tl2KeoiWGPlZqQxSrmfPwDl2dU="))
	})

	It("is deterministic given the same salt", func() {
		salt := []byte("0123456789abcdef")
		first := scramSHA256WithSalt([]byte("some password"), salt)
		second := scramSHA256WithSalt([]byte("some password"), salt)
		Expect(first).To(Equal(second))
	})

	It("draws a fresh salt on every call", func() {
		first := ScramSHA256([]byte("some password"))
		second := ScramSHA256([]byte("some password"))
		Expect(first).ToNot(Equal(second))
	})

	It("keeps passwords that are not valid UTF-8", func() {
		// 0xff can never appear in UTF-8, so SASLprep is skipped and
		// the raw bytes are hashed. The important property is that the
		// encoding does not fail.
		verifier := scramSHA256WithSalt([]byte{0xff, 0xfe}, make([]byte, 16))
		Expect(verifier).To(HavePrefix("SCRAM-SHA-256$4096:"))
	})

	It("normalizes passwords through SASLprep", func() {
		salt := make([]byte, 16)
		// U+00AD (soft hyphen) is mapped to nothing by RFC 3454 table B.1
		withSoftHyphen := scramSHA256WithSalt([]byte("pen­cil"), salt)
		Expect(withSoftHyphen).To(Equal(scramSHA256WithSalt([]byte("pencil"), salt)))
	})
})
