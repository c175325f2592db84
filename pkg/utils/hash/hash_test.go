/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package hash

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Hashing", func() {
	It("computes a hash for a given object", func() {
		result, err := ComputeHash("test")
		Expect(err).NotTo(HaveOccurred())
		Expect(result).NotTo(BeEmpty())
	})

	It("is stable for equal objects", func() {
		type sample struct {
			Name  string
			Count int
		}

		first, err := ComputeHash(sample{Name: "a", Count: 1})
		Expect(err).NotTo(HaveOccurred())
		second, err := ComputeHash(sample{Name: "a", Count: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(first).To(Equal(second))
	})

	It("changes when the object changes", func() {
		first, err := ComputeHash("one")
		Expect(err).NotTo(HaveOccurred())
		second, err := ComputeHash("two")
		Expect(err).NotTo(HaveOccurred())
		Expect(first).NotTo(Equal(second))
	})
})
