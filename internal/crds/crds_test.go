/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package crds

import (
	"os"
	"path/filepath"
	"strings"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CRD generation", func() {
	It("defines the six managed kinds", func() {
		crds := Definitions()
		Expect(crds).To(HaveLen(6))

		var kinds []string
		for _, crd := range crds {
			kinds = append(kinds, crd.Spec.Names.Kind)
			Expect(crd.Spec.Group).To(Equal("postgres.digizuite.com"))
			Expect(crd.Spec.Scope).To(Equal(apiextensionsv1.NamespaceScoped))
			Expect(crd.Name).To(Equal(crd.Spec.Names.Plural + ".postgres.digizuite.com"))
			Expect(crd.Spec.Versions).To(HaveLen(1))
			Expect(crd.Spec.Versions[0].Name).To(Equal("v1alpha1"))
		}

		Expect(kinds).To(ConsistOf(
			"PostgresSchema",
			"PostgresAdminConnection",
			"PostgresRole",
			"PgBouncer",
			"PgBouncerUser",
			"PgBouncerDatabase",
		))
	})

	It("renders a multi-document stream separated by ---", func() {
		content, err := Render()
		Expect(err).ToNot(HaveOccurred())

		documents := strings.Split(string(content), "\n---\n")
		// the stream ends with a separator, leaving a trailing empty
		// document behind the split
		Expect(documents).To(HaveLen(7))
		Expect(documents[6]).To(BeEmpty())
		Expect(documents[0]).To(ContainSubstring("kind: CustomResourceDefinition"))
	})

	It("writes the stream to disk, creating missing directories", func() {
		path := filepath.Join(GinkgoT().TempDir(), "charts", "templates", "crds.yaml")
		Expect(WriteFile(path)).To(Succeed())

		content, err := os.ReadFile(path) // #nosec G304
		Expect(err).ToNot(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("pgbouncers.postgres.digizuite.com"))
	})
})
