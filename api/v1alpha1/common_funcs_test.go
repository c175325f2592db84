/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PgBouncer child ownership", func() {
	bouncer := &PgBouncer{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "main-pooler",
			Namespace: "databases",
		},
	}

	newUser := func(refName, refNamespace, userNamespace string) *PgBouncerUser {
		return &PgBouncerUser{
			ObjectMeta: metav1.ObjectMeta{
				Name:      "some-user",
				Namespace: userNamespace,
			},
			Spec: PgBouncerUserSpec{
				Username: "some-user",
				PgBouncer: PgBouncerReference{
					Name:      refName,
					Namespace: refNamespace,
				},
			},
		}
	}

	It("matches on name and the namespace of the child when the reference has none", func() {
		Expect(IsForPgBouncer(newUser("main-pooler", "", "databases"), bouncer)).To(BeTrue())
	})

	It("matches on name and an explicit reference namespace", func() {
		Expect(IsForPgBouncer(newUser("main-pooler", "databases", "apps"), bouncer)).To(BeTrue())
	})

	It("rejects a different name", func() {
		Expect(IsForPgBouncer(newUser("other-pooler", "", "databases"), bouncer)).To(BeFalse())
	})

	It("rejects a different effective namespace", func() {
		Expect(IsForPgBouncer(newUser("main-pooler", "", "apps"), bouncer)).To(BeFalse())
		Expect(IsForPgBouncer(newUser("main-pooler", "apps", "databases"), bouncer)).To(BeFalse())
	})

	It("treats databases the same way", func() {
		database := &PgBouncerDatabase{
			ObjectMeta: metav1.ObjectMeta{
				Name:      "some-db",
				Namespace: "databases",
			},
			Spec: PgBouncerDatabaseSpec{
				ExposedDatabaseName: "app",
				Host:                "db.local",
				PgBouncer:           PgBouncerReference{Name: "main-pooler"},
			},
		}
		Expect(IsForPgBouncer(database, bouncer)).To(BeTrue())
	})
})

var _ = Describe("Reference namespace defaulting", func() {
	from := &PostgresRole{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "role",
			Namespace: "team-a",
		},
	}

	It("keeps an explicit namespace", func() {
		ref := PostgresAdminConnectionReference{Name: "conn", Namespace: "infra"}
		Expect(ref.EffectiveNamespace(from)).To(Equal("infra"))
	})

	It("falls back to the namespace of the referrer", func() {
		ref := PostgresAdminConnectionReference{Name: "conn"}
		Expect(ref.EffectiveNamespace(from)).To(Equal("team-a"))
	})
})
