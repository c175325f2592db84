/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package controllers

import (
	"context"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/client"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PostgresRole pgbouncer registration", func() {
	It("applies a pgbouncer user owned by the role", func(ctx context.Context) {
		role := &apiv1alpha1.PostgresRole{
			ObjectMeta: metav1.ObjectMeta{
				Name:      "app-role",
				Namespace: "default",
				UID:       types.UID("1c7cf5e1-0002-4f41-a3c1-b96adbd6e0aa"),
			},
			Spec: apiv1alpha1.PostgresRoleSpec{
				Role:     "app",
				Password: apiv1alpha1.PostgresPassword{Plain: ptr.To("secret")},
				RegisterInPgBouncer: &apiv1alpha1.PgBouncerReference{
					Name: "main-pooler",
				},
			},
		}
		fakeClient := newFakeClient(role)
		reconciler := &PostgresRoleReconciler{Client: fakeClient, Scheme: testScheme}

		Expect(reconciler.registerInPgBouncer(ctx, role)).To(Succeed())

		var bouncerUser apiv1alpha1.PgBouncerUser
		Expect(fakeClient.Get(ctx,
			client.ObjectKey{Name: "app-role", Namespace: "default"}, &bouncerUser)).
			To(Succeed())

		Expect(bouncerUser.Spec.Username).To(Equal("app"))
		Expect(bouncerUser.Spec.Password.Plain).To(HaveValue(Equal("secret")))
		Expect(bouncerUser.Spec.PgBouncer.Name).To(Equal("main-pooler"))

		controllerRef := metav1.GetControllerOf(&bouncerUser)
		Expect(controllerRef).ToNot(BeNil())
		Expect(controllerRef.Kind).To(Equal(apiv1alpha1.PostgresRoleKind))
		Expect(controllerRef.Name).To(Equal("app-role"))
	})

	It("updates the registration when the credentials change", func(ctx context.Context) {
		role := &apiv1alpha1.PostgresRole{
			ObjectMeta: metav1.ObjectMeta{
				Name:      "app-role",
				Namespace: "default",
				UID:       types.UID("1c7cf5e1-0002-4f41-a3c1-b96adbd6e0aa"),
			},
			Spec: apiv1alpha1.PostgresRoleSpec{
				Role:     "app",
				Password: apiv1alpha1.PostgresPassword{Plain: ptr.To("secret")},
				RegisterInPgBouncer: &apiv1alpha1.PgBouncerReference{
					Name: "main-pooler",
				},
			},
		}
		fakeClient := newFakeClient(role)
		reconciler := &PostgresRoleReconciler{Client: fakeClient, Scheme: testScheme}

		Expect(reconciler.registerInPgBouncer(ctx, role)).To(Succeed())

		role.Spec.Password = apiv1alpha1.PostgresPassword{Plain: ptr.To("changed")}
		Expect(reconciler.registerInPgBouncer(ctx, role)).To(Succeed())

		var bouncerUser apiv1alpha1.PgBouncerUser
		Expect(fakeClient.Get(ctx,
			client.ObjectKey{Name: "app-role", Namespace: "default"}, &bouncerUser)).
			To(Succeed())
		Expect(bouncerUser.Spec.Password.Plain).To(HaveValue(Equal("changed")))
	})
})
