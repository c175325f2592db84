/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package controllers

import (
	"context"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"
	"github.com/Digizuite/postgres-topology-operator/pkg/utils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Finalizer lifecycle", func() {
	var role *apiv1alpha1.PostgresRole

	BeforeEach(func() {
		role = &apiv1alpha1.PostgresRole{
			ObjectMeta: metav1.ObjectMeta{
				Name:      "app-role",
				Namespace: "default",
			},
			Spec: apiv1alpha1.PostgresRoleSpec{
				Role: "app",
			},
		}
	})

	It("adds the finalizer when the list is empty", func(ctx context.Context) {
		fakeClient := newFakeClient(role)

		Expect(ensureFinalizer(ctx, fakeClient, role)).To(Succeed())

		var updated apiv1alpha1.PostgresRole
		Expect(fakeClient.Get(ctx, client.ObjectKeyFromObject(role), &updated)).To(Succeed())
		Expect(updated.Finalizers).To(ConsistOf(utils.FinalizerName))
	})

	It("leaves an existing finalizer list alone", func(ctx context.Context) {
		role.Finalizers = []string{utils.FinalizerName}
		fakeClient := newFakeClient(role)

		Expect(ensureFinalizer(ctx, fakeClient, role)).To(Succeed())

		var updated apiv1alpha1.PostgresRole
		Expect(fakeClient.Get(ctx, client.ObjectKeyFromObject(role), &updated)).To(Succeed())
		Expect(updated.Finalizers).To(ConsistOf(utils.FinalizerName))
	})

	It("removes the finalizer", func(ctx context.Context) {
		role.Finalizers = []string{utils.FinalizerName}
		fakeClient := newFakeClient(role)

		Expect(removeFinalizer(ctx, fakeClient, role)).To(Succeed())

		var updated apiv1alpha1.PostgresRole
		Expect(fakeClient.Get(ctx, client.ObjectKeyFromObject(role), &updated)).To(Succeed())
		Expect(updated.Finalizers).To(BeEmpty())
	})

	It("tolerates removing the finalizer from a missing resource", func(ctx context.Context) {
		fakeClient := newFakeClient()

		Expect(removeFinalizer(ctx, fakeClient, role)).To(Succeed())
	})
})
