/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package pgbouncer

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/intstr"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"
	"github.com/Digizuite/postgres-topology-operator/pkg/utils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newFakePgBouncer() *apiv1alpha1.PgBouncer {
	return &apiv1alpha1.PgBouncer{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "main-pooler",
			Namespace: "databases",
			UID:       types.UID("8a1f3f9e-0001-4f41-a3c1-b96adbd6e0aa"),
		},
		Spec: apiv1alpha1.PgBouncerSpec{
			PgBouncer: apiv1alpha1.PgBouncerSettings{
				PoolMode:         apiv1alpha1.PgBouncerPoolModeTransaction,
				AuthType:         apiv1alpha1.PgBouncerAuthTypeScramSha256,
				ServerTlsSslMode: apiv1alpha1.PostgresSslModePrefer,
				ClientTlsSslMode: apiv1alpha1.PostgresSslModeDisable,
				MaxClientConn:    200,
				MaxDbConnections: 20,
			},
			Service: apiv1alpha1.PgBouncerServiceSettings{
				Name: "main-pooler-svc",
			},
		},
	}
}

var _ = Describe("Deployment", func() {
	It("creates a deployment matching the pooler", func() {
		bouncer := newFakePgBouncer()
		deployment, err := Deployment(bouncer)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(deployment.Name).To(Equal("main-pooler-deployment"))
		Expect(deployment.Namespace).To(Equal("databases"))
		Expect(deployment.Annotations[utils.PgBouncerSpecHashAnnotationName]).NotTo(BeEmpty())

		podLabels := deployment.Spec.Template.Labels
		Expect(podLabels[utils.AppLabelName]).To(Equal(PgBouncerAppName))
		Expect(podLabels[utils.PgBouncerOwnerLabelName]).To(Equal(string(bouncer.UID)))
		Expect(deployment.Spec.Selector.MatchLabels).To(Equal(podLabels))
	})

	It("uses a rolling update strategy that never goes below capacity", func() {
		deployment, err := Deployment(newFakePgBouncer())
		Expect(err).ShouldNot(HaveOccurred())

		strategy := deployment.Spec.Strategy
		Expect(strategy.RollingUpdate.MaxUnavailable).To(HaveValue(Equal(intstr.FromInt32(0))))
		Expect(strategy.RollingUpdate.MaxSurge).To(HaveValue(Equal(intstr.FromInt32(1))))
	})

	It("mounts the configuration read-only from the config map", func() {
		deployment, err := Deployment(newFakePgBouncer())
		Expect(err).ShouldNot(HaveOccurred())

		podSpec := deployment.Spec.Template.Spec
		Expect(podSpec.Volumes).To(HaveLen(1))
		Expect(podSpec.Volumes[0].ConfigMap.Name).To(Equal("main-pooler-config"))
		Expect(podSpec.Volumes[0].ConfigMap.Optional).To(HaveValue(BeFalse()))

		Expect(podSpec.Containers).To(HaveLen(1))
		container := podSpec.Containers[0]
		Expect(container.Name).To(Equal(ContainerName))
		Expect(container.Image).To(Equal(DefaultPgBouncerImage))
		Expect(container.ImagePullPolicy).To(Equal(corev1.PullAlways))
		Expect(container.VolumeMounts).To(HaveLen(1))
		Expect(container.VolumeMounts[0].MountPath).To(Equal("/etc/pgbouncer"))
		Expect(container.VolumeMounts[0].ReadOnly).To(BeTrue())
	})

	It("carries the scheduling options of the pooler", func() {
		bouncer := newFakePgBouncer()
		bouncer.Spec.PodOptions = &apiv1alpha1.PgBouncerPodOptions{
			NodeSelector: map[string]string{"workload": "databases"},
			Resources: &corev1.ResourceRequirements{
				Limits: corev1.ResourceList{
					corev1.ResourceMemory: resource.MustParse("256Mi"),
				},
			},
		}

		deployment, err := Deployment(bouncer)
		Expect(err).ShouldNot(HaveOccurred())

		podSpec := deployment.Spec.Template.Spec
		Expect(podSpec.NodeSelector).To(Equal(map[string]string{"workload": "databases"}))
		Expect(podSpec.Containers[0].Resources.Limits).
			To(HaveKey(corev1.ResourceMemory))
	})

	It("changes the spec hash when the spec changes", func() {
		bouncer := newFakePgBouncer()
		before, err := Deployment(bouncer)
		Expect(err).ShouldNot(HaveOccurred())

		bouncer.Spec.PgBouncer.MaxClientConn = 500
		after, err := Deployment(bouncer)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(before.Annotations[utils.PgBouncerSpecHashAnnotationName]).
			NotTo(Equal(after.Annotations[utils.PgBouncerSpecHashAnnotationName]))
	})
})

var _ = Describe("ConfigMap", func() {
	It("holds the three rendered files", func() {
		bouncer := newFakePgBouncer()
		configMap := ConfigMap(bouncer, configFilesFixture())

		Expect(configMap.Name).To(Equal("main-pooler-config"))
		Expect(configMap.Namespace).To(Equal("databases"))
		Expect(configMap.Data).To(HaveKeyWithValue("pgbouncer.ini", "ini-content"))
		Expect(configMap.Data).To(HaveKeyWithValue("userlist.txt", "userlist-content"))
		Expect(configMap.Data).To(HaveKeyWithValue("userlisthash", "hash-content"))
	})
})
