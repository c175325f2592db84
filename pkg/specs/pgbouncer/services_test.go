/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package pgbouncer

import (
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"

	"github.com/Digizuite/postgres-topology-operator/pkg/management/pgbouncer/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func configFilesFixture() config.Files {
	return config.Files{
		Ini:          "ini-content",
		UserList:     "userlist-content",
		UserListHash: "hash-content",
	}
}

var _ = Describe("Service", func() {
	It("uses the declared name and annotations", func() {
		bouncer := newFakePgBouncer()
		bouncer.Spec.Service.Annotations = map[string]string{
			"service.beta.kubernetes.io/aws-load-balancer-internal": "true",
		}

		service := Service(bouncer)
		Expect(service.Name).To(Equal("main-pooler-svc"))
		Expect(service.Namespace).To(Equal("databases"))
		Expect(service.Annotations).To(HaveKey(
			"service.beta.kubernetes.io/aws-load-balancer-internal"))
	})

	It("selects the pooler pods", func() {
		bouncer := newFakePgBouncer()
		service := Service(bouncer)
		Expect(service.Spec.Selector).To(Equal(PodLabels(bouncer)))
	})

	It("defaults the port to 5432", func() {
		service := Service(newFakePgBouncer())
		Expect(service.Spec.Ports).To(HaveLen(1))
		Expect(service.Spec.Ports[0].Port).To(BeEquivalentTo(5432))
		Expect(service.Spec.Ports[0].TargetPort).To(Equal(intstr.FromInt32(5432)))
	})

	It("honors a declared port while keeping the target port fixed", func() {
		bouncer := newFakePgBouncer()
		bouncer.Spec.Service.Port = ptr.To(int32(6432))

		service := Service(bouncer)
		Expect(service.Spec.Ports[0].Port).To(BeEquivalentTo(6432))
		Expect(service.Spec.Ports[0].TargetPort).To(Equal(intstr.FromInt32(5432)))
	})
})
