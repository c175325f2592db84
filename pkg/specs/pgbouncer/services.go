/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package pgbouncer

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"
	"github.com/Digizuite/postgres-topology-operator/pkg/management/pgbouncer/config"
)

// Service creates the Service exposing a pooler instance
func Service(bouncer *apiv1alpha1.PgBouncer) *corev1.Service {
	port := int32(config.PgBouncerPort)
	if bouncer.Spec.Service.Port != nil {
		port = *bouncer.Spec.Service.Port
	}

	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			Kind:       "Service",
			APIVersion: corev1.SchemeGroupVersion.String(),
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:        bouncer.Spec.Service.Name,
			Namespace:   bouncer.Namespace,
			Annotations: bouncer.Spec.Service.Annotations,
		},
		Spec: corev1.ServiceSpec{
			Selector: PodLabels(bouncer),
			Ports: []corev1.ServicePort{
				{
					Port:       port,
					TargetPort: intstr.FromInt32(config.PgBouncerPort),
				},
			},
		},
	}
}
