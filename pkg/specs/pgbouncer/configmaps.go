/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

// Package pgbouncer contains the specifications of the Kubernetes
// objects generated for a managed pooler instance
package pgbouncer

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"
	"github.com/Digizuite/postgres-topology-operator/pkg/management/pgbouncer/config"
)

// ConfigMapName builds the name of the ConfigMap holding the pooler
// configuration
func ConfigMapName(bouncer *apiv1alpha1.PgBouncer) string {
	return bouncer.Name + "-config"
}

// ConfigMap creates the ConfigMap holding the rendered pooler
// configuration
func ConfigMap(bouncer *apiv1alpha1.PgBouncer, files config.Files) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		TypeMeta: metav1.TypeMeta{
			Kind:       "ConfigMap",
			APIVersion: corev1.SchemeGroupVersion.String(),
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      ConfigMapName(bouncer),
			Namespace: bouncer.Namespace,
		},
		Data: map[string]string{
			config.IniFileName:      files.Ini,
			config.UserListFileName: files.UserList,
			config.UserListHashKey:  files.UserListHash,
		},
	}
}
