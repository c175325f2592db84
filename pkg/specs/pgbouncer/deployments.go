/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package pgbouncer

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"
	"github.com/Digizuite/postgres-topology-operator/pkg/management/pgbouncer/config"
	"github.com/Digizuite/postgres-topology-operator/pkg/utils"
	"github.com/Digizuite/postgres-topology-operator/pkg/utils/hash"
)

const (
	// DefaultPgBouncerImage is the image run by the pooler Deployment
	DefaultPgBouncerImage = "ghcr.io/digizuite/digi-pg-bouncer:task-DEPLOY-22"

	// PgBouncerAppName is the value of the app label placed on the
	// pooler Pods
	PgBouncerAppName = "pgbouncer"

	// ContainerName is the name of the pooler container
	ContainerName = "pg-bouncer"

	configVolumeName = "config"
)

// DeploymentName builds the name of the pooler Deployment
func DeploymentName(bouncer *apiv1alpha1.PgBouncer) string {
	return bouncer.Name + "-deployment"
}

// PodLabels builds the labels identifying the Pods of a pooler
// instance. The owning PgBouncer is referenced by UID so that a
// recreated instance with the same name selects a fresh set of Pods.
func PodLabels(bouncer *apiv1alpha1.PgBouncer) map[string]string {
	return map[string]string{
		utils.AppLabelName:            PgBouncerAppName,
		utils.PgBouncerOwnerLabelName: string(bouncer.UID),
	}
}

// Deployment creates the Deployment running a pooler instance
func Deployment(bouncer *apiv1alpha1.PgBouncer) (*appsv1.Deployment, error) {
	podLabels := PodLabels(bouncer)

	specHash, err := hash.ComputeHash(bouncer.Spec)
	if err != nil {
		return nil, err
	}

	var nodeSelector map[string]string
	var resources corev1.ResourceRequirements
	if options := bouncer.Spec.PodOptions; options != nil {
		nodeSelector = options.NodeSelector
		if options.Resources != nil {
			resources = *options.Resources
		}
	}

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			Kind:       "Deployment",
			APIVersion: appsv1.SchemeGroupVersion.String(),
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      DeploymentName(bouncer),
			Namespace: bouncer.Namespace,
			Annotations: map[string]string{
				utils.PgBouncerSpecHashAnnotationName: specHash,
			},
		},
		Spec: appsv1.DeploymentSpec{
			Selector: &metav1.LabelSelector{
				MatchLabels: podLabels,
			},
			Strategy: appsv1.DeploymentStrategy{
				Type: appsv1.RollingUpdateDeploymentStrategyType,
				RollingUpdate: &appsv1.RollingUpdateDeployment{
					MaxUnavailable: ptr.To(intstr.FromInt32(0)),
					MaxSurge:       ptr.To(intstr.FromInt32(1)),
				},
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: podLabels,
				},
				Spec: corev1.PodSpec{
					Volumes: []corev1.Volume{
						{
							Name: configVolumeName,
							VolumeSource: corev1.VolumeSource{
								ConfigMap: &corev1.ConfigMapVolumeSource{
									LocalObjectReference: corev1.LocalObjectReference{
										Name: ConfigMapName(bouncer),
									},
									Optional: ptr.To(false),
								},
							},
						},
					},
					Containers: []corev1.Container{
						{
							Name:            ContainerName,
							Image:           DefaultPgBouncerImage,
							ImagePullPolicy: corev1.PullAlways,
							VolumeMounts: []corev1.VolumeMount{
								{
									Name:      configVolumeName,
									MountPath: config.ConfigDirectory,
									ReadOnly:  true,
								},
							},
							Resources: resources,
						},
					},
					NodeSelector: nodeSelector,
				},
			},
		},
	}, nil
}
