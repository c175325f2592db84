/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package controllers

import (
	"context"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrs "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"
	"github.com/Digizuite/postgres-topology-operator/pkg/management/log"
	pgBouncerConfig "github.com/Digizuite/postgres-topology-operator/pkg/management/pgbouncer/config"
	"github.com/Digizuite/postgres-topology-operator/pkg/specs/pgbouncer"
	"github.com/Digizuite/postgres-topology-operator/pkg/utils"
)

// PgBouncerReconciler reconciles a PgBouncer object into a ConfigMap,
// a Deployment and a Service
type PgBouncerReconciler struct {
	client.Client
	Scheme *runtime.Scheme
}

// +kubebuilder:rbac:groups=postgres.digizuite.com,resources=pgbouncers,verbs=get;list;watch
// +kubebuilder:rbac:groups=postgres.digizuite.com,resources=pgbouncerdatabases,verbs=get;list;watch
// +kubebuilder:rbac:groups=postgres.digizuite.com,resources=pgbouncerusers,verbs=get;list;watch
// +kubebuilder:rbac:groups="",resources=configmaps,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups="",resources=services,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups="apps",resources=deployments,verbs=get;list;watch;create;update;patch;delete

// Reconcile implements the main reconciliation loop for pooler objects
func (r *PgBouncerReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	contextLogger, ctx := log.SetupLogger(ctx)

	var bouncer apiv1alpha1.PgBouncer
	if err := r.Get(ctx, req.NamespacedName, &bouncer); err != nil {
		if apierrs.IsNotFound(err) {
			contextLogger.Info("Resource has been deleted")
			return ctrl.Result{}, nil
		}

		return ctrl.Result{}, fmt.Errorf("cannot get the pgbouncer resource: %w", err)
	}

	contextLogger.Info("Reconciling pgbouncer", "name", bouncer.Name)

	if bouncer.DeletionTimestamp != nil {
		// The owned ConfigMap, Deployment and Service are removed by
		// the Kubernetes garbage collector
		contextLogger.Info("PgBouncer is being deleted, skipping", "name", bouncer.Name)
		return ctrl.Result{}, nil
	}

	databases, users, err := r.getPgBouncerChildren(ctx, &bouncer)
	if err != nil {
		return failedReconciliation(ctx, apiv1alpha1.PgBouncerKind, err)
	}

	files := pgBouncerConfig.Materialize(&bouncer.Spec, databases, users)

	if err := r.reconcileConfigMap(ctx, &bouncer, files); err != nil {
		return failedReconciliation(ctx, apiv1alpha1.PgBouncerKind, err)
	}

	if err := r.reconcileDeployment(ctx, &bouncer); err != nil {
		return failedReconciliation(ctx, apiv1alpha1.PgBouncerKind, err)
	}

	if err := r.reconcileService(ctx, &bouncer); err != nil {
		return failedReconciliation(ctx, apiv1alpha1.PgBouncerKind, err)
	}

	return ctrl.Result{}, nil
}

// getPgBouncerChildren collects the databases and users belonging to
// the passed pooler instance. Children are listed cluster-wide and
// filtered on their reference, since they may live in any namespace.
func (r *PgBouncerReconciler) getPgBouncerChildren(
	ctx context.Context,
	bouncer *apiv1alpha1.PgBouncer,
) ([]apiv1alpha1.PgBouncerDatabaseSpec, []apiv1alpha1.PgBouncerUserSpec, error) {
	var databaseList apiv1alpha1.PgBouncerDatabaseList
	if err := r.List(ctx, &databaseList); err != nil {
		return nil, nil, fmt.Errorf("while listing pgbouncer databases: %w", err)
	}

	var databases []apiv1alpha1.PgBouncerDatabaseSpec
	for i := range databaseList.Items {
		if apiv1alpha1.IsForPgBouncer(&databaseList.Items[i], bouncer) {
			databases = append(databases, databaseList.Items[i].Spec)
		}
	}

	var userList apiv1alpha1.PgBouncerUserList
	if err := r.List(ctx, &userList); err != nil {
		return nil, nil, fmt.Errorf("while listing pgbouncer users: %w", err)
	}

	var users []apiv1alpha1.PgBouncerUserSpec
	for i := range userList.Items {
		if apiv1alpha1.IsForPgBouncer(&userList.Items[i], bouncer) {
			users = append(users, userList.Items[i].Spec)
		}
	}

	return databases, users, nil
}

// reconcileConfigMap aligns the configuration ConfigMap with the
// rendered files, leaving it alone when neither the pgbouncer.ini nor
// the userlist fingerprint changed
func (r *PgBouncerReconciler) reconcileConfigMap(
	ctx context.Context,
	bouncer *apiv1alpha1.PgBouncer,
	files pgBouncerConfig.Files,
) error {
	contextLogger := log.FromContext(ctx)

	desired := pgbouncer.ConfigMap(bouncer, files)
	if err := ctrl.SetControllerReference(bouncer, desired, r.Scheme); err != nil {
		return err
	}

	var current corev1.ConfigMap
	err := r.Get(ctx, client.ObjectKeyFromObject(desired), &current)
	switch {
	case apierrs.IsNotFound(err):
		contextLogger.Info("Creating config map", "name", desired.Name)

	case err != nil:
		return fmt.Errorf("while getting config map %v: %w", desired.Name, err)

	default:
		if current.Data[pgBouncerConfig.IniFileName] == files.Ini &&
			current.Data[pgBouncerConfig.UserListHashKey] == files.UserListHash {
			contextLogger.Debug("Config map does not need to be updated", "name", desired.Name)
			return nil
		}

		contextLogger.Info("Configuration has changed, updating config map", "name", desired.Name)
	}

	return r.serverSideApply(ctx, desired)
}

// reconcileDeployment aligns the pooler Deployment with the spec
func (r *PgBouncerReconciler) reconcileDeployment(ctx context.Context, bouncer *apiv1alpha1.PgBouncer) error {
	deployment, err := pgbouncer.Deployment(bouncer)
	if err != nil {
		return err
	}
	if err := ctrl.SetControllerReference(bouncer, deployment, r.Scheme); err != nil {
		return err
	}

	if err := r.serverSideApply(ctx, deployment); err != nil {
		return fmt.Errorf("while applying deployment %v: %w", deployment.Name, err)
	}

	return nil
}

// reconcileService aligns the Service exposing the pooler with the spec
func (r *PgBouncerReconciler) reconcileService(ctx context.Context, bouncer *apiv1alpha1.PgBouncer) error {
	service := pgbouncer.Service(bouncer)
	if err := ctrl.SetControllerReference(bouncer, service, r.Scheme); err != nil {
		return err
	}

	if err := r.serverSideApply(ctx, service); err != nil {
		return fmt.Errorf("while applying service %v: %w", service.Name, err)
	}

	return nil
}

// serverSideApply submits the passed object with a forced server-side
// apply under the operator field manager
func (r *PgBouncerReconciler) serverSideApply(ctx context.Context, obj client.Object) error {
	return r.Patch(ctx, obj, client.Apply, client.ForceOwnership, client.FieldOwner(utils.FieldManager))
}

// mapPgBouncerChild enqueues the pooler a database or user belongs to
func mapPgBouncerChild(_ context.Context, obj client.Object) []reconcile.Request {
	child, ok := obj.(apiv1alpha1.PgBouncerChild)
	if !ok {
		return nil
	}

	ref := child.GetPgBouncerReference()
	if ref == nil {
		return nil
	}

	return []reconcile.Request{
		{
			NamespacedName: types.NamespacedName{
				Name:      ref.Name,
				Namespace: ref.EffectiveNamespace(child),
			},
		},
	}
}

// SetupWithManager registers this controller inside the controller
// manager
func (r *PgBouncerReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&apiv1alpha1.PgBouncer{}).
		Owns(&appsv1.Deployment{}).
		Owns(&corev1.Service{}).
		Owns(&corev1.ConfigMap{}).
		Watches(
			&apiv1alpha1.PgBouncerDatabase{},
			handler.EnqueueRequestsFromMapFunc(mapPgBouncerChild),
		).
		Watches(
			&apiv1alpha1.PgBouncerUser{},
			handler.EnqueueRequestsFromMapFunc(mapPgBouncerChild),
		).
		Complete(r)
}
