/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package controllers

import (
	"context"
	"fmt"

	apierrs "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"
	"github.com/Digizuite/postgres-topology-operator/pkg/management/log"
	"github.com/Digizuite/postgres-topology-operator/pkg/management/postgres"
	"github.com/Digizuite/postgres-topology-operator/pkg/utils"
)

// PostgresRoleReconciler reconciles a PostgresRole object into a role
// inside the referenced PostgreSQL server
type PostgresRoleReconciler struct {
	client.Client
	Scheme *runtime.Scheme
}

// +kubebuilder:rbac:groups=postgres.digizuite.com,resources=postgresroles,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=postgres.digizuite.com,resources=postgresadminconnections,verbs=get;list;watch
// +kubebuilder:rbac:groups=postgres.digizuite.com,resources=pgbouncerusers,verbs=get;list;watch;create;update;patch

// Reconcile implements the main reconciliation loop for postgres roles
func (r *PostgresRoleReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	contextLogger, ctx := log.SetupLogger(ctx)

	var role apiv1alpha1.PostgresRole
	if err := r.Get(ctx, req.NamespacedName, &role); err != nil {
		if apierrs.IsNotFound(err) {
			contextLogger.Info("Resource has been deleted")
			return ctrl.Result{}, nil
		}

		return ctrl.Result{}, fmt.Errorf("cannot get the postgres role resource: %w", err)
	}

	contextLogger.Info("Reconciling postgres role", "name", role.Name)

	if role.DeletionTimestamp != nil {
		if err := r.deleteRole(ctx, &role); err != nil {
			return failedReconciliation(ctx, apiv1alpha1.PostgresRoleKind, err)
		}

		return ctrl.Result{}, nil
	}

	if err := ensureFinalizer(ctx, r.Client, &role); err != nil {
		return failedReconciliation(ctx, apiv1alpha1.PostgresRoleKind, err)
	}

	connection, err := postgres.OpenAdminConnection(ctx, r.Client, &role)
	if err != nil {
		return failedReconciliation(ctx, apiv1alpha1.PostgresRoleKind, err)
	}
	defer func() {
		if closeErr := connection.Close(); closeErr != nil {
			contextLogger.Error(closeErr, "while closing admin connection")
		}
	}()

	if err := reconcileRoleInDatabase(ctx, connection, &role); err != nil {
		return failedReconciliation(ctx, apiv1alpha1.PostgresRoleKind, err)
	}

	if role.Spec.RegisterInPgBouncer != nil {
		if err := r.registerInPgBouncer(ctx, &role); err != nil {
			return failedReconciliation(ctx, apiv1alpha1.PostgresRoleKind, err)
		}
	}

	return ctrl.Result{}, nil
}

// deleteRole drops the managed role from the database and releases
// the finalizer
func (r *PostgresRoleReconciler) deleteRole(ctx context.Context, role *apiv1alpha1.PostgresRole) error {
	contextLogger := log.FromContext(ctx)

	contextLogger.Info("Deleting postgres role", "name", role.Name)

	connection, err := postgres.OpenAdminConnection(ctx, r.Client, role)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := connection.Close(); closeErr != nil {
			contextLogger.Error(closeErr, "while closing admin connection")
		}
	}()

	exists, err := roleExists(ctx, connection, role.Spec.Role)
	if err != nil {
		return err
	}

	if exists {
		if err := dropRole(ctx, connection, role.Spec.Role); err != nil {
			return err
		}
	} else {
		contextLogger.Info("Role does not exist", "role", role.Spec.Role)
	}

	return removeFinalizer(ctx, r.Client, role)
}

// registerInPgBouncer applies the PgBouncerUser mirroring this role
// into the referenced pooler, owned by the role object
func (r *PostgresRoleReconciler) registerInPgBouncer(ctx context.Context, role *apiv1alpha1.PostgresRole) error {
	contextLogger := log.FromContext(ctx)

	contextLogger.Info("Registering role in pgbouncer",
		"role", role.Spec.Role, "pgBouncer", role.Spec.RegisterInPgBouncer.Name)

	bouncerUser := &apiv1alpha1.PgBouncerUser{
		TypeMeta: metav1.TypeMeta{
			Kind:       apiv1alpha1.PgBouncerUserKind,
			APIVersion: apiv1alpha1.GroupVersion.String(),
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      role.Name,
			Namespace: role.Namespace,
		},
		Spec: apiv1alpha1.PgBouncerUserSpec{
			Username:  role.Spec.Role,
			Password:  role.Spec.Password,
			PgBouncer: *role.Spec.RegisterInPgBouncer,
		},
	}
	if err := ctrl.SetControllerReference(role, bouncerUser, r.Scheme); err != nil {
		return err
	}

	err := r.Patch(ctx, bouncerUser, client.Apply, client.ForceOwnership, client.FieldOwner(utils.FieldManager))
	if err != nil {
		return fmt.Errorf("while applying pgbouncer user %v: %w", bouncerUser.Name, err)
	}

	return nil
}

// SetupWithManager registers this controller inside the controller
// manager
func (r *PostgresRoleReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&apiv1alpha1.PostgresRole{}).
		Owns(&apiv1alpha1.PgBouncerUser{}).
		Complete(r)
}
