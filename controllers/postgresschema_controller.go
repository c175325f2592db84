/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package controllers

import (
	"context"
	"fmt"

	apierrs "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	apiv1alpha1 "github.com/Digizuite/postgres-topology-operator/api/v1alpha1"
	"github.com/Digizuite/postgres-topology-operator/pkg/management/log"
	"github.com/Digizuite/postgres-topology-operator/pkg/management/postgres"
)

// PostgresSchemaReconciler reconciles a PostgresSchema object into a
// schema inside the referenced PostgreSQL server
type PostgresSchemaReconciler struct {
	client.Client
	Scheme *runtime.Scheme
}

// +kubebuilder:rbac:groups=postgres.digizuite.com,resources=postgresschemas,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=postgres.digizuite.com,resources=postgresadminconnections,verbs=get;list;watch
// +kubebuilder:rbac:groups=postgres.digizuite.com,resources=postgresroles,verbs=get;list;watch

// Reconcile implements the main reconciliation loop for postgres
// schemas
func (r *PostgresSchemaReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	contextLogger, ctx := log.SetupLogger(ctx)

	var schema apiv1alpha1.PostgresSchema
	if err := r.Get(ctx, req.NamespacedName, &schema); err != nil {
		if apierrs.IsNotFound(err) {
			contextLogger.Info("Resource has been deleted")
			return ctrl.Result{}, nil
		}

		return ctrl.Result{}, fmt.Errorf("cannot get the postgres schema resource: %w", err)
	}

	contextLogger.Info("Reconciling postgres schema", "name", schema.Name)

	if schema.DeletionTimestamp != nil {
		if err := r.deleteSchema(ctx, &schema); err != nil {
			return failedReconciliation(ctx, apiv1alpha1.PostgresSchemaKind, err)
		}

		return ctrl.Result{}, nil
	}

	if err := ensureFinalizer(ctx, r.Client, &schema); err != nil {
		return failedReconciliation(ctx, apiv1alpha1.PostgresSchemaKind, err)
	}

	ownerName, found, err := r.resolveOwnerName(ctx, &schema)
	if err != nil {
		return failedReconciliation(ctx, apiv1alpha1.PostgresSchemaKind, err)
	}
	if !found {
		// the referenced role may simply not have been reconciled
		// yet, give its controller some time to land it
		return ctrl.Result{RequeueAfter: missingRoleRequeueDelay}, nil
	}

	connection, err := postgres.OpenAdminConnection(ctx, r.Client, &schema)
	if err != nil {
		return failedReconciliation(ctx, apiv1alpha1.PostgresSchemaKind, err)
	}
	defer func() {
		if closeErr := connection.Close(); closeErr != nil {
			contextLogger.Error(closeErr, "while closing admin connection")
		}
	}()

	if err := reconcileSchemaInDatabase(ctx, connection, schema.Spec.Schema, ownerName); err != nil {
		return failedReconciliation(ctx, apiv1alpha1.PostgresSchemaKind, err)
	}

	return ctrl.Result{}, nil
}

// deleteSchema drops the managed schema and releases the finalizer
func (r *PostgresSchemaReconciler) deleteSchema(ctx context.Context, schema *apiv1alpha1.PostgresSchema) error {
	contextLogger := log.FromContext(ctx)

	contextLogger.Info("Deleting postgres schema", "name", schema.Name)

	connection, err := postgres.OpenAdminConnection(ctx, r.Client, schema)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := connection.Close(); closeErr != nil {
			contextLogger.Error(closeErr, "while closing admin connection")
		}
	}()

	if err := dropSchema(ctx, connection, schema.Spec.Schema); err != nil {
		return err
	}

	return removeFinalizer(ctx, r.Client, schema)
}

// resolveOwnerName resolves the declared schema owner into a role
// name. The second return value is false when a referenced
// PostgresRole does not exist yet.
func (r *PostgresSchemaReconciler) resolveOwnerName(
	ctx context.Context,
	schema *apiv1alpha1.PostgresSchema,
) (*string, bool, error) {
	contextLogger := log.FromContext(ctx)

	owner := schema.Spec.SchemaOwner
	switch {
	case owner == nil:
		return nil, true, nil

	case owner.Name != nil:
		return owner.Name, true, nil

	case owner.ManagedRole != nil:
		var role apiv1alpha1.PostgresRole
		err := r.Get(ctx, client.ObjectKey{
			Name:      owner.ManagedRole.Name,
			Namespace: owner.ManagedRole.EffectiveNamespace(schema),
		}, &role)
		if apierrs.IsNotFound(err) {
			contextLogger.Warning("Referenced role not found, retrying later",
				"role", owner.ManagedRole.Name)
			return nil, false, nil
		}
		if err != nil {
			return nil, false, fmt.Errorf("while getting role %v: %w", owner.ManagedRole.Name, err)
		}

		return &role.Spec.Role, true, nil
	}

	return nil, true, nil
}

// SetupWithManager registers this controller inside the controller
// manager
func (r *PostgresSchemaReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&apiv1alpha1.PostgresSchema{}).
		Complete(r)
}
