/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package controllers

import (
	"context"
	"fmt"

	apierrs "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/Digizuite/postgres-topology-operator/pkg/management/log"
	"github.com/Digizuite/postgres-topology-operator/pkg/utils"
)

// ensureFinalizer makes sure the operator finalizer is present on the
// passed resource, patching it in when the finalizer list is empty or
// absent
func ensureFinalizer(ctx context.Context, kubeClient client.Client, resource client.Object) error {
	contextLogger := log.FromContext(ctx)

	if len(resource.GetFinalizers()) > 0 {
		contextLogger.Debug("Finalizer already present",
			"namespace", resource.GetNamespace(), "name", resource.GetName())
		return nil
	}

	contextLogger.Debug("Adding finalizer",
		"namespace", resource.GetNamespace(), "name", resource.GetName())

	patch := []byte(fmt.Sprintf(`{"metadata":{"finalizers":[%q]}}`, utils.FinalizerName))
	if err := kubeClient.Patch(ctx, resource, client.RawPatch(types.MergePatchType, patch)); err != nil {
		return fmt.Errorf("while adding finalizer: %w", err)
	}

	return nil
}

// removeFinalizer clears the finalizer list of the passed resource,
// letting its deletion proceed. A missing resource is not an error:
// the object may have been garbage-collected while the reconcile was
// running.
func removeFinalizer(ctx context.Context, kubeClient client.Client, resource client.Object) error {
	contextLogger := log.FromContext(ctx)

	contextLogger.Debug("Removing finalizer",
		"namespace", resource.GetNamespace(), "name", resource.GetName())

	patch := []byte(`{"metadata":{"finalizers":null}}`)
	err := kubeClient.Patch(ctx, resource, client.RawPatch(types.MergePatchType, patch))
	if apierrs.IsNotFound(err) {
		contextLogger.Debug("Resource already gone while removing finalizer",
			"namespace", resource.GetNamespace(), "name", resource.GetName())
		return nil
	}
	if err != nil {
		return fmt.Errorf("while removing finalizer: %w", err)
	}

	return nil
}
