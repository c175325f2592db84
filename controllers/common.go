/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

// Package controllers contains the reconciliation loops of the
// operator
package controllers

import (
	"context"
	"time"

	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/Digizuite/postgres-topology-operator/pkg/management/log"
	"github.com/Digizuite/postgres-topology-operator/pkg/metrics"
)

// reconciliationRequeueDelay is how long a failed reconciliation
// waits before being retried
const reconciliationRequeueDelay = 15 * time.Second

// missingRoleRequeueDelay is how long a schema reconciliation waits
// for a referenced PostgresRole to appear
const missingRoleRequeueDelay = 30 * time.Second

// failedReconciliation logs a reconciliation failure and schedules a
// retry
func failedReconciliation(ctx context.Context, kind string, err error) (ctrl.Result, error) {
	log.FromContext(ctx).Error(err, "Reconciliation failed", "kind", kind)
	metrics.ReconcileFailures.WithLabelValues(kind).Inc()

	return ctrl.Result{RequeueAfter: reconciliationRequeueDelay}, nil
}
