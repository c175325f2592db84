/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

// Package metrics contains the Prometheus metrics exposed by the
// operator on the controller-runtime metrics endpoint
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	ctrlmetrics "sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	// ReconcileFailures counts the failed reconciliations per resource kind
	ReconcileFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "postgres_topology_operator_reconcile_failures_total",
		Help: "Number of failed reconciliations, partitioned by resource kind",
	}, []string{"kind"})

	// PostgresStatements counts the SQL statements issued against
	// managed PostgreSQL servers
	PostgresStatements = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "postgres_topology_operator_postgres_statements_total",
		Help: "Number of SQL statements issued against managed PostgreSQL servers",
	})
)

func init() {
	ctrlmetrics.Registry.MustRegister(ReconcileFailures, PostgresStatements)
}
