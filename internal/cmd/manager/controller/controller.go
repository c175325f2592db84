/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

package controller

import (
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/metrics/server"

	"github.com/Digizuite/postgres-topology-operator/controllers"
	"github.com/Digizuite/postgres-topology-operator/internal/crds"
	schemeBuilder "github.com/Digizuite/postgres-topology-operator/internal/scheme"
	"github.com/Digizuite/postgres-topology-operator/pkg/management/log"
	"github.com/Digizuite/postgres-topology-operator/pkg/versions"
)

var (
	scheme   = schemeBuilder.BuildWithAllKnownScheme()
	setupLog = log.WithName("setup")
)

// LeaderElectionID is the operator leader election ID
const LeaderElectionID = "postgres-topology-operator.digizuite.com"

// RunController is the main procedure of the operator, running the
// controller manager with the three reconcilers
func RunController(metricsAddr string, leaderElectionEnable, generateCRDs bool) error {
	setupLog.Info("Starting postgres topology operator", "version", versions.Version)

	if generateCRDs {
		setupLog.Info("Writing CRD definitions", "path", crds.DefaultPath)
		if err := crds.WriteFile(crds.DefaultPath); err != nil {
			setupLog.Error(err, "unable to write the CRD definitions")
			return err
		}
	}

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), ctrl.Options{
		Scheme: scheme,
		Metrics: server.Options{
			BindAddress: metricsAddr,
		},
		LeaderElection:   leaderElectionEnable,
		LeaderElectionID: LeaderElectionID,
	})
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		return err
	}

	pgBouncerReconciler := &controllers.PgBouncerReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
	}
	if err := pgBouncerReconciler.SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "PgBouncer")
		return err
	}

	postgresRoleReconciler := &controllers.PostgresRoleReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
	}
	if err := postgresRoleReconciler.SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "PostgresRole")
		return err
	}

	postgresSchemaReconciler := &controllers.PostgresSchemaReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
	}
	if err := postgresSchemaReconciler.SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "PostgresSchema")
		return err
	}

	setupLog.Info("Operator controllers started")

	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "problem running manager")
		return err
	}

	return nil
}
