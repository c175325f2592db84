/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

// Package controller implements the command starting the operator
package controller

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// NewCmd creates the "controller" subcommand
func NewCmd() *cobra.Command {
	var metricsAddr string
	var leaderElectionEnable bool
	var generateCRDs bool

	cmd := cobra.Command{
		Use:           "controller [flags]",
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return RunController(metricsAddr, leaderElectionEnable, generateCRDs)
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-bind-address", ":8080",
		"The address the metric endpoint binds to.")
	cmd.Flags().BoolVar(&leaderElectionEnable, "leader-elect", false,
		"Enable leader election for controller manager. "+
			"If enabled, this will ensure there is only one active controller manager.")
	cmd.Flags().BoolVar(&generateCRDs, "generate-crds", envBool("GENERATE_CRDS"),
		"Write the CRD definitions into the Helm chart before starting up.")

	return &cmd
}

func envBool(name string) bool {
	value, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && value
}
