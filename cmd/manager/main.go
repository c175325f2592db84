/*
This file is part of the Digizuite postgres topology operator.

Copyright (C) 2022-2024 Digizuite A/S.
*/

/*
The manager command is the entrypoint of the postgres topology
operator.
*/
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Digizuite/postgres-topology-operator/internal/cmd/manager/controller"
	"github.com/Digizuite/postgres-topology-operator/pkg/management/log"

	_ "k8s.io/client-go/plugin/pkg/client/auth"
)

func main() {
	logFlags := &log.Flags{}

	cmd := &cobra.Command{
		Use:          "manager [cmd]",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logFlags.ConfigureLogging()
		},
	}

	logFlags.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(controller.NewCmd())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
