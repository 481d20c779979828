package main

import (
	"os"

	"github.com/spf13/cobra"

	"rosterd/internal/interfaces/cli/migrate"
	"rosterd/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rosterd",
		Short: "rosterd - workforce scheduling and overtime callout backend",
		Long:  `rosterd is the scheduling backend: shift rosters, leave management and the overtime callout engine, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
