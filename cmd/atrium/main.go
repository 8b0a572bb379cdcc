package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/atrium-inc/atrium/internal/interfaces/cli/migrate"
	"github.com/atrium-inc/atrium/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atrium",
		Short: "Atrium - facility operations platform",
		Long:  `Atrium handles ticket intake, classification, assignment, and notification fan-out for facility operations, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}