package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the gamestore CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gamestore",
		Short: "Gamestore - a game catalog API with JWT authentication",
		Long: `Gamestore serves a JSON API for user registration/authentication
and a game catalog with create/read/update/delete/list operations.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			// A missing .env is the normal case outside development.
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("Gamestore Server")
			cmd.Println(fmt.Sprintf("Version:    %s", Version))
			cmd.Println(fmt.Sprintf("Build Date: %s", BuildDate))
			cmd.Println(fmt.Sprintf("Git Commit: %s", GitCommit))
		},
	}
}
