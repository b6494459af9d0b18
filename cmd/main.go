package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title Contacts API
// @version 1.0
// @description CRUD service for contacts with pagination, validation, avatar uploads and a websocket change feed.
// @BasePath /
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "contacts",
		Short:         "Contacts REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONTACTS_CONFIG"), "path to a YAML config file")

	root.AddCommand(newServeCmd(&configPath), newMigrateCmd(&configPath))
	return root
}
