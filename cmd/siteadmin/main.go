// cmd/siteadmin/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"siteadmin/config"
	"siteadmin/internal/lib/logger/utils"
)

// @title Site Admin API
// @version 1.0
// @description Back office API for the construction company marketing site.

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "siteadmin",
		Short:         "Back office for the construction company marketing site",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newWindowCmd(),
		newPagesCmd(),
	)
	return root
}

// setup loads the configuration and initialises the logger from it.
func setup() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}
	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Printf("Failed to initialize logger: %v", err)
		return nil, err
	}
	return cfg, nil
}
