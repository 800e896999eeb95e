// Command admin performs operator tasks against the store directly:
// granting the admin role (the only way to create the first admin) and
// minting access tokens for testing.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iliyamo/parts-store-api/internal/config"
	"github.com/iliyamo/parts-store-api/internal/logger"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "admin",
		Short:         "Operator commands for the parts store API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := config.LoadCLI()
			logger.Initialize(cfg.LogLevel, cfg.LogFormat)
		},
	}
	rootCmd.AddCommand(promoteCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
