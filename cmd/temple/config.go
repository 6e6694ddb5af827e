package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/temple-run/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default runner configuration",
	Long: `Print the built-in runner configuration as YAML.

Save it to ~/.temple/configs/runner.yaml or pass it with --config to tune the game.

Examples:
  temple config > ~/.temple/configs/runner.yaml
  temple config > my-runner.yaml && temple play --config my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
