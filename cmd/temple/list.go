package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/temple-run/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets and the tuning each one applies.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func init() {
	listCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config (YAML or TOML)")
}

func runList(_ *cobra.Command, _ []string) {
	base, err := config.Load(flagConfig)
	if err != nil {
		cliLogger.Warn("falling back to default config", "error", err)
		base = config.Default()
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()

	fmt.Printf("  %-8s  %-6s  %-6s  %-7s  %s\n", "Preset", "Speed", "Cap", "Hearts", "Progression")
	fmt.Printf("  %-8s  %-6s  %-6s  %-7s  %s\n", "------", "-----", "---", "------", "-----------")

	for _, preset := range config.Presets {
		cfg := base
		config.ApplyPreset(&cfg, preset)

		progression := "yes"
		if !cfg.Speed.Progression {
			progression = "no"
		}
		fmt.Printf("  %-8s  %-6.1f  %-6.1f  %-7d  %s\n",
			preset, cfg.Speed.Start, cfg.Speed.Cap, cfg.Player.MaxHealth, progression)
	}

	fmt.Println()
	fmt.Println("Run 'temple play --difficulty <preset>' to play.")
}
