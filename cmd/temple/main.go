// temple is an endless-runner arcade game for the terminal.
//
// Usage:
//
//	temple                  - Play with the default difficulty
//	temple play             - Play a run
//	temple menu             - Pick a difficulty interactively
//	temple list             - List difficulty presets
//	temple scores           - Show high scores
//	temple serve            - Start SSH server for remote play
//	temple config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set display tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.temple/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const gameID = "temple"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "temple",
	Short: "Temple Run - an endless runner in your terminal",
	Long: `Temple Run is a side-scrolling endless runner for the terminal.
Jump between platforms, collect fruit and dodge spikes, fire and bats
while the temple speeds up around you.

Available commands:
  play     - Play a run (default)
  menu     - Interactive difficulty picker
  list     - Show difficulty presets
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  temple
  temple play --difficulty hard
  temple menu
  temple scores --mode normal
  temple serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Display tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.temple/scores.db", "Path to scores database")

	// The root command plays, so it accepts the play flags too
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
