package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/temple-run/internal/config"
	"github.com/vovakirdan/temple-run/internal/core"
	"github.com/vovakirdan/temple-run/internal/games/temple"
	"github.com/vovakirdan/temple-run/internal/platform/tui"
	"github.com/vovakirdan/temple-run/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLog        string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of Temple Run.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump (press again in the air to double jump)
  Enter            - Start / play again
  P                - Pause
  Esc              - Back (when not running)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start and longer invulnerability
  normal - Default tuning
  hard   - Faster start and three hearts
  fixed  - Speed never increases

Examples:
  temple play
  temple play --difficulty hard
  temple play --config ./my-runner.yaml
  temple play --seed 42 --log ./run.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config (YAML or TOML)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLog, "log", "", "Write game events to this file")
}

// cliLogger reports warnings on stderr.
var cliLogger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "temple"})

// newGame loads the runner config and builds a game for the preset.
func newGame(configPath string, preset config.DifficultyPreset) (*temple.Game, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return temple.New(cfg, preset), nil
}

// runtimeConfig sizes the runtime to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database, or returns nil so the game still works.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		cliLogger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// modelOptions opens the event log when --log is set.
func modelOptions() (tui.ModelOptions, io.Closer, error) {
	if flagLog == "" {
		return tui.ModelOptions{}, nil, nil
	}
	logger, closer, err := tui.NewEventLogger(flagLog)
	if err != nil {
		return tui.ModelOptions{}, nil, err
	}
	return tui.ModelOptions{Logger: logger}, closer, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := newGame(flagConfig, preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	opts, closer, err := modelOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, runtimeConfig(), opts)

	// Close resources before potential exit
	if store != nil {
		store.Close()
	}
	if closer != nil {
		closer.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
