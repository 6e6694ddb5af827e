package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/temple-run/internal/config"
	"github.com/vovakirdan/temple-run/internal/platform/tui"
	"github.com/vovakirdan/temple-run/internal/storage"
)

var (
	flagMode   string
	flagLimit  int
	flagExport string
	flagClear  bool
	flagBrowse bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs, optionally for one difficulty.

Examples:
  temple scores
  temple scores --mode hard --limit 20
  temple scores --export runs.csv
  temple scores --mode easy --clear
  temple scores --browse`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagMode, "mode", "", "Difficulty to show (default: all)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagExport, "export", "", "Write every matching run to this CSV file")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete matching runs")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagMode != "" {
		if _, err := config.ParsePreset(flagMode); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	tps := config.Default().Timing.TicksPerSecond

	switch {
	case flagClear:
		n, err := store.ClearScores(gameID, flagMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Deleted %d run(s) (%s)\n", n, modeLabel(flagMode))

	case flagExport != "":
		runs, err := store.AllScores(gameID, flagMode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			return
		}
		if err := storage.ExportCSVFile(flagExport, runs); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting scores: %v\n", err)
			return
		}
		fmt.Printf("Exported %d run(s) to %s\n", len(runs), flagExport)

	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, gameID, tps, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

	default:
		printScores(store, tps)
	}
}

func printScores(store *storage.Store, tps int) {
	scores, err := store.TopScores(gameID, flagMode, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - Temple Run (%s)\n", modeLabel(flagMode))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'temple play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-9s  %-6s  %s\n", "Rank", "Score", "Level", "Survived", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-9s  %-6s  %s\n", "----", "-----", "-----", "--------", "----", "----")

	for i, entry := range scores {
		survived := time.Duration(entry.Ticks) * time.Second / time.Duration(tps)
		fmt.Printf("  %-4d  %-8d  %-5d  %-9s  %-6s  %s\n",
			i+1, entry.Score, entry.Level, survived.Truncate(time.Second),
			entry.Mode, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	all, err := store.AllScores(gameID, flagMode)
	if err != nil {
		return
	}
	st := storage.ComputeStats(all)
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Mean: %.1f  Median: %.1f  StdDev: %.1f\n",
		st.Count, st.Best, st.Mean, st.Median, st.StdDev)

	if flagMode != "" {
		return
	}

	summaries, err := store.Summaries(gameID)
	if err != nil || len(summaries) == 0 {
		return
	}
	fmt.Println()
	for _, preset := range config.Presets {
		s, ok := summaries[string(preset)]
		if !ok {
			continue
		}
		played := time.Duration(s.TotalTicks) * time.Second / time.Duration(tps)
		fmt.Printf("  %-6s  %3d run(s)  best %-6d  level %d  played %s\n",
			s.Mode, s.Runs, s.HighScore, s.MaxLevel, played.Truncate(time.Second))
	}
}

func modeLabel(mode string) string {
	if mode == "" {
		return "all modes"
	}
	return mode
}
