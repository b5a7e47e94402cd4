package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/larklabs/hvacjack/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	debugLog     bool
)

var rootCmd = &cobra.Command{
	Use:   "hvacjack",
	Short: "HVAC diagnostic assistant backed by model-text extraction",
	Long: `hvacjack turns free-form model output about HVAC equipment into
structured diagnostic data.

It provides:
  - Troubleshooting sessions: symptoms in, a typed diagnostic report out
    (safety warnings, urgency, actions, tests, likely causes)
  - Rating-plate analysis: a nameplate photo in, a categorized
    specification record out, optionally enriched with manuals, parts,
    video, and training links from web search`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.hvacjack/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "hvacjack home directory (default: ~/.hvacjack)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().BoolVar(
		&debugLog, "debug", false, "enable debug logging",
	)

	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the process logger honoring --debug.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if debugLog {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// printResult writes v to stdout in the selected output format.
func printResult(v any) error {
	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown output format %q (want yaml or json)", outputFormat)
	}
	return nil
}
