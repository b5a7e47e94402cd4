package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/larklabs/hvacjack/internal/nameplate"
)

var (
	nameplateSession  string
	nameplateNoSearch bool
	nameplateSave     bool
)

var nameplateCmd = &cobra.Command{
	Use:   "nameplate <image-file>",
	Short: "Analyze a rating-plate photo into a specification record",
	Long: `Send an equipment rating-plate photo to the vision model and print
the categorized specification record.

When web search is configured, the analysis text is enriched with manual,
parts, video, and training links for the identified equipment. Search is
best-effort: if it fails or finds nothing, the plain analysis is returned.

Examples:
  hvacjack nameplate plate.jpg
  hvacjack nameplate plate.jpg --no-search -o json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		image, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read image file: %w", err)
		}

		rt, err := newRuntime(logger)
		if err != nil {
			return err
		}

		augmenter := rt.augmenter
		if nameplateNoSearch {
			augmenter = nil
		}

		svc := nameplate.NewService(rt.llm, rt.recorder, augmenter, logger, rt.cfg.NameplateOptions(rt.provider))
		record, err := svc.Analyze(cmd.Context(), &nameplate.AnalyzeRequest{
			Image:     image,
			SessionID: nameplateSession,
		})
		if err != nil {
			return err
		}

		if nameplateSave {
			name := record.ModelNumber
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}
			if err := rt.saveJSON(rt.home.PlatePath(name), record); err != nil {
				return err
			}
		}

		return printResult(record)
	},
}

func init() {
	nameplateCmd.Flags().StringVar(&nameplateSession, "session", "", "session ID to tag the call with")
	nameplateCmd.Flags().BoolVar(&nameplateNoSearch, "no-search", false, "skip resource link enrichment")
	nameplateCmd.Flags().BoolVar(&nameplateSave, "save", false, "save the record under the home plates directory")

	rootCmd.AddCommand(nameplateCmd)
}
