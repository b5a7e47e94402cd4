package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/larklabs/hvacjack/internal/diagnose"
)

var diagnoseSave bool

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <request-file>",
	Short: "Run a troubleshooting session from a request file",
	Long: `Run one troubleshooting session and print the structured report.

The request file (JSON or YAML) describes the equipment and symptoms:

  session_id: bench-1
  system_type: gas_furnace
  issue_category: heating
  symptoms: no ignition, blower runs
  actions_taken:
    - replaced filter
  measurements_taken:
    flame_sensor_ua: "0.8"

Examples:
  hvacjack diagnose request.yaml
  hvacjack diagnose request.json -o json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		raw, err := readRequestJSON(args[0])
		if err != nil {
			return err
		}
		if err := diagnose.ValidateRequestJSON(raw); err != nil {
			return err
		}
		var req diagnose.DiagnosticRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return fmt.Errorf("failed to decode request: %w", err)
		}

		rt, err := newRuntime(logger)
		if err != nil {
			return err
		}

		svc := diagnose.NewService(rt.llm, rt.recorder, logger, rt.cfg.DiagnoseOptions(rt.provider))
		report, err := svc.Diagnose(cmd.Context(), &req)
		if err != nil {
			return err
		}

		if diagnoseSave {
			if err := rt.saveJSON(rt.home.ReportPath(report.ResponseID), report); err != nil {
				return err
			}
		}

		return printResult(report)
	},
}

// readRequestJSON loads a request file, converting YAML to JSON so schema
// validation sees one format.
func readRequestJSON(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("invalid request YAML: %w", err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert request YAML: %w", err)
		}
		return converted, nil
	default:
		return raw, nil
	}
}

func init() {
	diagnoseCmd.Flags().BoolVar(&diagnoseSave, "save", false, "save the report under the home reports directory")

	rootCmd.AddCommand(diagnoseCmd)
}
