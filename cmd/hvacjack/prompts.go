package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/larklabs/hvacjack/internal/prompts"
	promptdiag "github.com/larklabs/hvacjack/internal/prompts/diagnose"
	promptplate "github.com/larklabs/hvacjack/internal/prompts/nameplate"
)

var promptsShowKey string

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Inspect the embedded model prompts",
	Long: `List the prompt templates compiled into this binary, with the hash used
to correlate recorded model calls against prompt versions. Use --show to
print the full text of one prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := prompts.NewRegistry(nil)
		promptdiag.RegisterPrompts(reg)
		promptplate.RegisterPrompts(reg)

		if promptsShowKey != "" {
			p, err := reg.Get(promptsShowKey)
			if err != nil {
				return err
			}
			fmt.Print(p.Text)
			return nil
		}

		keys := reg.Keys()
		sort.Strings(keys)
		for _, key := range keys {
			p, err := reg.Get(key)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%.12s\t%s\n", p.Key, p.Hash, p.Description)
		}
		return nil
	},
}

func init() {
	promptsCmd.Flags().StringVar(&promptsShowKey, "show", "", "print the full text of one prompt by key")
	rootCmd.AddCommand(promptsCmd)
}
