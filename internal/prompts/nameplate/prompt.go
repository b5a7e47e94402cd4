// Package nameplate holds the embedded instruction for the vision-model
// nameplate analysis call.
package nameplate

import (
	_ "embed"

	"github.com/larklabs/hvacjack/internal/prompts"
)

//go:embed analyze.tmpl
var analyzePrompt string

// AnalyzePrompt returns the rating-plate analysis instruction.
func AnalyzePrompt() string {
	return analyzePrompt
}

// Prompt keys
const (
	AnalyzePromptKey = "nameplate.analyze"
)

// RegisterPrompts registers the nameplate prompts with the registry.
func RegisterPrompts(r *prompts.Registry) {
	r.Register(prompts.EmbeddedPrompt{
		Key:         AnalyzePromptKey,
		Text:        analyzePrompt,
		Description: "Vision instruction for rating-plate specification extraction",
	})
}
