// Package diagnose holds the embedded prompts for the troubleshooting
// text-model call.
package diagnose

import (
	_ "embed"

	"github.com/larklabs/hvacjack/internal/prompts"
)

//go:embed system.tmpl
var systemPrompt string

// SystemPrompt returns the troubleshooting persona prompt.
func SystemPrompt() string {
	return systemPrompt
}

// Prompt keys
const (
	SystemPromptKey = "diagnose.system"
)

// RegisterPrompts registers the diagnostic prompts with the registry.
func RegisterPrompts(r *prompts.Registry) {
	r.Register(prompts.EmbeddedPrompt{
		Key:         SystemPromptKey,
		Text:        systemPrompt,
		Description: "Troubleshooting persona and response structure for the text model",
	})
}
