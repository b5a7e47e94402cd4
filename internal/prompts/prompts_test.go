package prompts

import (
	"reflect"
	"testing"
)

func TestExtractVariables(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"none", "no variables here", nil},
		{"single", "Hello {{.Name}}", []string{"Name"}},
		{"sorted and deduped", "{{.B}} {{.A}} {{.B}}", []string{"A", "B"}},
		{"nested", "{{.Request.Symptoms}}", []string{"Request.Symptoms"}},
		{"spaced", "{{ .Padded }}", []string{"Padded"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractVariables(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractVariables(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestHashTextStable(t *testing.T) {
	a := HashText("prompt text")
	b := HashText("prompt text")
	if a != b {
		t.Error("hash should be deterministic")
	}
	if a == HashText("different") {
		t.Error("different texts should hash differently")
	}
	if len(a) != 64 {
		t.Errorf("expected hex sha256, got %d chars", len(a))
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(EmbeddedPrompt{
		Key:  "test.system",
		Text: "You are {{.Persona}}.",
	})

	p, err := r.Get("test.system")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if p.Hash == "" {
		t.Error("expected computed hash")
	}
	if !reflect.DeepEqual(p.Variables, []string{"Persona"}) {
		t.Errorf("Variables = %v", p.Variables)
	}

	if _, err := r.Get("missing"); err == nil {
		t.Error("expected error for unregistered key")
	}
}
