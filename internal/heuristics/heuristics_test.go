package heuristics

import (
	"reflect"
	"testing"
)

func TestKeywordSetMatches(t *testing.T) {
	tests := []struct {
		name string
		set  KeywordSet
		text string
		want bool
	}{
		{"safety upper", Safety, "WARNING: Gas leak detected", true},
		{"safety lower", Safety, "there is a gas leak near the valve", true},
		{"safety mixed case keyword", Safety, "Electrical panel looks corroded", true},
		{"safety no match", Safety, "unit is cooling normally", false},
		{"action verb", ActionVerbs, "1. Check voltage at the contactor", true},
		{"action multiword", ActionVerbs, "Shut down the system before servicing", true},
		{"professional", Professional, "call a licensed technician", true},
		{"professional absent", Professional, "replace the filter yourself", false},
		{"empty text", Safety, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Matches(tt.text); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestStripBullet(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1. Check voltage at the contactor", "Check voltage at the contactor"},
		{"- Verify gas pressure", "Verify gas pressure"},
		{"• Inspect the heat exchanger", "Inspect the heat exchanger"},
		{"* Measure amp draw", "Measure amp draw"},
		{"  10. Test the capacitor  ", "Test the capacitor"},
		{"No marker here", "No marker here"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripBullet(tt.in); got != tt.want {
			t.Errorf("StripBullet(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsEnumerated(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1. Check voltage", true},
		{"12. Later step", true},
		{"- dash item", true},
		{"• bullet item", true},
		{"* star item", true},
		{"plain sentence", false},
		{"2019 was the install year", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsEnumerated(tt.in); got != tt.want {
			t.Errorf("IsEnumerated(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPhotoTagsDedup(t *testing.T) {
	text := "Send a photo of the rating plate. The rating plate also shows wiring details near the gas valve."
	got := PhotoTags(text)
	want := []string{"rating_plate", "wiring_diagram", "gas_valve"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PhotoTags() = %v, want %v", got, want)
	}
}

func TestPartNames(t *testing.T) {
	text := "Likely a failed capacitor or contactor. The capacitor shows bulging. Check the gas valve too."
	got := PartNames(text)
	want := []string{"Contactor", "Capacitor", "Gas Valve"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PartNames() = %v, want %v", got, want)
	}

	if names := PartNames("nothing relevant here"); names != nil {
		t.Errorf("PartNames() on no-match text = %v, want nil", names)
	}
}

func TestContainsDigit(t *testing.T) {
	if !ContainsDigit("allow 30-45 minutes") {
		t.Error("expected digit match")
	}
	if ContainsDigit("no numerals present") {
		t.Error("unexpected digit match")
	}
}
