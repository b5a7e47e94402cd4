package resources

import "testing"

func TestExtractQuery(t *testing.T) {
	tests := []struct {
		name     string
		analysis string
		want     string
	}{
		{
			"manufacturer and model",
			"Manufacturer: Carrier\nModel Number: 58STA090\nCapacity: 90000 BTU",
			"Carrier 58STA090",
		},
		{
			"bulleted labels",
			"- Brand: Trane\n- Model: XR16-036",
			"Trane XR16-036",
		},
		{
			"model only",
			"Model No: GMS80453AN\nSerial: 1234",
			"GMS80453AN",
		},
		{
			"manufacturer only",
			"Make: Goodman\nno model listed",
			"Goodman",
		},
		{
			"inline labels",
			"The plate shows manufacturer: Lennox and model #: EL296V",
			"Lennox EL296V",
		},
		{
			"neither",
			"The photo is too blurry to read any identifiers.",
			"",
		},
		{
			"empty",
			"",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractQuery(tt.analysis); got != tt.want {
				t.Errorf("ExtractQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractQueryPrefersLabeledLines(t *testing.T) {
	analysis := "Model Number: ABC-123\nModel: WRONG-1"
	if got := ExtractQuery(analysis); got != "ABC-123" {
		t.Errorf("ExtractQuery() = %q, want ABC-123", got)
	}
}
