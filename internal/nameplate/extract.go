package nameplate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/larklabs/hvacjack/internal/heuristics"
)

var (
	btuPattern         = regexp.MustCompile(`(\d+,?\d*)\s*btu`)
	refrigerantPattern = regexp.MustCompile(`(r-?\d+[a-z]*)`)
	yearPattern        = regexp.MustCompile(`(19\d{2}|20\d{2})`)
)

// Extract parses vision-model free text into a Record. It is a single
// line-oriented pass; each line is claimed by the first matching category in
// precedence order (identification, capacity/refrigerant, electrical,
// capacitor, compressor, efficiency, pressure, year, additional). Malformed
// text never fails - unmatched lines are simply skipped.
func Extract(raw string) *Record {
	rec := &Record{
		RawAnalysis:        raw,
		ElectricalSpecs:    make(map[string]string),
		CapacitorSpecs:     make(map[string]string),
		CompressorSpecs:    make(map[string]string),
		EfficiencyRatings:  make(map[string]string),
		OperatingPressures: make(map[string]string),
		AdditionalSpecs:    make(map[string]string),
	}

	for _, line := range heuristics.Lines(raw) {
		lower := strings.ToLower(strings.TrimSpace(line))

		switch {
		// Identification
		case strings.Contains(lower, "model") && hasSeparator(line):
			if v := splitValue(line); v != "" && rec.ModelNumber == "" {
				rec.ModelNumber = v
			}
		case strings.Contains(lower, "serial") && hasSeparator(line):
			if v := splitValue(line); v != "" && rec.SerialNumber == "" {
				rec.SerialNumber = v
			}
		case containsAny(lower, "manufacturer", "brand", "make") && hasSeparator(line):
			if v := splitValue(line); v != "" && rec.Manufacturer == "" {
				rec.Manufacturer = v
			}
		case isEquipmentTypeLine(lower):
			if v := splitValue(line); v != "" && rec.EquipmentType == "" {
				rec.EquipmentType = v
			}

		// Capacity and refrigerant
		case strings.Contains(lower, "capacity") && strings.Contains(lower, "btu"):
			if m := btuPattern.FindStringSubmatch(lower); m != nil {
				if n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
					rec.CapacityBTUH = n
				}
			}
		case strings.Contains(lower, "refrigerant") && containsAny(lower, "r-", "r410", "r22", "r32"):
			if m := refrigerantPattern.FindStringSubmatch(lower); m != nil {
				rec.RefrigerantType = strings.ToUpper(m[1])
			} else if strings.Contains(line, ":") {
				rec.RefrigerantType = splitValue(line)
			}
		case strings.Contains(lower, "charge") && containsAny(lower, "oz", "lb", "kg"):
			if strings.Contains(line, ":") {
				rec.RefrigerantCharge = splitValue(line)
			} else {
				rec.RefrigerantCharge = strings.TrimSpace(line)
			}

		// Category specs, in precedence order
		case containsAny(lower, "voltage", "volts", "amperage", "amps", "watts", "phase", "frequency") && strings.Contains(line, ":"):
			putSpec(rec.ElectricalSpecs, line)
		case strings.Contains(lower, "capacitor") && containsAny(lower, "µf", "μf", "uf", "mfd"):
			if strings.Contains(line, ":") {
				putSpec(rec.CapacitorSpecs, line)
			} else {
				rec.CapacitorSpecs["Capacitor"] = strings.TrimSpace(line)
			}
		case containsAny(lower, "rla", "lra", "compressor") && strings.Contains(line, ":"):
			putSpec(rec.CompressorSpecs, line)
		case containsAny(lower, "seer", "afue", "hspf", "eer", "cop") && strings.Contains(line, ":"):
			putSpec(rec.EfficiencyRatings, line)
		case strings.Contains(lower, "pressure") && strings.Contains(line, ":"):
			putSpec(rec.OperatingPressures, line)

		// Year
		case containsAny(lower, "year", "date"):
			if m := yearPattern.FindStringSubmatch(line); m != nil {
				if y, err := strconv.Atoi(m[1]); err == nil {
					rec.YearManufactured = y
				}
			}

		// Anything else with a colon lands in additional specs, unless a
		// category already claimed the same key.
		case strings.Contains(line, ":"):
			key, value := splitKeyValue(line)
			if key != "" && value != "" && !rec.claimed(key) {
				rec.AdditionalSpecs[key] = value
			}
		}
	}

	return rec
}

// claimed reports whether a key already lives in one of the category maps.
func (r *Record) claimed(key string) bool {
	for _, m := range []map[string]string{
		r.ElectricalSpecs, r.CapacitorSpecs, r.CompressorSpecs,
		r.EfficiencyRatings, r.OperatingPressures, r.AdditionalSpecs,
	} {
		if _, ok := m[key]; ok {
			return true
		}
	}
	return false
}

// isEquipmentTypeLine matches equipment-type identification lines. The bare
// "type:" trigger is guarded so refrigerant-type lines stay with the
// refrigerant category.
func isEquipmentTypeLine(lower string) bool {
	if strings.Contains(lower, "equipment type") || strings.Contains(lower, "unit type") {
		return true
	}
	return strings.Contains(lower, "type:") && !strings.Contains(lower, "refrigerant")
}

// hasSeparator reports whether the line carries a key/value separator.
func hasSeparator(line string) bool {
	return strings.Contains(line, ":") || strings.Contains(line, "-")
}

// splitValue returns the value half of a key/value line. The first colon is
// preferred; if absent, the first hyphen is used.
func splitValue(line string) string {
	sep := ":"
	if !strings.Contains(line, ":") {
		sep = "-"
	}
	parts := strings.SplitN(line, sep, 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// splitKeyValue splits a colon-delimited line into trimmed key and value.
func splitKeyValue(line string) (string, string) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) < 2 {
		return "", ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// putSpec inserts a colon-delimited line into a category map.
func putSpec(m map[string]string, line string) {
	key, value := splitKeyValue(line)
	if key != "" && value != "" {
		m[key] = value
	}
}

// containsAny reports whether s contains any of the substrings.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
