// Package nameplate converts vision-model free text describing an equipment
// rating plate into a categorized specification record.
package nameplate

// Record is the typed result of a rating-plate analysis. Scalar fields hold
// identification data; the category maps hold open "Label: value" pairs. A key
// claimed by one category never appears in another - first match wins in the
// category precedence order of the extractor.
type Record struct {
	ModelNumber   string `json:"model_number,omitempty"`
	SerialNumber  string `json:"serial_number,omitempty"`
	Manufacturer  string `json:"manufacturer,omitempty"`
	EquipmentType string `json:"equipment_type,omitempty"`

	CapacityBTUH      int    `json:"capacity_btuh,omitempty"`
	RefrigerantType   string `json:"refrigerant_type,omitempty"`
	RefrigerantCharge string `json:"refrigerant_charge,omitempty"`

	ElectricalSpecs    map[string]string `json:"electrical_specs,omitempty"`
	CapacitorSpecs     map[string]string `json:"capacitor_specs,omitempty"`
	CompressorSpecs    map[string]string `json:"compressor_specs,omitempty"`
	EfficiencyRatings  map[string]string `json:"efficiency_ratings,omitempty"`
	OperatingPressures map[string]string `json:"operating_pressures,omitempty"`
	AdditionalSpecs    map[string]string `json:"additional_specs,omitempty"`

	YearManufactured int `json:"year_manufactured,omitempty"`

	// RawAnalysis preserves the verbatim vision-model text.
	RawAnalysis string `json:"raw_analysis,omitempty"`
}
