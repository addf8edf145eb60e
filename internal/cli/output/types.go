package output

// RenderOutput is the JSON shape of one rendered document.
type RenderOutput struct {
	Name    string `json:"name,omitempty"`
	Dialect string `json:"dialect"`
	SQL     string `json:"sql"`
}

// CapabilityOutput is one capability answer.
type CapabilityOutput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PrecisionOutput is the precision policy for one type category.
type PrecisionOutput struct {
	Type    string `json:"type"`
	Max     int    `json:"max_precision"`
	Default int    `json:"default_precision"`
}

// CapabilitiesOutput is the JSON shape of the capabilities command.
type CapabilitiesOutput struct {
	Dialect      string             `json:"dialect"`
	Capabilities []CapabilityOutput `json:"capabilities"`
	Precision    []PrecisionOutput  `json:"precision"`
}

// DialectOutput is one registered dialect.
type DialectOutput struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

// ProbeOutput is the outcome of one verification probe.
type ProbeOutput struct {
	Name       string `json:"name"`
	Construct  string `json:"construct"`
	SQL        string `json:"sql,omitempty"`
	Passed     bool   `json:"passed"`
	Detail     string `json:"detail,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// VerifyOutput is the JSON shape of the verify command.
type VerifyOutput struct {
	Dialect       string        `json:"dialect"`
	ServerVersion string        `json:"server_version,omitempty"`
	Passed        int           `json:"passed"`
	Failed        int           `json:"failed"`
	Probes        []ProbeOutput `json:"probes"`
}
