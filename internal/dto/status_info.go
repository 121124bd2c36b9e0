package dto

// StatusInfo is a status value plus its display metadata. Unknown upstream
// values still render: the registry falls back to the raw value with
// neutral severity.
type StatusInfo struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Severity string `json:"severity"`
}
