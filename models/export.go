package models

// ExportBundle is the admin import/export file format: one JSON object
// holding the four persisted collections plus an export timestamp.
//
// On import any subset of the four collection keys may be present; each
// present key fully replaces that collection and absent keys leave the
// stored collection untouched. Presence is detected by a non-nil field
// after unmarshaling, so the four keys must not carry omitempty.
type ExportBundle struct {
	Users       []User                `json:"users"`
	Cases       []Case                `json:"cases"`
	Groups      []CaseGroup           `json:"groups"`
	CaseDetails map[string]CaseDetail `json:"caseDetails"`
	ExportDate  string                `json:"exportDate,omitempty"`
}
