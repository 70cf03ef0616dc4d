package models

// DashboardRequest is the explicit immutable request object for one render
// cycle. The UI layer owns no computation logic; it only builds one of these
// per interaction.
type DashboardRequest struct {
	Region Region      `json:"region"`
	View   ViewMode    `json:"view"`
	Filter FilterState `json:"filter"`
	Query  string      `json:"query"`
}
