package dto

// StartSessionRequest begins a rater's run.
type StartSessionRequest struct {
	RaterName string `json:"rater_name"`
}

// SessionStatus reports where a session is in its lifecycle.
type SessionStatus struct {
	ID        string `json:"id"`
	RaterName string `json:"rater_name"`
	Cursor    int    `json:"cursor"`
	Total     int    `json:"total"`
	Complete  bool   `json:"complete"`
}

// TrialResponse is the current trial as the rater sees it: the reference
// frame plus two anonymized slots. Model identities are resolved server-side
// and never exposed here.
type TrialResponse struct {
	Complete     bool   `json:"complete"`
	Cursor       int    `json:"cursor"`
	Total        int    `json:"total"`
	Filename     string `json:"filename,omitempty"`
	Category     string `json:"category,omitempty"`
	ReferenceURL string `json:"reference_url,omitempty"`
	SlotAURL     string `json:"slot_a_url,omitempty"`
	SlotBURL     string `json:"slot_b_url,omitempty"`
}

// JudgmentRequest records the rater's forced choice for the current trial.
type JudgmentRequest struct {
	Slot string `json:"slot"`
}

// DeliveryResponse reports a standalone delivery attempt of an already
// exported workbook.
type DeliveryResponse struct {
	Emailed bool   `json:"emailed"`
	Message string `json:"message"`
}

// FinalizeResponse reports the outcome of exporting and emailing the results.
type FinalizeResponse struct {
	Exported   bool   `json:"exported"`
	ExportPath string `json:"export_path,omitempty"`
	Emailed    bool   `json:"emailed"`
	Message    string `json:"message"`
}
