package models

import "time"

// Step kinds in the quoting wizard.
const (
	StepServiceSelection = "service_selection"
	StepServiceConfig    = "service_config"
	StepSummary          = "summary"
)

// Step identifies one wizard step. ServiceID is set only for config steps.
type Step struct {
	Kind      string `json:"kind"`
	ServiceID string `json:"serviceId,omitempty"`
}

// QuoteSession holds the wizard state between requests. Step indices are
// 1-based; the step list itself is derived from the selection on every read,
// never stored.
type QuoteSession struct {
	SessionID    string         `json:"sessionId"`
	Selection    SelectionState `json:"selection"`
	CurrentStep  int            `json:"currentStep"`
	FurthestStep int            `json:"furthestStep"`
	CreatedAt    time.Time      `json:"createdAt"`
}
