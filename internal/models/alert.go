package models

import "time"

// AlertSeverity represents the severity level of an alert
type AlertSeverity string

const (
	SeverityExtreme  AlertSeverity = "Extreme"
	SeveritySevere   AlertSeverity = "Severe"
	SeverityModerate AlertSeverity = "Moderate"
	SeverityMinor    AlertSeverity = "Minor"
	SeverityUnknown  AlertSeverity = "Unknown"
)

// Alert represents a severe-weather alert as delivered with the forecast
type Alert struct {
	Headline    string `json:"headline"`
	MsgType     string `json:"msgtype"`
	Severity    string `json:"severity"`
	Urgency     string `json:"urgency"` // e.g., "Immediate", "Expected"
	Areas       string `json:"areas"`
	Category    string `json:"category"`
	Certainty   string `json:"certainty"` // e.g., "Likely", "Possible"
	Event       string `json:"event"`     // e.g., "Flood Warning"
	Note        string `json:"note"`
	Effective   string `json:"effective"` // RFC3339
	Expires     string `json:"expires"`   // RFC3339
	Description string `json:"desc"`
	Instruction string `json:"instruction"`
}

// Level maps the free-form severity string to a known severity
func (a *Alert) Level() AlertSeverity {
	switch AlertSeverity(a.Severity) {
	case SeverityExtreme, SeveritySevere, SeverityModerate, SeverityMinor:
		return AlertSeverity(a.Severity)
	default:
		return SeverityUnknown
	}
}

// IsActive checks if the alert window contains now.
// Alerts with unparseable timestamps are treated as active.
func (a *Alert) IsActive(now time.Time) bool {
	effective, errE := time.Parse(time.RFC3339, a.Effective)
	expires, errX := time.Parse(time.RFC3339, a.Expires)
	if errE == nil && now.Before(effective) {
		return false
	}
	if errX == nil && now.After(expires) {
		return false
	}
	return true
}
