package notification

// Severity is the closed set of alert kinds.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeveritySuccess, SeverityError, SeverityInfo, SeverityWarning:
		return true
	}
	return false
}

// Notification is a transient alert. Timestamp is unix milliseconds.
type Notification struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	Severity  Severity `json:"type"`
	Timestamp int64    `json:"timestamp,omitempty"`
}
