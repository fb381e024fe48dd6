package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEventType enumerates tracked recipient interactions.
type ActivityEventType string

const (
	ActivityConnection     ActivityEventType = "connection"
	ActivityView           ActivityEventType = "view"
	ActivityDocumentAction ActivityEventType = "document_action"
	ActivityAcknowledgment ActivityEventType = "acknowledgment"
)

// Valid reports whether the event type is one of the known values.
func (t ActivityEventType) Valid() bool {
	switch t {
	case ActivityConnection, ActivityView, ActivityDocumentAction, ActivityAcknowledgment:
		return true
	default:
		return false
	}
}

// RecipientActivityEvent is a single tracked recipient interaction. Events
// form the audit trail consumed by court-report generation; they are never
// mutated except for the acknowledgment upsert and never deleted.
type RecipientActivityEvent struct {
	ID            uuid.UUID         `json:"id"`
	CaseNumber    string            `json:"case_number,omitempty"`
	NoticeID      uint64            `json:"notice_id,omitempty"`
	WalletAddress string            `json:"wallet_address"`
	EventType     ActivityEventType `json:"event_type"`
	OccurredAt    time.Time         `json:"occurred_at"`

	IPAddress string       `json:"ip_address,omitempty"`
	UserAgent string       `json:"user_agent,omitempty"`
	Location  *GeoLocation `json:"location,omitempty"` // Best-effort; nil when lookup failed.

	// Acknowledgment-only fields.
	Signature       string `json:"signature,omitempty"`
	TransactionHash string `json:"transaction_hash,omitempty"`
}

// GeoLocation is the best-effort IP geolocation attached to an event.
type GeoLocation struct {
	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`
	City    string `json:"city,omitempty"`
}
