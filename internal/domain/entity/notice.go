// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
	"time"
)

// Notice statuses tracked by the record store. A case reaching
// StatusSigned is terminal; later views never revert it.
const (
	NoticeStatusServed = "served"
	NoticeStatusViewed = "viewed"
	NoticeStatusSigned = "signed"
)

// Notice represents a single served legal notice. A notice is split into a
// pair of token ids on chain: the alert token (public preview) and the
// document token (restricted full document). Token id zero means "not known",
// since the notice contract mints ids starting at one.
type Notice struct {
	NoticeID   uint64 `json:"notice_id"`   // Chain token id; zero for backend-only drafts.
	AlertID    uint64 `json:"alert_id"`    // Alert half of the token pair.
	DocumentID uint64 `json:"document_id"` // Document half of the token pair.
	CaseNumber string `json:"case_number"` // Court case number; may span multiple notices.

	Sender           string `json:"sender"`            // Serving party's wallet address.
	RecipientAddress string `json:"recipient_address"` // Wallet the notice was served to.
	IssuingAgency    string `json:"issuing_agency"`
	NoticeType       string `json:"notice_type"`

	ServedAt         time.Time  `json:"served_at"`                   // Service time.
	ResponseDeadline *time.Time `json:"response_deadline,omitempty"` // Deadline to respond, if any.

	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	Status         string     `json:"status,omitempty"` // Record-store lifecycle status.

	// Provenance. VerifiedOnChain is set when the record's existence was
	// confirmed by a direct chain read; FromChainOnly marks records the
	// backend store has not caught up with yet.
	VerifiedOnChain bool `json:"verified_on_chain"`
	FromChainOnly   bool `json:"from_chain_only,omitempty"`
}

// Key returns the best available reconciliation key for the notice:
// notice id, then alert id, then case number. Empty means unkeyable.
func (n *Notice) Key() string {
	switch {
	case n.NoticeID != 0:
		return "id:" + strconv.FormatUint(n.NoticeID, 10)
	case n.AlertID != 0:
		return "alert:" + strconv.FormatUint(n.AlertID, 10)
	case n.CaseNumber != "":
		return "case:" + n.CaseNumber
	default:
		return ""
	}
}
