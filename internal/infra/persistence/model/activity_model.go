package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEventModel is the GORM-specific struct for the
// 'recipient_activity_events' table. Rows form the append-only audit trail
// consumed by court-report generation; only the acknowledgment row of a
// (case, wallet) pair is ever updated in place.
//
// The acknowledgment upsert in the activity repository relies on the partial
// unique index declared below. Deployments managing the schema by hand need:
//
//	CREATE UNIQUE INDEX uniq_case_wallet_acknowledgment
//	    ON recipient_activity_events (case_number, wallet_address)
//	    WHERE event_type = 'acknowledgment';
type ActivityEventModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CaseNumber    string    `gorm:"type:text;index;uniqueIndex:uniq_case_wallet_acknowledgment,where:event_type = 'acknowledgment'"`
	NoticeID      uint64    `gorm:"index"`
	WalletAddress string    `gorm:"type:text;not null;index;uniqueIndex:uniq_case_wallet_acknowledgment"`
	EventType     string    `gorm:"type:text;not null"`
	OccurredAt    time.Time `gorm:"not null;index"`

	IPAddress string `gorm:"type:text"`
	UserAgent string `gorm:"type:text"`

	// Flattened best-effort geolocation; all empty when lookup failed.
	GeoCountry string `gorm:"type:text"`
	GeoRegion  string `gorm:"type:text"`
	GeoCity    string `gorm:"type:text"`

	Signature       string `gorm:"type:text"`
	TransactionHash string `gorm:"type:text"`

	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityEventModel) TableName() string {
	return "recipient_activity_events"
}
