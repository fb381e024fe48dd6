package model

import (
	"time"
)

// NoticeModel is the GORM-specific struct for the 'served_notices' table.
// It represents a single served legal notice tracked by the record store.
type NoticeModel struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	// NoticeID is the chain token id. Zero marks a backend draft the chain
	// has not minted yet, so uniqueness is enforced per positive id only
	// (see migration: partial unique index on notice_id > 0).
	NoticeID   uint64 `gorm:"index"`
	AlertID    uint64 `gorm:"index"`
	DocumentID uint64

	CaseNumber       string `gorm:"type:text;not null;index"`
	Sender           string `gorm:"type:text;not null"`
	RecipientAddress string `gorm:"type:text;not null;index"`
	IssuingAgency    string `gorm:"type:text"`
	NoticeType       string `gorm:"type:text"`

	ServedAt         time.Time `gorm:"not null"`
	ResponseDeadline *time.Time

	Acknowledged   bool `gorm:"not null;default:false"`
	AcknowledgedAt *time.Time
	Status         string `gorm:"type:text;not null;default:'served'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NoticeModel) TableName() string {
	return "served_notices"
}
