package service

import "context"

// NoticeAlert is the payload handed to the notifier when a poll cycle
// discovers a notice the recipient has not been shown yet.
type NoticeAlert struct {
	NoticeID      uint64 `json:"notice_id"`
	CaseNumber    string `json:"case_number,omitempty"`
	NoticeType    string `json:"notice_type,omitempty"`
	Sender        string `json:"sender,omitempty"`
	IssuingAgency string `json:"issuing_agency,omitempty"`
	UnreadCount   int    `json:"unread_count"`
}

// Notifier surfaces new-notice events to the recipient. Delivery is
// best-effort: the poller logs failures and keeps processing.
type Notifier interface {
	// NotifyNewNotice raises a single new-notice alert.
	NotifyNewNotice(ctx context.Context, alert *NoticeAlert) error

	// Close releases any resources held by the notifier.
	Close() error
}
