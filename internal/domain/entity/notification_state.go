package entity

import "time"

// NotificationStateVersion is the schema version of the local cache file.
// Bump it when NotificationState changes shape; loaders must discard
// snapshots with an unknown version rather than guess.
const NotificationStateVersion = 1

// NotificationState tracks which notices have already been surfaced to the
// recipient. It is a local cache only; the record store stays the durable
// source of truth.
type NotificationState struct {
	Version       int                 `json:"version"`
	WalletAddress string              `json:"wallet_address"`
	Entries       []NotificationEntry `json:"entries"`
}

// NotificationEntry is one surfaced notice. A notice id appears at most once.
type NotificationEntry struct {
	NoticeID   uint64    `json:"notice_id"`
	Read       bool      `json:"read"`
	ReceivedAt time.Time `json:"received_at"`
}

// Seen reports whether the notice id has already been surfaced.
func (s *NotificationState) Seen(noticeID uint64) bool {
	for i := range s.Entries {
		if s.Entries[i].NoticeID == noticeID {
			return true
		}
	}

	return false
}

// UnreadCount returns the number of entries not yet marked read.
func (s *NotificationState) UnreadCount() int {
	count := 0
	for i := range s.Entries {
		if !s.Entries[i].Read {
			count++
		}
	}

	return count
}

// Clone returns a deep copy so snapshots can leave the update path safely.
func (s *NotificationState) Clone() *NotificationState {
	cloned := &NotificationState{
		Version:       s.Version,
		WalletAddress: s.WalletAddress,
		Entries:       make([]NotificationEntry, len(s.Entries)),
	}
	copy(cloned.Entries, s.Entries)

	return cloned
}
