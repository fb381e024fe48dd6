// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"sort"

	"noticetrack/internal/domain/entity"
)

// Reconcile merges the chain's view of a recipient's notices with the record
// store's view. The chain is authoritative for everything it attests to:
// on a conflict the chain value wins. Fields only the record store knows
// (case metadata, lifecycle status, agency, type) are carried over from the
// backend record. Records without any reconciliation key cannot be matched
// and are dropped; the count of dropped records is returned for reporting.
//
// The merged slice is ordered by service time, newest first.
func Reconcile(chain, backend []*entity.Notice) ([]*entity.Notice, int) {
	dropped := 0
	merged := make([]*entity.Notice, 0, len(chain)+len(backend))
	index := make(map[string]*entity.Notice, len(chain))

	for _, notice := range chain {
		key := notice.Key()
		if key == "" {
			dropped++

			continue
		}
		if _, exists := index[key]; exists {
			// Duplicate chain record for the same key; first one wins.
			continue
		}

		cloned := *notice
		// Until a backend record claims it, a chain record is chain-only.
		cloned.FromChainOnly = true
		index[key] = &cloned
		merged = append(merged, &cloned)
	}

	for _, notice := range backend {
		key := notice.Key()
		if key == "" {
			dropped++

			continue
		}

		existing, exists := index[key]
		if !exists {
			cloned := *notice
			index[key] = &cloned
			merged = append(merged, &cloned)

			continue
		}

		mergeBackendInto(existing, notice)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].ServedAt.After(merged[j].ServedAt)
	})

	return merged, dropped
}

// mergeBackendInto copies the backend-only fields of the matching store
// record into the chain record. Chain-attested fields are left untouched.
func mergeBackendInto(chain *entity.Notice, backend *entity.Notice) {
	chain.FromChainOnly = false

	if chain.CaseNumber == "" {
		chain.CaseNumber = backend.CaseNumber
	}
	if chain.IssuingAgency == "" {
		chain.IssuingAgency = backend.IssuingAgency
	}
	if chain.NoticeType == "" {
		chain.NoticeType = backend.NoticeType
	}
	if chain.Status == "" {
		chain.Status = backend.Status
	}
	if chain.DocumentID == 0 {
		chain.DocumentID = backend.DocumentID
	}
	if chain.AlertID == 0 {
		chain.AlertID = backend.AlertID
	}
	if chain.ResponseDeadline == nil {
		chain.ResponseDeadline = backend.ResponseDeadline
	}
	if chain.AcknowledgedAt == nil {
		chain.AcknowledgedAt = backend.AcknowledgedAt
	}

	// Acknowledgment is monotonic. A chain record lagging behind the store's
	// signing (indexing delay right after an acknowledgment) must not revert
	// the acknowledged state.
	if backend.Acknowledged || backend.Status == entity.NoticeStatusSigned {
		chain.Acknowledged = true
	}

	// The chain attesting an acknowledgment overrides a stale store status.
	if chain.Acknowledged && chain.Status != entity.NoticeStatusSigned {
		chain.Status = entity.NoticeStatusSigned
	}
}
