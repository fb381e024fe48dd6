package impl

import (
	"testing"
	"time"

	"noticetrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_BackendFieldsPreserved(t *testing.T) {
	served := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	deadline := served.Add(30 * 24 * time.Hour)

	chain := []*entity.Notice{
		{NoticeID: 42, Sender: "TSenderAddr", RecipientAddress: "TRecipientAddr", ServedAt: served, VerifiedOnChain: true},
	}
	backend := []*entity.Notice{
		{
			NoticeID:         42,
			CaseNumber:       "34-9633",
			IssuingAgency:    "District Court",
			NoticeType:       "Summons",
			Status:           entity.NoticeStatusViewed,
			ResponseDeadline: &deadline,
			ServedAt:         served.Add(-time.Hour),
		},
	}

	merged, dropped := Reconcile(chain, backend)

	require.Len(t, merged, 1)
	assert.Equal(t, 0, dropped)

	got := merged[0]
	assert.Equal(t, "34-9633", got.CaseNumber)
	assert.Equal(t, "District Court", got.IssuingAgency)
	assert.Equal(t, "Summons", got.NoticeType)
	assert.Equal(t, entity.NoticeStatusViewed, got.Status)
	assert.Equal(t, &deadline, got.ResponseDeadline)
	assert.False(t, got.FromChainOnly)
	// Chain-attested fields stay as the chain reported them.
	assert.Equal(t, "TSenderAddr", got.Sender)
	assert.Equal(t, served, got.ServedAt)
	assert.True(t, got.VerifiedOnChain)
}

func TestReconcile_ChainValueWinsOnConflict(t *testing.T) {
	chain := []*entity.Notice{
		{NoticeID: 7, Sender: "TChainSender", CaseNumber: "11-0001"},
	}
	backend := []*entity.Notice{
		{NoticeID: 7, Sender: "TStaleSender", CaseNumber: "99-9999"},
	}

	merged, _ := Reconcile(chain, backend)

	require.Len(t, merged, 1)
	assert.Equal(t, "TChainSender", merged[0].Sender)
	assert.Equal(t, "11-0001", merged[0].CaseNumber)
}

func TestReconcile_ChainAcknowledgmentOverridesStaleStatus(t *testing.T) {
	ackAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	chain := []*entity.Notice{
		{NoticeID: 5, Acknowledged: true},
	}
	backend := []*entity.Notice{
		{NoticeID: 5, Status: entity.NoticeStatusServed, AcknowledgedAt: &ackAt},
	}

	merged, _ := Reconcile(chain, backend)

	require.Len(t, merged, 1)
	assert.Equal(t, entity.NoticeStatusSigned, merged[0].Status)
	assert.Equal(t, &ackAt, merged[0].AcknowledgedAt)
}

func TestReconcile_BackendAcknowledgmentSurvivesStaleChain(t *testing.T) {
	ackAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	// The chain has not indexed the signing yet; the store already has.
	chain := []*entity.Notice{
		{NoticeID: 7, Acknowledged: false, Status: entity.NoticeStatusServed},
	}
	backend := []*entity.Notice{
		{NoticeID: 7, Acknowledged: true, Status: entity.NoticeStatusSigned, AcknowledgedAt: &ackAt},
	}

	merged, _ := Reconcile(chain, backend)

	require.Len(t, merged, 1)
	assert.True(t, merged[0].Acknowledged)
	assert.Equal(t, entity.NoticeStatusSigned, merged[0].Status)
	assert.Equal(t, &ackAt, merged[0].AcknowledgedAt)
}

func TestReconcile_BackendSignedStatusImpliesAcknowledged(t *testing.T) {
	chain := []*entity.Notice{
		{NoticeID: 8, Acknowledged: false},
	}
	backend := []*entity.Notice{
		{NoticeID: 8, Status: entity.NoticeStatusSigned},
	}

	merged, _ := Reconcile(chain, backend)

	require.Len(t, merged, 1)
	assert.True(t, merged[0].Acknowledged)
	assert.Equal(t, entity.NoticeStatusSigned, merged[0].Status)
}

func TestReconcile_BackendOnlyDraftKept(t *testing.T) {
	backend := []*entity.Notice{
		{CaseNumber: "22-1234", Status: entity.NoticeStatusServed},
	}

	merged, dropped := Reconcile(nil, backend)

	require.Len(t, merged, 1)
	assert.Equal(t, 0, dropped)
	assert.False(t, merged[0].FromChainOnly)
	assert.Equal(t, "22-1234", merged[0].CaseNumber)
}

func TestReconcile_ChainOnlyMarked(t *testing.T) {
	chain := []*entity.Notice{
		{NoticeID: 3, VerifiedOnChain: true},
	}

	merged, _ := Reconcile(chain, nil)

	require.Len(t, merged, 1)
	assert.True(t, merged[0].FromChainOnly)
}

func TestReconcile_UnkeyableRecordsDropped(t *testing.T) {
	chain := []*entity.Notice{
		{NoticeID: 1},
		{Sender: "TNoKeyChain"},
	}
	backend := []*entity.Notice{
		{Status: entity.NoticeStatusServed},
	}

	merged, dropped := Reconcile(chain, backend)

	require.Len(t, merged, 1)
	assert.Equal(t, 2, dropped)
	assert.Equal(t, uint64(1), merged[0].NoticeID)
}

func TestReconcile_AlertAndCaseKeysMatch(t *testing.T) {
	chain := []*entity.Notice{
		{AlertID: 17},
	}
	backend := []*entity.Notice{
		{AlertID: 17, CaseNumber: "17-0017"},
		{CaseNumber: "30-3000", NoticeType: "Subpoena"},
	}

	merged, dropped := Reconcile(chain, backend)

	require.Len(t, merged, 2)
	assert.Equal(t, 0, dropped)

	byKey := map[string]*entity.Notice{}
	for _, n := range merged {
		byKey[n.Key()] = n
	}
	assert.Equal(t, "17-0017", byKey["alert:17"].CaseNumber)
	assert.Equal(t, "Subpoena", byKey["case:30-3000"].NoticeType)
}

func TestReconcile_DuplicateChainKeysFirstWins(t *testing.T) {
	chain := []*entity.Notice{
		{NoticeID: 9, Sender: "TFirst"},
		{NoticeID: 9, Sender: "TSecond"},
	}

	merged, _ := Reconcile(chain, nil)

	require.Len(t, merged, 1)
	assert.Equal(t, "TFirst", merged[0].Sender)
}

func TestReconcile_SortedByServedAtDescending(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	chain := []*entity.Notice{
		{NoticeID: 1, ServedAt: base},
		{NoticeID: 2, ServedAt: base.Add(2 * time.Hour)},
	}
	backend := []*entity.Notice{
		{CaseNumber: "10-1000", ServedAt: base.Add(time.Hour)},
	}

	merged, _ := Reconcile(chain, backend)

	require.Len(t, merged, 3)
	assert.Equal(t, uint64(2), merged[0].NoticeID)
	assert.Equal(t, "10-1000", merged[1].CaseNumber)
	assert.Equal(t, uint64(1), merged[2].NoticeID)
}

func TestReconcile_EmptyInputs(t *testing.T) {
	merged, dropped := Reconcile(nil, nil)

	assert.Empty(t, merged)
	assert.Equal(t, 0, dropped)
}

func TestReconcile_InputsNotMutated(t *testing.T) {
	chainNotice := &entity.Notice{NoticeID: 4}
	backendNotice := &entity.Notice{NoticeID: 4, CaseNumber: "44-0044"}

	merged, _ := Reconcile([]*entity.Notice{chainNotice}, []*entity.Notice{backendNotice})

	require.Len(t, merged, 1)
	assert.Equal(t, "44-0044", merged[0].CaseNumber)
	assert.Empty(t, chainNotice.CaseNumber)
	assert.False(t, chainNotice.FromChainOnly)
}
