package tron

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"noticetrack/config"
	domainerrors "noticetrack/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode is a TronGrid stand-in keyed by function selector + parameter.
type fakeNode struct {
	t *testing.T

	// results maps "selector|parameter" to the hex constant result.
	results map[string]string
	// failures maps "selector|parameter" to an HTTP status to return.
	failures map[string]int

	calls int
}

func newFakeNode(t *testing.T) *fakeNode {
	return &fakeNode{
		t:        t,
		results:  make(map[string]string),
		failures: make(map[string]int),
	}
}

func (n *fakeNode) handler(w http.ResponseWriter, r *http.Request) {
	n.calls++

	body, err := io.ReadAll(r.Body)
	require.NoError(n.t, err)

	var req triggerConstantRequest
	require.NoError(n.t, json.Unmarshal(body, &req))

	key := req.FunctionSelector + "|" + req.Parameter
	if status, ok := n.failures[key]; ok {
		w.WriteHeader(status)

		return
	}

	result, ok := n.results[key]
	if !ok {
		// Unknown call: reject like a reverting contract.
		_ = json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{"result": false, "code": "CONTRACT_VALIDATE_ERROR"},
		})

		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"result":          map[string]any{"result": true},
		"constant_result": []string{result},
	})
}

func (n *fakeNode) setIndexEntry(address string, index int, noticeID uint64) {
	param := mustAddressParam(n.t, address) + uintParam(uint64(index))
	n.results[selectorRecipientAlerts+"|"+param] = uintParam(noticeID)
}

func (n *fakeNode) setBalance(address string, balance uint64) {
	n.results[selectorBalanceOf+"|"+mustAddressParam(n.t, address)] = uintParam(balance)
}

func (n *fakeNode) setOwnedToken(address string, index int, noticeID uint64) {
	param := mustAddressParam(n.t, address) + uintParam(uint64(index))
	n.results[selectorTokenOfOwnerByIndex+"|"+param] = uintParam(noticeID)
}

func (n *fakeNode) setNotice(noticeID uint64, recipient, sender string, servedAt time.Time, acknowledged bool) {
	ackWord := uintParam(0)
	if acknowledged {
		ackWord = uintParam(1)
	}
	result := mustAddressParam(n.t, recipient) +
		mustAddressParam(n.t, sender) +
		uintParam(uint64(servedAt.Unix())) +
		ackWord +
		uintParam(0) // no response deadline
	n.results[selectorGetNotice+"|"+uintParam(noticeID)] = result
}

func (n *fakeNode) setCompanion(alertID, documentID uint64) {
	n.results[selectorAlertToDocument+"|"+uintParam(alertID)] = uintParam(documentID)
}

func (n *fakeNode) failNotice(noticeID uint64, status int) {
	n.failures[selectorGetNotice+"|"+uintParam(noticeID)] = status
}

func mustAddressParam(t *testing.T, address string) string {
	t.Helper()
	param, err := addressParam(address)
	require.NoError(t, err)

	return param
}

func newTestReader(t *testing.T, endpoint string) *reader {
	t.Helper()

	svc, err := NewChainReader(ReaderParams{
		Config: &config.Config{
			Tron: &config.TronConfig{
				Endpoint:        endpoint,
				ContractAddress: testContractAddress,
			},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	r, ok := svc.(*reader)
	require.True(t, ok)

	return r
}

func TestListNoticesForRecipient_IndexStrategy(t *testing.T) {
	node := newFakeNode(t)
	servedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	node.setIndexEntry(testRecipientAddress, 0, 7)
	node.setIndexEntry(testRecipientAddress, 1, 9)
	node.setIndexEntry(testRecipientAddress, 2, 0) // sentinel
	node.setNotice(7, testRecipientAddress, testSenderAddress, servedAt, false)
	node.setNotice(9, testRecipientAddress, testSenderAddress, servedAt.Add(time.Hour), true)
	node.setCompanion(7, 8)
	// No companion mapping for 9: resolution failure leaves the field empty.

	srv := httptest.NewServer(http.HandlerFunc(node.handler))
	defer srv.Close()

	result, err := newTestReader(t, srv.URL).ListNoticesForRecipient(context.Background(), testRecipientAddress)
	require.NoError(t, err)
	require.Len(t, result.Notices, 2)
	assert.Equal(t, 0, result.Skipped)

	first := result.Notices[0]
	assert.Equal(t, uint64(7), first.NoticeID)
	assert.Equal(t, uint64(8), first.DocumentID)
	assert.Equal(t, testRecipientAddress, first.RecipientAddress)
	assert.Equal(t, testSenderAddress, first.Sender)
	assert.Equal(t, servedAt, first.ServedAt)
	assert.False(t, first.Acknowledged)
	assert.True(t, first.VerifiedOnChain)

	second := result.Notices[1]
	assert.Equal(t, uint64(9), second.NoticeID)
	assert.Equal(t, uint64(0), second.DocumentID)
	assert.True(t, second.Acknowledged)
}

func TestListNoticesForRecipient_SkipsFailedLookups(t *testing.T) {
	node := newFakeNode(t)
	servedAt := time.Now().Truncate(time.Second).UTC()

	node.setIndexEntry(testRecipientAddress, 0, 7)
	node.setIndexEntry(testRecipientAddress, 1, 9)
	node.setIndexEntry(testRecipientAddress, 2, 11)
	node.setIndexEntry(testRecipientAddress, 3, 0)
	node.setNotice(7, testRecipientAddress, testSenderAddress, servedAt, false)
	node.failNotice(9, http.StatusInternalServerError)
	node.setNotice(11, testRecipientAddress, testSenderAddress, servedAt, false)

	srv := httptest.NewServer(http.HandlerFunc(node.handler))
	defer srv.Close()

	result, err := newTestReader(t, srv.URL).ListNoticesForRecipient(context.Background(), testRecipientAddress)
	require.NoError(t, err)
	assert.Len(t, result.Notices, 2)
	assert.Equal(t, 1, result.Skipped)
}

func TestListNoticesForRecipient_EnumerationFallback(t *testing.T) {
	node := newFakeNode(t)
	servedAt := time.Now().Truncate(time.Second).UTC()
	otherRecipient := "TGCAjMXComunWZEXCT1LPBdcYbDVuyexBv"

	// Empty index forces the fallback.
	node.setIndexEntry(testRecipientAddress, 0, 0)
	node.setBalance(testRecipientAddress, 2)
	node.setOwnedToken(testRecipientAddress, 0, 21)
	node.setOwnedToken(testRecipientAddress, 1, 22)
	node.setNotice(21, testRecipientAddress, testSenderAddress, servedAt, false)
	// Token 22 belongs to an unrelated notice and must be filtered out.
	node.setNotice(22, otherRecipient, testSenderAddress, servedAt, false)

	srv := httptest.NewServer(http.HandlerFunc(node.handler))
	defer srv.Close()

	result, err := newTestReader(t, srv.URL).ListNoticesForRecipient(context.Background(), testRecipientAddress)
	require.NoError(t, err)
	require.Len(t, result.Notices, 1)
	assert.Equal(t, uint64(21), result.Notices[0].NoticeID)
}

func TestListNoticesForRecipient_InvalidAddressBeforeIO(t *testing.T) {
	node := newFakeNode(t)
	srv := httptest.NewServer(http.HandlerFunc(node.handler))
	defer srv.Close()

	_, err := newTestReader(t, srv.URL).ListNoticesForRecipient(context.Background(), "not-an-address")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_ADDRESS", appErr.ErrorCode())
	assert.Equal(t, 0, node.calls)
}

func TestListNoticesForRecipient_ChainUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestReader(t, srv.URL).ListNoticesForRecipient(context.Background(), testRecipientAddress)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CHAIN_UNAVAILABLE", appErr.ErrorCode())
}

func TestBalanceOf(t *testing.T) {
	node := newFakeNode(t)
	node.setBalance(testRecipientAddress, 3)

	srv := httptest.NewServer(http.HandlerFunc(node.handler))
	defer srv.Close()

	balance, err := newTestReader(t, srv.URL).BalanceOf(context.Background(), testRecipientAddress)
	require.NoError(t, err)
	assert.Equal(t, int64(3), balance)
}

func TestGetNotice(t *testing.T) {
	node := newFakeNode(t)
	servedAt := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	node.setNotice(42, testRecipientAddress, testSenderAddress, servedAt, false)
	node.setCompanion(42, 43)

	srv := httptest.NewServer(http.HandlerFunc(node.handler))
	defer srv.Close()

	notice, err := newTestReader(t, srv.URL).GetNotice(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), notice.NoticeID)
	assert.Equal(t, uint64(43), notice.DocumentID)
	assert.Equal(t, servedAt, notice.ServedAt)
	assert.True(t, notice.VerifiedOnChain)
}
