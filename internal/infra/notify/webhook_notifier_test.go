package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"noticetrack/config"
	"noticetrack/internal/domain/constants"
	"noticetrack/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWebhookNotifier_PostsAlert(t *testing.T) {
	var received service.NoticeAlert

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	notifier := NewWebhookNotifier(srv.URL, discardLogger())
	err := notifier.NotifyNewNotice(context.Background(), &service.NoticeAlert{
		NoticeID:    42,
		CaseNumber:  "34-2501-PN",
		UnreadCount: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), received.NoticeID)
	assert.Equal(t, 3, received.UnreadCount)
}

func TestWebhookNotifier_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	notifier := NewWebhookNotifier(srv.URL, discardLogger())
	err := notifier.NotifyNewNotice(context.Background(), &service.NoticeAlert{NoticeID: 1})
	require.Error(t, err)
}

func TestNewNotifier_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.NotifierConfig
		wantErr bool
	}{
		{name: "unconfigured falls back to noop", cfg: nil},
		{name: "noop provider", cfg: &config.NotifierConfig{Provider: constants.NotifierProviderNoop}},
		{name: "webhook provider", cfg: &config.NotifierConfig{Provider: constants.NotifierProviderWebhook, Endpoint: "http://127.0.0.1:9"}},
		{name: "webhook without endpoint", cfg: &config.NotifierConfig{Provider: constants.NotifierProviderWebhook}, wantErr: true},
		{name: "command provider", cfg: &config.NotifierConfig{Provider: constants.NotifierProviderCommand, Command: "true"}},
		{name: "command without command", cfg: &config.NotifierConfig{Provider: constants.NotifierProviderCommand}, wantErr: true},
		{name: "unknown provider", cfg: &config.NotifierConfig{Provider: "carrier-pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			notifier, err := NewNotifier(NotifierParams{
				Lc:     lc,
				Config: &config.Config{Notifier: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, notifier)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestNoopNotifier(t *testing.T) {
	notifier := &noopNotifier{logger: discardLogger()}
	require.NoError(t, notifier.NotifyNewNotice(context.Background(), &service.NoticeAlert{NoticeID: 5}))
	require.NoError(t, notifier.Close())
}
