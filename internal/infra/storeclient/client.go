// Package storeclient implements the record-store boundary over the
// noticeserver HTTP API.
package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"noticetrack/config"
	"noticetrack/internal/domain/entity"
	domainerrors "noticetrack/internal/domain/errors"
	"noticetrack/internal/domain/service"
	"noticetrack/internal/errors"

	"go.uber.org/fx"
)

const defaultCallTimeout = 10 * time.Second

type client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

// ClientParams holds dependencies for the record-store client.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRecordStore builds the HTTP record-store client used by the recipient agent.
func NewRecordStore(params ClientParams) (service.RecordStore, error) {
	cfg := params.Config.RecordStore
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("record store base url is not configured")
	}

	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}

	return &client{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      params.Logger,
	}, nil
}

// dataEnvelope is the success envelope written by the noticeserver API.
type dataEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// GetNoticesForRecipient fetches the backend's notices for a wallet. A wallet
// the store has never seen yields an empty list, not an error.
func (c *client) GetNoticesForRecipient(ctx context.Context, address string) ([]*entity.Notice, error) {
	path := "/api/v1/wallets/" + url.PathEscape(address) + "/notices"

	body, status, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, c.failureError(status, body)
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}

	var notices []*entity.Notice
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &notices); err != nil {
			return nil, domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
		}
	}

	return notices, nil
}

// UpsertActivityEvent records a recipient interaction in the backend store.
func (c *client) UpsertActivityEvent(ctx context.Context, event *entity.RecipientActivityEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	body, status, err := c.do(ctx, http.MethodPost, "/api/v1/activities", payload)
	if err != nil {
		return domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return c.failureError(status, body)
	}

	return nil
}

type acknowledgeRequest struct {
	TransactionHash string    `json:"transaction_hash"`
	SignedAt        time.Time `json:"signed_at"`
}

// MarkAcknowledged transitions a case to the terminal signed status. The
// server side is idempotent, so retrying after an ambiguous failure is safe.
func (c *client) MarkAcknowledged(ctx context.Context, caseNumber, transactionHash string, signedAt time.Time) error {
	payload, err := json.Marshal(acknowledgeRequest{
		TransactionHash: transactionHash,
		SignedAt:        signedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	path := "/api/v1/cases/" + url.PathEscape(caseNumber) + "/acknowledge"

	body, status, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return domainerrors.ErrStoreUnavailable.WrapMessage(err.Error())
	}
	if status == http.StatusNotFound {
		return domainerrors.ErrCaseNotFound.WrapMessage(caseNumber)
	}
	if status != http.StatusOK {
		return c.failureError(status, body)
	}

	return nil
}

func (c *client) do(ctx context.Context, method, path string, payload []byte) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "record store request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "read record store response")
	}

	return body, resp.StatusCode, nil
}

// failureError maps a non-success response to a domain error, preserving the
// server's business error code when the envelope parses.
func (c *client) failureError(status int, body []byte) error {
	var envelope domainerrors.Response
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		c.logger.Debug("[RecordStore] Request rejected",
			slog.Int("status", status),
			slog.String("code", envelope.Error.Code),
		)

		return errors.Errorf("record store rejected request: %s (%s)", envelope.Message, envelope.Error.Code)
	}

	if status >= http.StatusInternalServerError {
		return domainerrors.ErrStoreUnavailable.WrapMessage(http.StatusText(status))
	}

	return errors.Errorf("record store returned unexpected status: %d", status)
}
