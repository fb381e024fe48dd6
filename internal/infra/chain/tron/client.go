package tron

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"noticetrack/config"

	"github.com/pkg/errors"
)

const defaultCallTimeout = 5 * time.Second

// Client performs constant contract calls against a TronGrid-compatible
// HTTP API. It carries no mutation capability.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a TRON HTTP client from configuration.
func NewClient(cfg *config.TronConfig, logger *slog.Logger) *Client {
	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}

	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// triggerConstantRequest is the wallet/triggerconstantcontract request body.
// visible=true lets the node accept base58check addresses directly.
type triggerConstantRequest struct {
	OwnerAddress     string `json:"owner_address"`
	ContractAddress  string `json:"contract_address"`
	FunctionSelector string `json:"function_selector"`
	Parameter        string `json:"parameter,omitempty"`
	Visible          bool   `json:"visible"`
}

type triggerConstantResponse struct {
	Result struct {
		Result  bool   `json:"result"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"result"`
	ConstantResult []string `json:"constant_result"`
}

// TriggerConstant executes a read-only contract call and returns the raw
// constant result payloads.
func (c *Client) TriggerConstant(ctx context.Context, contract, selector, parameter string) ([]string, error) {
	reqBody := triggerConstantRequest{
		// Constant calls still require an owner address; the contract
		// address doubles as a harmless caller.
		OwnerAddress:     contract,
		ContractAddress:  contract,
		FunctionSelector: selector,
		Parameter:        parameter,
		Visible:          true,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/wallet/triggerconstantcontract", bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("TRON-PRO-API-KEY", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "tron node request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("tron node returned non-success status: %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read tron node response")
	}

	var parsed triggerConstantResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, errors.Wrap(err, "parse tron node response")
	}

	if !parsed.Result.Result {
		c.logger.Debug("[Tron] Constant call rejected",
			slog.String("selector", selector),
			slog.String("code", parsed.Result.Code),
		)

		return nil, errors.Errorf("constant call %s rejected: %s", selector, parsed.Result.Code)
	}

	return parsed.ConstantResult, nil
}
