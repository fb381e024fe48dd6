package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"noticetrack/config"
	"noticetrack/internal/delivery/http/validator"
	"noticetrack/internal/infra/auth"
	"noticetrack/internal/usecase/impl"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler_ChallengeVerify_Integration(t *testing.T) {
	// Create test config
	testConfig := &config.Config{}
	testConfig.SecretKey.Access = "integration_test_secret"

	// Create real auth services
	challengeStore := auth.NewChallengeStore(testConfig)
	tokenService, err := auth.NewJWTService(testConfig)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessionUsecase := impl.NewSessionService(challengeStore, tokenService, logger)
	handler := NewSessionHandler(sessionUsecase, logger)

	e := echo.New()
	e.Validator = validator.New()

	const wallet = "TBXSw8fM4jpQkGc6zZjsVABFpVN7UvXPdV"

	// Request a challenge
	challengeBody := `{"wallet_address":"` + wallet + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/challenge", strings.NewReader(challengeBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.RequestChallenge(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var challengeResp struct {
		Success bool `json:"success"`
		Data    struct {
			Challenge string `json:"challenge"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &challengeResp))
	assert.True(t, challengeResp.Success)
	require.NotEmpty(t, challengeResp.Data.Challenge)

	// Exchange the signed challenge for a session token
	verifyBody, marshalErr := json.Marshal(map[string]string{
		"wallet_address": wallet,
		"challenge":      challengeResp.Data.Challenge,
		"signature":      "0x" + strings.Repeat("ab", 65),
	})
	require.NoError(t, marshalErr)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/verify", strings.NewReader(string(verifyBody)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)

	require.NoError(t, handler.VerifySignature(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var verifyResp struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verifyResp))
	assert.True(t, verifyResp.Success)
	require.NotEmpty(t, verifyResp.Data.AccessToken)

	// The issued token must carry the wallet as its subject
	token, err := tokenService.ValidateToken(verifyResp.Data.AccessToken, testConfig.SecretKey.Access)
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, wallet, claims["sub"])

	// A consumed challenge cannot be replayed
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/verify", strings.NewReader(string(verifyBody)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)

	err = handler.VerifySignature(c)
	assert.Error(t, err)
}
