package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "noticetrack/internal/domain/errors"
	mockSvc "noticetrack/internal/mocks/service"
	"noticetrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionWallet = "TBXSw8fM4jpQkGc6zZjsVABFpVN7UvXPdV"

// 65 bytes of hex, the shape of a recoverable wallet signature.
var testSessionSignature = "0x" + strings.Repeat("ab", 65)

func createTestSessionService(t *testing.T) (usecase.SessionUsecase, *mockSvc.MockChallengeStore, *mockSvc.MockTokenService) {
	challengeStore := mockSvc.NewMockChallengeStore(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSessionService(challengeStore, tokenService, logger), challengeStore, tokenService
}

func TestSessionService_RequestChallenge(t *testing.T) {
	sessionService, challengeStore, _ := createTestSessionService(t)

	challengeStore.EXPECT().
		Issue(testSessionWallet).
		Return("noticetrack-signin:abc-123", nil)

	challenge, err := sessionService.RequestChallenge(context.Background(), testSessionWallet)

	require.NoError(t, err)
	assert.Equal(t, "noticetrack-signin:abc-123", challenge)
}

func TestSessionService_RequestChallenge_InvalidAddress(t *testing.T) {
	sessionService, _, _ := createTestSessionService(t)

	challenge, err := sessionService.RequestChallenge(context.Background(), "not-a-wallet")

	require.Error(t, err)
	assert.Empty(t, challenge)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_ADDRESS", appErr.ErrorCode())
}

func TestSessionService_VerifySignature_Success(t *testing.T) {
	sessionService, challengeStore, tokenService := createTestSessionService(t)

	challengeStore.EXPECT().
		Consume(testSessionWallet, "noticetrack-signin:abc-123").
		Return(nil)
	tokenService.EXPECT().
		GenerateAccessToken(testSessionWallet).
		Return("signed.jwt.token", nil)

	token, err := sessionService.VerifySignature(
		context.Background(), testSessionWallet, "noticetrack-signin:abc-123", testSessionSignature,
	)

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)
}

func TestSessionService_VerifySignature_NoPrefixAccepted(t *testing.T) {
	sessionService, challengeStore, tokenService := createTestSessionService(t)

	challengeStore.EXPECT().Consume(testSessionWallet, "challenge").Return(nil)
	tokenService.EXPECT().GenerateAccessToken(testSessionWallet).Return("signed.jwt.token", nil)

	bare := strings.TrimPrefix(testSessionSignature, "0x")
	token, err := sessionService.VerifySignature(context.Background(), testSessionWallet, "challenge", bare)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestSessionService_VerifySignature_UnknownChallenge(t *testing.T) {
	sessionService, challengeStore, _ := createTestSessionService(t)

	challengeStore.EXPECT().
		Consume(testSessionWallet, "stale-challenge").
		Return(domainerrors.ErrChallengeNotFound)

	token, err := sessionService.VerifySignature(
		context.Background(), testSessionWallet, "stale-challenge", testSessionSignature,
	)

	require.Error(t, err)
	assert.Empty(t, token)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CHALLENGE_NOT_FOUND", appErr.ErrorCode())
}

func TestSessionService_VerifySignature_MalformedSignature(t *testing.T) {
	tests := []struct {
		name      string
		signature string
	}{
		{name: "too short", signature: "0xdeadbeef"},
		{name: "not hex", signature: "0x" + strings.Repeat("zz", 65)},
		{name: "empty", signature: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionService, challengeStore, _ := createTestSessionService(t)

			// The challenge burns before the signature is inspected.
			challengeStore.EXPECT().Consume(testSessionWallet, "challenge").Return(nil)

			token, err := sessionService.VerifySignature(
				context.Background(), testSessionWallet, "challenge", tt.signature,
			)

			require.Error(t, err)
			assert.Empty(t, token)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "INVALID_SIGNATURE", appErr.ErrorCode())
		})
	}
}

func TestSessionService_VerifySignature_TokenGenerationError(t *testing.T) {
	sessionService, challengeStore, tokenService := createTestSessionService(t)

	challengeStore.EXPECT().Consume(testSessionWallet, "challenge").Return(nil)
	tokenService.EXPECT().
		GenerateAccessToken(testSessionWallet).
		Return("", errors.New("signing key unavailable"))

	token, err := sessionService.VerifySignature(
		context.Background(), testSessionWallet, "challenge", testSessionSignature,
	)

	require.Error(t, err)
	assert.Empty(t, token)
}
