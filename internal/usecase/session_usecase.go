package usecase

import "context"

// SessionUsecase implements the wallet-session sign-in flow: the client
// requests a one-time challenge, signs it with the wallet key and exchanges
// the signature for a short-lived access token.
type SessionUsecase interface {
	// RequestChallenge issues a fresh challenge for the wallet.
	RequestChallenge(ctx context.Context, walletAddress string) (string, error)

	// VerifySignature consumes the wallet's outstanding challenge, checks
	// the signature and returns an access token on success.
	VerifySignature(ctx context.Context, walletAddress, challenge, signature string) (string, error)
}
