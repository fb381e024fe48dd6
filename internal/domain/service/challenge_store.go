package service

// ChallengeStore issues and consumes one-time sign-in challenges. A challenge
// is bound to a wallet address and expires after the configured TTL.
type ChallengeStore interface {
	// Issue creates a fresh challenge for the wallet, replacing any
	// outstanding one.
	Issue(walletAddress string) (string, error)

	// Consume validates and invalidates the wallet's outstanding challenge.
	Consume(walletAddress, challenge string) error
}
