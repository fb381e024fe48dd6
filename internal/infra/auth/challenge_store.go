package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"noticetrack/config"
	domainerrors "noticetrack/internal/domain/errors"
	"noticetrack/internal/domain/service"
)

const defaultChallengeTTL = 5 * time.Minute

type challengeEntry struct {
	challenge string
	expiresAt time.Time
}

// memoryChallengeStore keeps outstanding sign-in challenges in memory. A
// restart invalidates all outstanding challenges, which only forces clients
// to request a new one.
type memoryChallengeStore struct {
	mu      sync.Mutex
	entries map[string]challengeEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewChallengeStore builds the in-memory challenge store.
func NewChallengeStore(cfg *config.Config) service.ChallengeStore {
	ttl := defaultChallengeTTL
	if cfg.Auth != nil && cfg.Auth.ChallengeTTL > 0 {
		ttl = cfg.Auth.ChallengeTTL
	}

	return &memoryChallengeStore{
		entries: make(map[string]challengeEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue creates a fresh challenge for the wallet, replacing any outstanding one.
func (s *memoryChallengeStore) Issue(walletAddress string) (string, error) {
	challenge := "noticetrack-signin:" + uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()
	s.entries[walletAddress] = challengeEntry{
		challenge: challenge,
		expiresAt: s.now().Add(s.ttl),
	}

	return challenge, nil
}

// Consume validates and invalidates the wallet's outstanding challenge.
func (s *memoryChallengeStore) Consume(walletAddress, challenge string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[walletAddress]
	if !ok || s.now().After(entry.expiresAt) {
		delete(s.entries, walletAddress)

		return domainerrors.ErrChallengeNotFound
	}

	// One shot regardless of whether the presented value matches.
	delete(s.entries, walletAddress)

	if entry.challenge != challenge {
		return domainerrors.ErrChallengeNotFound
	}

	return nil
}

func (s *memoryChallengeStore) pruneLocked() {
	now := s.now()
	for wallet, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, wallet)
		}
	}
}
