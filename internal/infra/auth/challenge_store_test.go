package auth

import (
	"testing"
	"time"

	"noticetrack/config"
	domainerrors "noticetrack/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWallet = "TBXSw8fM4jpQkGc6zZjsVABFpVN7UvXPdV"

func TestChallengeStore_IssueAndConsume(t *testing.T) {
	store := NewChallengeStore(&config.Config{})

	challenge, err := store.Issue(testWallet)
	require.NoError(t, err)
	assert.NotEmpty(t, challenge)

	require.NoError(t, store.Consume(testWallet, challenge))

	// A challenge is single use.
	err = store.Consume(testWallet, challenge)
	assert.ErrorIs(t, err, domainerrors.ErrChallengeNotFound)
}

func TestChallengeStore_WrongChallengeInvalidates(t *testing.T) {
	store := NewChallengeStore(&config.Config{})

	challenge, err := store.Issue(testWallet)
	require.NoError(t, err)

	err = store.Consume(testWallet, "not-the-challenge")
	assert.ErrorIs(t, err, domainerrors.ErrChallengeNotFound)

	// The real challenge was burned by the failed attempt.
	err = store.Consume(testWallet, challenge)
	assert.ErrorIs(t, err, domainerrors.ErrChallengeNotFound)
}

func TestChallengeStore_ReissueReplaces(t *testing.T) {
	store := NewChallengeStore(&config.Config{})

	first, err := store.Issue(testWallet)
	require.NoError(t, err)
	second, err := store.Issue(testWallet)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	assert.ErrorIs(t, store.Consume(testWallet, first), domainerrors.ErrChallengeNotFound)
}

func TestChallengeStore_Expiry(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{ChallengeTTL: time.Minute}}

	store, ok := NewChallengeStore(cfg).(*memoryChallengeStore)
	require.True(t, ok)

	current := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	challenge, err := store.Issue(testWallet)
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	err = store.Consume(testWallet, challenge)
	assert.ErrorIs(t, err, domainerrors.ErrChallengeNotFound)
}
