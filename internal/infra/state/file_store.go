// Package state persists the poller's notification state as a local JSON file.
package state

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"noticetrack/internal/domain/entity"
	"noticetrack/internal/domain/service"
	"noticetrack/internal/errors"
)

type fileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore builds a state store backed by a single JSON file.
func NewFileStore(path string, logger *slog.Logger) (service.NotificationStateStore, error) {
	if path == "" {
		return nil, errors.New("state file path is required")
	}

	return &fileStore{
		path:   path,
		logger: logger,
	}, nil
}

// Load reads the snapshot. A missing, unreadable or stale-schema file yields
// a fresh state: the snapshot is a cache, never the source of truth.
func (s *fileStore) Load(walletAddress string) (*entity.NotificationState, error) {
	fresh := &entity.NotificationState{
		Version:       entity.NotificationStateVersion,
		WalletAddress: walletAddress,
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("[State] Snapshot unreadable, starting fresh",
				slog.String("path", s.path),
				slog.Any("error", err),
			)
		}

		return fresh, nil
	}

	var loaded entity.NotificationState
	if err := json.Unmarshal(raw, &loaded); err != nil {
		s.logger.Warn("[State] Snapshot corrupt, starting fresh",
			slog.String("path", s.path),
			slog.Any("error", err),
		)

		return fresh, nil
	}

	if loaded.Version != entity.NotificationStateVersion {
		s.logger.Warn("[State] Snapshot schema version mismatch, starting fresh",
			slog.Int("found", loaded.Version),
			slog.Int("want", entity.NotificationStateVersion),
		)

		return fresh, nil
	}

	if loaded.WalletAddress != walletAddress {
		s.logger.Warn("[State] Snapshot belongs to another wallet, starting fresh",
			slog.String("snapshot_wallet", loaded.WalletAddress),
			slog.String("wallet", walletAddress),
		)

		return fresh, nil
	}

	return &loaded, nil
}

// Save writes the snapshot atomically via a temp file rename.
func (s *fileStore) Save(snapshot *entity.NotificationState) error {
	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create state directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp state file")
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrap(err, "write state file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "close state file")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "replace state file")
	}

	return nil
}
