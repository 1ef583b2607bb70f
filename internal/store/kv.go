package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// State keys. One key per domain service; the value is the service's whole
// state serialized as JSON.
const (
	KeyProgress = "chapter_progress"
	KeyMistakes = "student_mistakes"
	KeyMission  = "daily_mission"
	KeyProfile  = "student_profile"
	KeyXP       = "player_xp"
)

// KVRepo is the key/value persistence boundary used by the domain services.
// Absence is not an error: Load reports found=false and callers fall back to
// their documented empty defaults.
type KVRepo interface {
	// Load returns the blob stored under key, or found=false if the key
	// has never been written.
	Load(ctx context.Context, key string) (blob []byte, found bool, err error)

	// Save stores blob under key, replacing any previous value.
	Save(ctx context.Context, key string, blob []byte) error

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Reset removes all stored state.
	Reset(ctx context.Context) error
}

type kvRepo struct {
	db *sql.DB
}

func (r *kvRepo) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var blob []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, key,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %q: %w", key, err)
	}
	return blob, true, nil
}

func (r *kvRepo) Save(ctx context.Context, key string, blob []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, blob, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM app_state`); err != nil {
		return fmt.Errorf("reset state: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM llm_events`); err != nil {
		return fmt.Errorf("reset events: %w", err)
	}
	return nil
}
