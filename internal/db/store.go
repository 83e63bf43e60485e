// Package db is the persistence collaborator: a small key-value layer on
// Postgres. Only the roster and its upload timestamp survive between
// sessions; metric data never touches storage.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dc6084/backend/internal/models"
)

const (
	KeyRoster     = "dc6084_roster"
	KeyRosterDate = "dc6084_roster_date"
)

type Store struct {
	Pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

// EnsureSchema creates the kv table on first run.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	return err
}

func (s *Store) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// SaveRoster writes the serialized roster and its upload timestamp in one
// transaction so a crash can never leave one key without the other.
func (s *Store) SaveRoster(ctx context.Context, roster []models.RosterEntry, uploadedAt string) error {
	payload, err := json.Marshal(roster)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	return s.WithTx(ctx, func(tx pgx.Tx) error {
		if err := upsert(ctx, tx, KeyRoster, string(payload)); err != nil {
			return err
		}
		return upsert(ctx, tx, KeyRosterDate, uploadedAt)
	})
}

// LoadRoster reads the persisted roster. ok is false when nothing usable is
// stored; malformed payloads are discarded the same as absent ones so the
// caller reverts to the sample roster either way.
func (s *Store) LoadRoster(ctx context.Context) (roster []models.RosterEntry, uploadedAt string, ok bool, err error) {
	raw, found, err := s.get(ctx, KeyRoster)
	if err != nil || !found {
		return nil, "", false, err
	}

	roster, decodeErr := DecodeRoster([]byte(raw))
	if decodeErr != nil {
		// Bad data in storage: clear it rather than carry it forward.
		_ = s.ResetRoster(ctx)
		return nil, "", false, nil
	}

	uploadedAt, _, err = s.get(ctx, KeyRosterDate)
	if err != nil {
		return nil, "", false, err
	}
	return roster, uploadedAt, true, nil
}

// ResetRoster deletes both persisted keys.
func (s *Store) ResetRoster(ctx context.Context) error {
	return s.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM kv WHERE key IN ($1, $2)`, KeyRoster, KeyRosterDate)
		return err
	})
}

// DecodeRoster validates a persisted payload: it must be a non-empty list
// whose entries carry a display name. Anything else is treated as corrupt.
func DecodeRoster(payload []byte) ([]models.RosterEntry, error) {
	var roster []models.RosterEntry
	if err := json.Unmarshal(payload, &roster); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	if len(roster) == 0 {
		return nil, errors.New("persisted roster is empty")
	}
	if roster[0].Name == "" && roster[0].FirstName == "" {
		return nil, errors.New("persisted roster entries have no name")
	}
	return roster, nil
}

func upsert(ctx context.Context, tx pgx.Tx, key, value string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	return err
}

func (s *Store) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.Pool.QueryRow(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
