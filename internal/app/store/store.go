// Package store is the durable key-value persistence layer: each named
// collection is serialized wholesale as one JSON array under a fixed key,
// with seed-on-first-run semantics and full-state backup/restore.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/db"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/pkg/apperrors"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/seed"
)

// Store owns the shared collection state. It is constructed once at process
// start and handed to the service layer by reference; there is no ambient
// global.
type Store struct {
	view
	database *db.SQLiteDB
}

// Tx exposes the same typed accessors as Store, bound to one open SQL
// transaction. Everything written through a Tx commits or rolls back
// together.
type Tx struct {
	view
}

// New creates a Store over an open database.
func New(database *db.SQLiteDB, logger zerolog.Logger) *Store {
	return &Store{
		view:     view{q: database.DB, logger: logger},
		database: database,
	}
}

// EnsureSchema creates the backing table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.database.DB.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS collections (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create collections table: %w", err)
	}
	return nil
}

// Initialize writes the fixture default for every collection key that has
// no value yet. Idempotent: safe to call every process start, never
// overwrites existing data.
func (s *Store) Initialize(ctx context.Context) error {
	defaults := map[string]interface{}{
		KeyUsers:         seed.Users(),
		KeyBoxes:         seed.Boxes(),
		KeyTransactions:  seed.Transactions(),
		KeyNotifications: seed.Notifications(),
		KeyConversations: seed.Conversations(),
		KeyEvents:        seed.Events(),
		KeyReminders:     seed.Reminders(),
		KeyGroups:        seed.Groups(),
		KeyTutorSessions: seed.TutorSessions(),
	}

	return s.database.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, key := range collectionKeys {
			b, err := json.Marshal(defaults[key])
			if err != nil {
				return fmt.Errorf("failed to serialize fixture for %s: %w", key, err)
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO collections(key, value) VALUES(?, ?)
				 ON CONFLICT(key) DO NOTHING`, key, string(b))
			if err != nil {
				return fmt.Errorf("failed to seed %s: %w", key, err)
			}
		}
		return nil
	})
}

// Update runs fn against a transaction-bound view. Every service mutation
// goes through here so related writes (points balance + ledger row, users
// collection + session slot) commit or roll back as one unit.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	return s.database.WithTransaction(ctx, func(ctx context.Context, sqlTx *sqlx.Tx) error {
		return fn(&Tx{view: view{q: sqlTx, logger: s.logger}})
	})
}

// Reset deletes every known key, session slot included. Collections come
// back as fixture defaults on the next Initialize or read.
func (s *Store) Reset(ctx context.Context) error {
	return s.database.WithTransaction(ctx, func(ctx context.Context, sqlTx *sqlx.Tx) error {
		tx := view{q: sqlTx, logger: s.logger}
		for _, key := range knownKeys {
			if err := tx.del(ctx, key); err != nil {
				return fmt.Errorf("failed to reset %s: %w", key, err)
			}
		}
		return nil
	})
}

// CreateBackup snapshots the raw serialized string of every known key into
// one JSON object. Values are the stored strings verbatim, so a backup is
// JSON of JSON-encoded strings, not a nested object.
func (s *Store) CreateBackup(ctx context.Context) (string, error) {
	snapshot := make(map[string]string, len(knownKeys))
	for _, key := range knownKeys {
		if value, ok := s.raw(ctx, key); ok {
			snapshot[key] = value
		}
	}

	b, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to serialize backup: %w", err)
	}
	return string(b), nil
}

// RestoreBackup parses the backup object and writes each known key's inner
// string back verbatim. Unknown keys in the backup are ignored; keys absent
// from the backup are left untouched. Content shape is never validated:
// after a successful restore the store holds byte-for-byte whatever the
// backup contained, and the caller must reload any in-memory view.
func (s *Store) RestoreBackup(ctx context.Context, blob string) error {
	var snapshot map[string]string
	if err := json.Unmarshal([]byte(blob), &snapshot); err != nil {
		return apperrors.NewCustomError(apperrors.ErrBackupInvalid, fmt.Sprintf("failed to parse backup: %v", err))
	}

	return s.database.WithTransaction(ctx, func(ctx context.Context, sqlTx *sqlx.Tx) error {
		tx := view{q: sqlTx, logger: s.logger}
		for _, key := range knownKeys {
			value, ok := snapshot[key]
			if !ok {
				continue
			}
			if err := tx.put(ctx, key, value); err != nil {
				return fmt.Errorf("failed to restore %s: %w", key, err)
			}
		}
		return nil
	})
}
