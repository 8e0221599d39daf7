package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/models"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/pkg/apperrors"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/seed"
)

// Collection keys. Each collection is stored wholesale as one JSON array
// under its key; KeyCurrentUser is a single-slot session pointer holding
// one JSON object.
const (
	KeyUsers         = "lrnbox_users"
	KeyBoxes         = "lrnbox_boxes"
	KeyTransactions  = "lrnbox_transactions"
	KeyNotifications = "lrnbox_notifications"
	KeyConversations = "lrnbox_conversations"
	KeyEvents        = "lrnbox_events"
	KeyReminders     = "lrnbox_reminders"
	KeyGroups        = "lrnbox_groups"
	KeyTutorSessions = "lrnbox_tutor_sessions"
	KeyCurrentUser   = "lrnbox_current_user"
)

// collectionKeys are the seeded collections, in backup order.
var collectionKeys = []string{
	KeyUsers,
	KeyBoxes,
	KeyTransactions,
	KeyNotifications,
	KeyConversations,
	KeyEvents,
	KeyReminders,
	KeyGroups,
	KeyTutorSessions,
}

// knownKeys covers everything backup and restore will touch.
var knownKeys = append(append([]string{}, collectionKeys...), KeyCurrentUser)

// querier is satisfied by both *sqlx.DB and *sqlx.Tx, so the typed
// accessors below work identically inside and outside a transaction.
type querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// view binds the typed collection accessors to one querier. Store embeds a
// view over the connection; Tx embeds a view over an open transaction.
type view struct {
	q      querier
	logger zerolog.Logger
}

// raw returns the serialized value under key. A missing row, scan failure
// or driver error all come back as not-found; reads never propagate
// storage errors.
func (v *view) raw(ctx context.Context, key string) (string, bool) {
	var value string
	err := v.q.GetContext(ctx, &value, `SELECT value FROM collections WHERE key = ?`, key)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			v.logger.Warn().Err(err).Str("key", key).Msg("Failed to read collection, using fixture default")
		}
		return "", false
	}
	return value, true
}

// put writes the serialized value under key, replacing any previous value.
func (v *view) put(ctx context.Context, key, value string) error {
	_, err := v.q.ExecContext(ctx,
		`INSERT INTO collections(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (v *view) del(ctx context.Context, key string) error {
	_, err := v.q.ExecContext(ctx, `DELETE FROM collections WHERE key = ?`, key)
	return err
}

// loadCollection deserializes the collection under key, substituting the
// fixture default when the value is missing or corrupt. Fails soft, never
// errors.
func loadCollection[T any](ctx context.Context, v *view, key string, fallback func() []T) []T {
	value, ok := v.raw(ctx, key)
	if !ok {
		return fallback()
	}

	var out []T
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		v.logger.Warn().Err(apperrors.ErrStorageCorrupt).Str("key", key).Msg("Corrupt collection value, using fixture default")
		return fallback()
	}
	return out
}

// saveCollection serializes and overwrites the collection wholesale. There
// are no partial or merge semantics.
func saveCollection[T any](ctx context.Context, v *view, key string, data []T) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return v.put(ctx, key, string(b))
}

// Users returns the users collection.
func (v *view) Users(ctx context.Context) []models.User {
	return loadCollection(ctx, v, KeyUsers, seed.Users)
}

// SaveUsers overwrites the users collection.
func (v *view) SaveUsers(ctx context.Context, users []models.User) error {
	return saveCollection(ctx, v, KeyUsers, users)
}

// Boxes returns the boxes collection.
func (v *view) Boxes(ctx context.Context) []models.Box {
	return loadCollection(ctx, v, KeyBoxes, seed.Boxes)
}

// SaveBoxes overwrites the boxes collection.
func (v *view) SaveBoxes(ctx context.Context, boxes []models.Box) error {
	return saveCollection(ctx, v, KeyBoxes, boxes)
}

// Transactions returns the points ledger.
func (v *view) Transactions(ctx context.Context) []models.Transaction {
	return loadCollection(ctx, v, KeyTransactions, seed.Transactions)
}

// SaveTransactions overwrites the points ledger.
func (v *view) SaveTransactions(ctx context.Context, txns []models.Transaction) error {
	return saveCollection(ctx, v, KeyTransactions, txns)
}

// Notifications returns the notifications collection.
func (v *view) Notifications(ctx context.Context) []models.Notification {
	return loadCollection(ctx, v, KeyNotifications, seed.Notifications)
}

// SaveNotifications overwrites the notifications collection.
func (v *view) SaveNotifications(ctx context.Context, notifications []models.Notification) error {
	return saveCollection(ctx, v, KeyNotifications, notifications)
}

// Conversations returns the conversations collection.
func (v *view) Conversations(ctx context.Context) []models.Conversation {
	return loadCollection(ctx, v, KeyConversations, seed.Conversations)
}

// SaveConversations overwrites the conversations collection.
func (v *view) SaveConversations(ctx context.Context, conversations []models.Conversation) error {
	return saveCollection(ctx, v, KeyConversations, conversations)
}

// Events returns the events collection.
func (v *view) Events(ctx context.Context) []models.Event {
	return loadCollection(ctx, v, KeyEvents, seed.Events)
}

// SaveEvents overwrites the events collection.
func (v *view) SaveEvents(ctx context.Context, events []models.Event) error {
	return saveCollection(ctx, v, KeyEvents, events)
}

// Reminders returns the reminders collection.
func (v *view) Reminders(ctx context.Context) []models.Reminder {
	return loadCollection(ctx, v, KeyReminders, seed.Reminders)
}

// SaveReminders overwrites the reminders collection.
func (v *view) SaveReminders(ctx context.Context, reminders []models.Reminder) error {
	return saveCollection(ctx, v, KeyReminders, reminders)
}

// Groups returns the groups collection.
func (v *view) Groups(ctx context.Context) []models.Group {
	return loadCollection(ctx, v, KeyGroups, seed.Groups)
}

// SaveGroups overwrites the groups collection.
func (v *view) SaveGroups(ctx context.Context, groups []models.Group) error {
	return saveCollection(ctx, v, KeyGroups, groups)
}

// TutorSessions returns the tutor sessions collection.
func (v *view) TutorSessions(ctx context.Context) []models.TutorSession {
	return loadCollection(ctx, v, KeyTutorSessions, seed.TutorSessions)
}

// SaveTutorSessions overwrites the tutor sessions collection.
func (v *view) SaveTutorSessions(ctx context.Context, sessions []models.TutorSession) error {
	return saveCollection(ctx, v, KeyTutorSessions, sessions)
}

// CurrentUser returns the session pointer, or nil when nobody is logged in.
// The slot is independent of the users collection; callers that mutate the
// acting user must re-save both.
func (v *view) CurrentUser(ctx context.Context) *models.User {
	value, ok := v.raw(ctx, KeyCurrentUser)
	if !ok {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		v.logger.Warn().Err(apperrors.ErrStorageCorrupt).Str("key", KeyCurrentUser).Msg("Corrupt session slot, treating as logged out")
		return nil
	}
	return &user
}

// SaveCurrentUser overwrites the session pointer; nil clears it.
func (v *view) SaveCurrentUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return v.del(ctx, KeyCurrentUser)
	}

	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return v.put(ctx, KeyCurrentUser, string(b))
}

// ClearSession removes only the session pointer; no collection is touched.
func (v *view) ClearSession(ctx context.Context) error {
	return v.del(ctx, KeyCurrentUser)
}
