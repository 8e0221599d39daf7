package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/models/dto"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/store"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/pkg/apperrors"
)

func newTestReminderService(t *testing.T) (ReminderService, *store.Store) {
	t.Helper()
	st, cfg := newTestEnv(t)
	return NewReminderService(st, cfg, zerolog.Nop()), st
}

func TestCreateReminder(t *testing.T) {
	svc, st := newTestReminderService(t)
	ctx := context.Background()

	reminder, err := svc.CreateReminder(ctx, dto.CreateReminderRequest{
		UserID: irisID,
		Title:  "Practice kanji",
		Date:   "2024-06-15",
		Time:   "08:00",
		Type:   "study",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reminder.ID)
	assert.False(t, reminder.IsCompleted)
	assert.Len(t, st.Reminders(ctx), 2)

	_, err = svc.CreateReminder(ctx, dto.CreateReminderRequest{UserID: irisID})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestToggleReminder(t *testing.T) {
	svc, st := newTestReminderService(t)
	ctx := context.Background()

	completed, err := svc.ToggleReminder(ctx, "reminder-review")
	require.NoError(t, err)
	assert.True(t, completed)
	assert.True(t, st.Reminders(ctx)[0].IsCompleted)

	completed, err = svc.ToggleReminder(ctx, "reminder-review")
	require.NoError(t, err)
	assert.False(t, completed)

	_, err = svc.ToggleReminder(ctx, "reminder-ghost")
	assert.ErrorIs(t, err, apperrors.ErrReminderNotFound)
}

func TestDeleteReminder(t *testing.T) {
	svc, st := newTestReminderService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteReminder(ctx, "reminder-review"))
	assert.Empty(t, st.Reminders(ctx))

	assert.ErrorIs(t, svc.DeleteReminder(ctx, "reminder-review"), apperrors.ErrReminderNotFound)
}
