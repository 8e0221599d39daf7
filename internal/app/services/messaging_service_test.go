package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/store"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/pkg/apperrors"
)

func newTestMessagingService(t *testing.T) (*messagingServiceImpl, *store.Store) {
	t.Helper()
	st, cfg := newTestEnv(t)
	svc := NewMessagingService(st, cfg, zerolog.Nop()).(*messagingServiceImpl)
	return svc, st
}

func TestSendMessageCreatesSingleConversationPerPair(t *testing.T) {
	svc, st := newTestMessagingService(t)
	ctx := context.Background()

	first, err := svc.SendMessage(ctx, leoID, mayaID, "Got time for a question?")
	require.NoError(t, err)
	assert.Equal(t, 1, first.UnreadCount)
	require.Len(t, first.Messages, 1)
	assert.Equal(t, leoID, first.Messages[0].SenderID)

	// The reply lands in the same conversation regardless of direction.
	second, err := svc.SendMessage(ctx, mayaID, leoID, "Sure, go ahead.")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.UnreadCount)
	assert.Len(t, second.Messages, 2)

	assert.Len(t, st.Conversations(ctx), 1)
}

func TestSendMessageValidation(t *testing.T) {
	svc, _ := newTestMessagingService(t)
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, leoID, mayaID, "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.SendMessage(ctx, leoID, leoID, "note to self")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.SendMessage(ctx, leoID, "user-ghost", "anyone there?")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestMarkConversationRead(t *testing.T) {
	svc, st := newTestMessagingService(t)
	ctx := context.Background()

	conversation, err := svc.SendMessage(ctx, leoID, mayaID, "First")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, leoID, mayaID, "Second")
	require.NoError(t, err)

	require.NoError(t, svc.MarkConversationRead(ctx, conversation.ID))

	conversations := st.Conversations(ctx)
	require.Len(t, conversations, 1)
	assert.Equal(t, 0, conversations[0].UnreadCount)
	for _, msg := range conversations[0].Messages {
		assert.True(t, msg.IsRead)
	}

	assert.ErrorIs(t, svc.MarkConversationRead(ctx, "conversation-ghost"), apperrors.ErrConversationNotFound)
}
