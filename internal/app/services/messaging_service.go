package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/models"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/store"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/config"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/pkg/apperrors"
)

// MessagingService defines the interface for conversations
type MessagingService interface {
	SendMessage(ctx context.Context, userID, participantID, text string) (*models.Conversation, error)
	MarkConversationRead(ctx context.Context, conversationID string) error
}

// messagingServiceImpl implements MessagingService
type messagingServiceImpl struct {
	store  *store.Store
	delay  delayFn
	now    func() time.Time
	logger zerolog.Logger
}

// NewMessagingService creates a new MessagingService
func NewMessagingService(st *store.Store, cfg *config.Config, logger zerolog.Logger) MessagingService {
	min, max := cfg.LatencyBounds()
	return &messagingServiceImpl{
		store:  st,
		delay:  newDelay(min, max),
		now:    time.Now,
		logger: logger,
	}
}

// SendMessage appends a message to the single conversation between the two
// users, creating the conversation first when none exists. The unread
// counter goes up with every send and is zeroed by MarkConversationRead.
func (s *messagingServiceImpl) SendMessage(ctx context.Context, userID, participantID, text string) (*models.Conversation, error) {
	s.delay()

	if text == "" {
		return nil, apperrors.NewValidationError("message text is required")
	}
	if userID == participantID {
		return nil, apperrors.NewValidationError("cannot message yourself")
	}

	var result *models.Conversation
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		if findUser(users, userID) < 0 || findUser(users, participantID) < 0 {
			return apperrors.ErrUserNotFound
		}

		conversations := tx.Conversations(ctx)
		idx := -1
		for i := range conversations {
			c := &conversations[i]
			if (c.OwnerID == userID && c.ParticipantID == participantID) ||
				(c.OwnerID == participantID && c.ParticipantID == userID) {
				idx = i
				break
			}
		}
		if idx < 0 {
			conversations = append(conversations, models.Conversation{
				ID:            uuid.NewString(),
				OwnerID:       userID,
				ParticipantID: participantID,
				Messages:      []models.Message{},
			})
			idx = len(conversations) - 1
		}

		conversation := &conversations[idx]
		conversation.Messages = append(conversation.Messages, models.Message{
			ID:        uuid.NewString(),
			SenderID:  userID,
			Text:      text,
			Timestamp: s.now(),
		})
		conversation.UnreadCount++

		if err := tx.SaveConversations(ctx, conversations); err != nil {
			return fmt.Errorf("error saving conversations: %w", err)
		}

		c := *conversation
		result = &c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("conversationId", result.ID).Str("senderId", userID).Msg("Message sent")
	return result, nil
}

// MarkConversationRead zeroes the unread counter and marks every message
// read.
func (s *messagingServiceImpl) MarkConversationRead(ctx context.Context, conversationID string) error {
	s.delay()

	return s.store.Update(ctx, func(tx *store.Tx) error {
		conversations := tx.Conversations(ctx)
		for i := range conversations {
			if conversations[i].ID != conversationID {
				continue
			}
			conversations[i].UnreadCount = 0
			for j := range conversations[i].Messages {
				conversations[i].Messages[j].IsRead = true
			}
			return tx.SaveConversations(ctx, conversations)
		}
		return apperrors.ErrConversationNotFound
	})
}
