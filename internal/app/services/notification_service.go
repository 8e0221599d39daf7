package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/store"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/config"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/pkg/apperrors"
)

// NotificationService defines the interface for notification read-state
type NotificationService interface {
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	store  *store.Store
	delay  delayFn
	logger zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(st *store.Store, cfg *config.Config, logger zerolog.Logger) NotificationService {
	min, max := cfg.LatencyBounds()
	return &notificationServiceImpl{
		store:  st,
		delay:  newDelay(min, max),
		logger: logger,
	}
}

// MarkRead flips one notification to read.
func (s *notificationServiceImpl) MarkRead(ctx context.Context, notificationID string) error {
	s.delay()

	return s.store.Update(ctx, func(tx *store.Tx) error {
		notifications := tx.Notifications(ctx)
		for i := range notifications {
			if notifications[i].ID == notificationID {
				notifications[i].IsRead = true
				return tx.SaveNotifications(ctx, notifications)
			}
		}
		return apperrors.ErrNotificationNotFound
	})
}

// MarkAllRead flips every notification addressed to the user.
func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID string) error {
	s.delay()

	return s.store.Update(ctx, func(tx *store.Tx) error {
		notifications := tx.Notifications(ctx)
		for i := range notifications {
			if notifications[i].RecipientID == userID {
				notifications[i].IsRead = true
			}
		}
		return tx.SaveNotifications(ctx, notifications)
	})
}
