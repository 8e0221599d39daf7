package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/models"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/models/dto"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/store"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/config"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/pkg/apperrors"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/pkg/validation"
)

// ReminderService defines the interface for personal reminders
type ReminderService interface {
	CreateReminder(ctx context.Context, req dto.CreateReminderRequest) (*models.Reminder, error)
	ToggleReminder(ctx context.Context, reminderID string) (bool, error)
	DeleteReminder(ctx context.Context, reminderID string) error
}

// reminderServiceImpl implements ReminderService
type reminderServiceImpl struct {
	store    *store.Store
	validate *validator.Validate
	delay    delayFn
	logger   zerolog.Logger
}

// NewReminderService creates a new ReminderService
func NewReminderService(st *store.Store, cfg *config.Config, logger zerolog.Logger) ReminderService {
	min, max := cfg.LatencyBounds()
	return &reminderServiceImpl{
		store:    st,
		validate: validation.New(),
		delay:    newDelay(min, max),
		logger:   logger,
	}
}

// CreateReminder appends a new reminder.
func (s *reminderServiceImpl) CreateReminder(ctx context.Context, req dto.CreateReminderRequest) (*models.Reminder, error) {
	s.delay()

	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	reminder := models.Reminder{
		ID:     uuid.NewString(),
		UserID: req.UserID,
		Title:  req.Title,
		Date:   req.Date,
		Time:   req.Time,
		Type:   req.Type,
	}

	err := s.store.Update(ctx, func(tx *store.Tx) error {
		reminders := append(tx.Reminders(ctx), reminder)
		return tx.SaveReminders(ctx, reminders)
	})
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

// ToggleReminder flips a reminder's completion state and returns the
// resulting value.
func (s *reminderServiceImpl) ToggleReminder(ctx context.Context, reminderID string) (bool, error) {
	s.delay()

	var completed bool
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		reminders := tx.Reminders(ctx)
		for i := range reminders {
			if reminders[i].ID == reminderID {
				reminders[i].IsCompleted = !reminders[i].IsCompleted
				completed = reminders[i].IsCompleted
				return tx.SaveReminders(ctx, reminders)
			}
		}
		return apperrors.ErrReminderNotFound
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}

// DeleteReminder removes a reminder by id.
func (s *reminderServiceImpl) DeleteReminder(ctx context.Context, reminderID string) error {
	s.delay()

	return s.store.Update(ctx, func(tx *store.Tx) error {
		reminders := tx.Reminders(ctx)
		for i := range reminders {
			if reminders[i].ID == reminderID {
				reminders = append(reminders[:i], reminders[i+1:]...)
				return tx.SaveReminders(ctx, reminders)
			}
		}
		return apperrors.ErrReminderNotFound
	})
}
