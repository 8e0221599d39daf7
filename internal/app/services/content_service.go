package services

import (
	"context"
	"fmt"
	"time"

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

// ContentService defines the interface for box and lesson operations
type ContentService interface {
	CreateBox(ctx context.Context, req dto.CreateBoxRequest) (*models.Box, error)
	UpdateBox(ctx context.Context, userID, boxID string, req dto.UpdateBoxRequest) (*models.Box, error)
	DeleteBox(ctx context.Context, userID, boxID string) error
	AddLesson(ctx context.Context, boxID string, req dto.AddLessonRequest) error
	AddComment(ctx context.Context, userID, lessonID, text string) error
	CompleteLesson(ctx context.Context, userID, lessonID string) error
	LikeLesson(ctx context.Context, userID, lessonID string) error
}

// contentServiceImpl implements ContentService
type contentServiceImpl struct {
	store    *store.Store
	validate *validator.Validate
	delay    delayFn
	now      func() time.Time
	logger   zerolog.Logger
}

// NewContentService creates a new ContentService
func NewContentService(st *store.Store, cfg *config.Config, logger zerolog.Logger) ContentService {
	min, max := cfg.LatencyBounds()
	return &contentServiceImpl{
		store:    st,
		validate: validation.New(),
		delay:    newDelay(min, max),
		now:      time.Now,
		logger:   logger,
	}
}

// CreateBox appends a new box owned by the creator.
func (s *contentServiceImpl) CreateBox(ctx context.Context, req dto.CreateBoxRequest) (*models.Box, error) {
	s.delay()

	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	box := models.Box{
		ID:          uuid.NewString(),
		CreatorID:   req.CreatorID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		CoverImage:  req.CoverImage,
		IsPrivate:   req.IsPrivate,
		Price:       req.Price,
		Lessons:     []models.Lesson{},
		CreatedAt:   s.now(),
	}

	err := s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		if findUser(users, req.CreatorID) < 0 {
			return apperrors.ErrUserNotFound
		}

		boxes := append(tx.Boxes(ctx), box)
		return tx.SaveBoxes(ctx, boxes)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("boxId", box.ID).Str("creatorId", box.CreatorID).Msg("Box created")
	return &box, nil
}

// UpdateBox replaces the owner-mutable metadata of a box. Only the creator
// may update it.
func (s *contentServiceImpl) UpdateBox(ctx context.Context, userID, boxID string, req dto.UpdateBoxRequest) (*models.Box, error) {
	s.delay()

	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	var result *models.Box
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		boxes := tx.Boxes(ctx)
		idx := findBox(boxes, boxID)
		if idx < 0 {
			return apperrors.ErrBoxNotFound
		}
		if boxes[idx].CreatorID != userID {
			return apperrors.ErrPermissionDenied
		}

		box := &boxes[idx]
		if req.Title != "" {
			box.Title = req.Title
		}
		if req.Description != "" {
			box.Description = req.Description
		}
		if req.Category != "" {
			box.Category = req.Category
		}
		if req.Tags != nil {
			box.Tags = req.Tags
		}
		if req.CoverImage != "" {
			box.CoverImage = req.CoverImage
		}

		if err := tx.SaveBoxes(ctx, boxes); err != nil {
			return fmt.Errorf("error saving boxes: %w", err)
		}

		b := *box
		result = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteBox removes a box wholesale, lessons and all. Only the creator may
// delete it.
func (s *contentServiceImpl) DeleteBox(ctx context.Context, userID, boxID string) error {
	s.delay()

	return s.store.Update(ctx, func(tx *store.Tx) error {
		boxes := tx.Boxes(ctx)
		idx := findBox(boxes, boxID)
		if idx < 0 {
			return apperrors.ErrBoxNotFound
		}
		if boxes[idx].CreatorID != userID {
			return apperrors.ErrPermissionDenied
		}

		boxes = append(boxes[:idx], boxes[idx+1:]...)
		return tx.SaveBoxes(ctx, boxes)
	})
}

// AddLesson appends a lesson to the box's list. A missing box is a silent
// no-op.
func (s *contentServiceImpl) AddLesson(ctx context.Context, boxID string, req dto.AddLessonRequest) error {
	s.delay()

	if err := s.validate.Struct(req); err != nil {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	lessonType := req.Type
	if lessonType == "" {
		lessonType = models.LessonText
	}

	return s.store.Update(ctx, func(tx *store.Tx) error {
		boxes := tx.Boxes(ctx)
		idx := findBox(boxes, boxID)
		if idx < 0 {
			s.logger.Debug().Str("boxId", boxID).Msg("AddLesson on unknown box, ignoring")
			return nil
		}

		boxes[idx].Lessons = append(boxes[idx].Lessons, models.Lesson{
			ID:                 uuid.NewString(),
			BoxID:              boxID,
			Title:              req.Title,
			Content:            req.Content,
			Type:               lessonType,
			CompletedByUserIDs: []string{},
			Comments:           []models.Comment{},
		})
		return tx.SaveBoxes(ctx, boxes)
	})
}

// AddComment appends a comment carrying a snapshot of the acting user's
// name and avatar, captured now and never re-derived. The lesson is located
// by scanning every box; a missing lesson is a silent no-op, a missing user
// is an error.
func (s *contentServiceImpl) AddComment(ctx context.Context, userID, lessonID, text string) error {
	s.delay()

	return s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		userIdx := findUser(users, userID)
		if userIdx < 0 {
			return apperrors.ErrUserNotFound
		}
		actor := &users[userIdx]

		boxes := tx.Boxes(ctx)
		boxIdx, lesson := findLesson(boxes, lessonID)
		if lesson == nil {
			s.logger.Debug().Str("lessonId", lessonID).Msg("AddComment on unknown lesson, ignoring")
			return nil
		}

		now := s.now()
		lesson.Comments = append(lesson.Comments, models.Comment{
			ID:         uuid.NewString(),
			UserID:     actor.ID,
			UserName:   actor.Name,
			UserAvatar: actor.Avatar,
			Content:    text,
			Timestamp:  now,
		})
		if err := tx.SaveBoxes(ctx, boxes); err != nil {
			return fmt.Errorf("error saving boxes: %w", err)
		}

		if creatorID := boxes[boxIdx].CreatorID; creatorID != actor.ID {
			notifications := append(tx.Notifications(ctx), notificationFrom(
				uuid.NewString(), creatorID, models.NotificationComment, actor,
				fmt.Sprintf("%s commented on %q", actor.Name, lesson.Title), lessonID, now))
			if err := tx.SaveNotifications(ctx, notifications); err != nil {
				return fmt.Errorf("error saving notifications: %w", err)
			}
		}
		return nil
	})
}

// CompleteLesson records a completion once per user. Repeat calls by the
// same user change nothing: the membership check guards both the id list
// and the counter.
func (s *contentServiceImpl) CompleteLesson(ctx context.Context, userID, lessonID string) error {
	s.delay()

	return s.store.Update(ctx, func(tx *store.Tx) error {
		boxes := tx.Boxes(ctx)
		_, lesson := findLesson(boxes, lessonID)
		if lesson == nil {
			return apperrors.ErrLessonNotFound
		}

		if lesson.Completed(userID) {
			return nil
		}

		lesson.CompletedByUserIDs = append(lesson.CompletedByUserIDs, userID)
		lesson.CompletionCount++
		return tx.SaveBoxes(ctx, boxes)
	})
}

// LikeLesson bumps the lesson's like counter and notifies the box creator,
// unless the actor likes their own content.
func (s *contentServiceImpl) LikeLesson(ctx context.Context, userID, lessonID string) error {
	s.delay()

	return s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		userIdx := findUser(users, userID)
		if userIdx < 0 {
			return apperrors.ErrUserNotFound
		}
		actor := &users[userIdx]

		boxes := tx.Boxes(ctx)
		boxIdx, lesson := findLesson(boxes, lessonID)
		if lesson == nil {
			return apperrors.ErrLessonNotFound
		}

		lesson.Likes++
		if err := tx.SaveBoxes(ctx, boxes); err != nil {
			return fmt.Errorf("error saving boxes: %w", err)
		}

		if creatorID := boxes[boxIdx].CreatorID; creatorID != actor.ID {
			notifications := append(tx.Notifications(ctx), notificationFrom(
				uuid.NewString(), creatorID, models.NotificationLike, actor,
				fmt.Sprintf("%s liked %q", actor.Name, lesson.Title), lessonID, s.now()))
			if err := tx.SaveNotifications(ctx, notifications); err != nil {
				return fmt.Errorf("error saving notifications: %w", err)
			}
		}
		return nil
	})
}
