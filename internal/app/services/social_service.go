package services

import (
	"context"
	"fmt"
	"math"
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

// SocialService defines the interface for the social graph, events, groups
// and tutor bookings
type SocialService interface {
	ToggleFollow(ctx context.Context, currentUserID, targetUserID string) (bool, error)
	ToggleFavorite(ctx context.Context, userID, boxID string) (bool, error)
	ToggleSaveLesson(ctx context.Context, userID, lessonID string) (bool, error)
	ToggleSubscribe(ctx context.Context, userID, boxID string) (bool, error)
	BookTutorSession(ctx context.Context, req dto.BookSessionRequest) (*models.TutorSession, error)
	JoinEvent(ctx context.Context, userID, eventID string) (bool, error)
	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error)
	CreateGroup(ctx context.Context, req dto.CreateGroupRequest) (*models.Group, error)
	ToggleGroupMember(ctx context.Context, groupID, userID string) (bool, error)
}

// socialServiceImpl implements SocialService
type socialServiceImpl struct {
	store      *store.Store
	validate   *validator.Validate
	delay      delayFn
	feePercent int
	now        func() time.Time
	logger     zerolog.Logger
}

// NewSocialService creates a new SocialService
func NewSocialService(st *store.Store, cfg *config.Config, logger zerolog.Logger) SocialService {
	min, max := cfg.LatencyBounds()
	return &socialServiceImpl{
		store:      st,
		validate:   validation.New(),
		delay:      newDelay(min, max),
		feePercent: cfg.API.PlatformFeePercent,
		now:        time.Now,
		logger:     logger,
	}
}

// ToggleFollow toggles the follow edge between two users. Both sides of the
// edge (follower's Following list and target's Followers list) change
// together in one transaction. Following emits a notification to the
// target; unfollowing does not. Returns the resulting followed state.
func (s *socialServiceImpl) ToggleFollow(ctx context.Context, currentUserID, targetUserID string) (bool, error) {
	s.delay()

	if currentUserID == targetUserID {
		return false, apperrors.NewValidationError("cannot follow yourself")
	}

	var following bool
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		actorIdx := findUser(users, currentUserID)
		targetIdx := findUser(users, targetUserID)
		if actorIdx < 0 || targetIdx < 0 {
			return apperrors.ErrUserNotFound
		}

		actor := &users[actorIdx]
		target := &users[targetIdx]

		// Both sides of the edge flip together; each list is independent
		// state and nothing re-derives one from the other.
		actor.Following, following = models.ToggleID(actor.Following, target.ID)
		target.Followers, _ = models.ToggleID(target.Followers, actor.ID)

		if err := tx.SaveUsers(ctx, users); err != nil {
			return fmt.Errorf("error saving users: %w", err)
		}

		if following {
			notifications := append(tx.Notifications(ctx), notificationFrom(
				uuid.NewString(), target.ID, models.NotificationFollow, actor,
				fmt.Sprintf("%s started following you", actor.Name), actor.ID, s.now()))
			if err := tx.SaveNotifications(ctx, notifications); err != nil {
				return fmt.Errorf("error saving notifications: %w", err)
			}
		}

		return s.refreshSession(ctx, tx, actor)
	})
	if err != nil {
		return false, err
	}

	s.logger.Debug().Str("userId", currentUserID).Str("targetId", targetUserID).Bool("following", following).Msg("Follow toggled")
	return following, nil
}

// ToggleFavorite toggles the box id in the user's favorites list and
// returns the resulting state.
func (s *socialServiceImpl) ToggleFavorite(ctx context.Context, userID, boxID string) (bool, error) {
	s.delay()
	return s.toggleUserList(ctx, userID, boxID, func(u *models.User) *[]string { return &u.FavoriteBoxIDs })
}

// ToggleSaveLesson toggles the lesson id in the user's saved list and
// returns the resulting state.
func (s *socialServiceImpl) ToggleSaveLesson(ctx context.Context, userID, lessonID string) (bool, error) {
	s.delay()
	return s.toggleUserList(ctx, userID, lessonID, func(u *models.User) *[]string { return &u.SavedLessonIDs })
}

// toggleUserList is the shared presence-toggle over one of a user's
// id-array fields. The list member and the session slot persist together.
func (s *socialServiceImpl) toggleUserList(ctx context.Context, userID, id string, field func(*models.User) *[]string) (bool, error) {
	var present bool
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		idx := findUser(users, userID)
		if idx < 0 {
			return apperrors.ErrUserNotFound
		}

		user := &users[idx]
		list := field(user)
		*list, present = models.ToggleID(*list, id)

		if err := tx.SaveUsers(ctx, users); err != nil {
			return fmt.Errorf("error saving users: %w", err)
		}
		return s.refreshSession(ctx, tx, user)
	})
	if err != nil {
		return false, err
	}
	return present, nil
}

// ToggleSubscribe toggles the user's subscription to a box. Membership in
// the user's subscribedBoxIds and the box's independent subscriber counter
// move in lockstep (+1 on subscribe, -1 on unsubscribe).
func (s *socialServiceImpl) ToggleSubscribe(ctx context.Context, userID, boxID string) (bool, error) {
	s.delay()

	var subscribed bool
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		userIdx := findUser(users, userID)
		if userIdx < 0 {
			return apperrors.ErrUserNotFound
		}

		boxes := tx.Boxes(ctx)
		boxIdx := findBox(boxes, boxID)
		if boxIdx < 0 {
			return apperrors.ErrBoxNotFound
		}

		user := &users[userIdx]
		user.SubscribedBoxIDs, subscribed = models.ToggleID(user.SubscribedBoxIDs, boxID)
		if subscribed {
			boxes[boxIdx].Subscribers++
		} else {
			boxes[boxIdx].Subscribers--
		}

		if err := tx.SaveUsers(ctx, users); err != nil {
			return fmt.Errorf("error saving users: %w", err)
		}
		if err := tx.SaveBoxes(ctx, boxes); err != nil {
			return fmt.Errorf("error saving boxes: %w", err)
		}
		return s.refreshSession(ctx, tx, user)
	})
	if err != nil {
		return false, err
	}
	return subscribed, nil
}

// BookTutorSession debits the student by the full price, credits the tutor
// by the price minus the platform fee (rounded to the nearest point; the
// remainder is implicitly kept), appends one ledger entry per side with
// identical timestamps and appends the session record. Everything commits
// in one transaction: an insufficient balance rejects the call with zero
// mutations.
func (s *socialServiceImpl) BookTutorSession(ctx context.Context, req dto.BookSessionRequest) (*models.TutorSession, error) {
	s.delay()

	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	session := models.TutorSession{
		ID:        uuid.NewString(),
		StudentID: req.StudentID,
		TutorID:   req.TutorID,
		Subject:   req.Subject,
		Date:      req.Date,
		Time:      req.Time,
		Duration:  req.Duration,
		Price:     req.Price,
		Status:    models.SessionScheduled,
	}

	err := s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		studentIdx := findUser(users, req.StudentID)
		if studentIdx < 0 {
			return apperrors.ErrUserNotFound
		}
		tutorIdx := findUser(users, req.TutorID)
		if tutorIdx < 0 {
			return apperrors.ErrTutorNotFound
		}

		student := &users[studentIdx]
		tutor := &users[tutorIdx]
		if student.Points < req.Price {
			return apperrors.ErrInsufficientFunds
		}

		credit := int(math.Round(float64(req.Price) * float64(100-s.feePercent) / 100))
		student.Points -= req.Price
		tutor.Points += credit

		ts := s.now()
		txns := tx.Transactions(ctx)
		txns = append(txns,
			models.Transaction{
				ID:          uuid.NewString(),
				UserID:      student.ID,
				Type:        models.TransactionDebit,
				Amount:      req.Price,
				Description: fmt.Sprintf("Tutoring session: %s", req.Subject),
				Timestamp:   ts,
			},
			models.Transaction{
				ID:          uuid.NewString(),
				UserID:      tutor.ID,
				Type:        models.TransactionCredit,
				Amount:      credit,
				Description: fmt.Sprintf("Tutoring session: %s", req.Subject),
				Timestamp:   ts,
			},
		)

		sessions := append(tx.TutorSessions(ctx), session)

		if err := tx.SaveUsers(ctx, users); err != nil {
			return fmt.Errorf("error saving users: %w", err)
		}
		if err := tx.SaveTransactions(ctx, txns); err != nil {
			return fmt.Errorf("error saving transactions: %w", err)
		}
		if err := tx.SaveTutorSessions(ctx, sessions); err != nil {
			return fmt.Errorf("error saving tutor sessions: %w", err)
		}
		return s.refreshSession(ctx, tx, student)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sessionId", session.ID).Str("studentId", req.StudentID).Str("tutorId", req.TutorID).Int("price", req.Price).Msg("Tutor session booked")
	return &session, nil
}

// JoinEvent toggles the event's single-viewer joined flag and moves the
// shared attendee counter in lockstep. The flag belongs to whoever the
// session user is; one record cannot represent "joined" for two viewers at
// once, which is a modeling shortcut kept on purpose. Joining notifies the
// event creator.
func (s *socialServiceImpl) JoinEvent(ctx context.Context, userID, eventID string) (bool, error) {
	s.delay()

	var joined bool
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		userIdx := findUser(users, userID)
		if userIdx < 0 {
			return apperrors.ErrUserNotFound
		}
		actor := &users[userIdx]

		events := tx.Events(ctx)
		var event *models.Event
		for i := range events {
			if events[i].ID == eventID {
				event = &events[i]
				break
			}
		}
		if event == nil {
			return apperrors.ErrEventNotFound
		}

		event.IsJoined = !event.IsJoined
		joined = event.IsJoined
		if joined {
			event.Attendees++
		} else {
			event.Attendees--
		}

		if err := tx.SaveEvents(ctx, events); err != nil {
			return fmt.Errorf("error saving events: %w", err)
		}

		if joined && event.CreatorID != actor.ID {
			notifications := append(tx.Notifications(ctx), notificationFrom(
				uuid.NewString(), event.CreatorID, models.NotificationEventJoin, actor,
				fmt.Sprintf("%s joined %q", actor.Name, event.Title), event.ID, s.now()))
			if err := tx.SaveNotifications(ctx, notifications); err != nil {
				return fmt.Errorf("error saving notifications: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return joined, nil
}

// CreateEvent appends a new event.
func (s *socialServiceImpl) CreateEvent(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error) {
	s.delay()

	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	event := models.Event{
		ID:             uuid.NewString(),
		CreatorID:      req.CreatorID,
		Title:          req.Title,
		Description:    req.Description,
		Date:           req.Date,
		Time:           req.Time,
		IsPrivate:      req.IsPrivate,
		InvitedUserIDs: req.InvitedUserIDs,
	}

	err := s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		if findUser(users, req.CreatorID) < 0 {
			return apperrors.ErrUserNotFound
		}
		events := append(tx.Events(ctx), event)
		return tx.SaveEvents(ctx, events)
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// CreateGroup appends a new group with the creator as its first member.
func (s *socialServiceImpl) CreateGroup(ctx context.Context, req dto.CreateGroupRequest) (*models.Group, error) {
	s.delay()

	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	group := models.Group{
		ID:          uuid.NewString(),
		CreatorID:   req.CreatorID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		MemberIDs:   []string{req.CreatorID},
	}

	err := s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		if findUser(users, req.CreatorID) < 0 {
			return apperrors.ErrUserNotFound
		}
		groups := append(tx.Groups(ctx), group)
		return tx.SaveGroups(ctx, groups)
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// ToggleGroupMember toggles a user's membership in a group and returns the
// resulting state.
func (s *socialServiceImpl) ToggleGroupMember(ctx context.Context, groupID, userID string) (bool, error) {
	s.delay()

	var member bool
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		if findUser(users, userID) < 0 {
			return apperrors.ErrUserNotFound
		}

		groups := tx.Groups(ctx)
		for i := range groups {
			if groups[i].ID == groupID {
				groups[i].MemberIDs, member = models.ToggleID(groups[i].MemberIDs, userID)
				return tx.SaveGroups(ctx, groups)
			}
		}
		return apperrors.ErrGroupNotFound
	})
	if err != nil {
		return false, err
	}
	return member, nil
}

// refreshSession re-saves the session slot when the mutated user is the
// currently logged-in user. The slot and the users collection drift
// otherwise, since they are independent keys.
func (s *socialServiceImpl) refreshSession(ctx context.Context, tx *store.Tx, user *models.User) error {
	current := tx.CurrentUser(ctx)
	if current == nil || current.ID != user.ID {
		return nil
	}
	if err := tx.SaveCurrentUser(ctx, user); err != nil {
		return fmt.Errorf("error refreshing session: %w", err)
	}
	return nil
}
