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
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/pkg/helpers"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/pkg/validation"
)

// AuthService defines the interface for session operations
type AuthService interface {
	Login(ctx context.Context, handle string) (*models.User, error)
	Signup(ctx context.Context, req dto.SignupRequest) (*models.User, error)
	Logout(ctx context.Context) error
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	store       *store.Store
	validate    *validator.Validate
	delay       delayFn
	loginBonus  int
	signupBonus int
	now         func() time.Time
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(st *store.Store, cfg *config.Config, logger zerolog.Logger) AuthService {
	min, max := cfg.LatencyBounds()
	return &authServiceImpl{
		store:       st,
		validate:    validation.New(),
		delay:       newDelay(min, max),
		loginBonus:  cfg.API.LoginBonus,
		signupBonus: cfg.API.SignupBonus,
		now:         time.Now,
		logger:      logger,
	}
}

// Login looks a user up by handle, case-insensitively and with the leading
// "@" optional. On the first login of a calendar day it grants the login
// bonus, adjusts the streak, records a credit ledger entry and stamps
// lastLoginDate, all in one store transaction. The resulting user always
// becomes the session user.
func (s *authServiceImpl) Login(ctx context.Context, handle string) (*models.User, error) {
	s.delay()

	var result *models.User
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		idx := findUserByHandle(users, handle)
		if idx < 0 {
			return apperrors.ErrUserNotFound
		}

		user := &users[idx]
		today := helpers.DateString(s.now())
		if user.LastLoginDate != today {
			user.Points += s.loginBonus
			// Streak continues only across exactly consecutive days;
			// a skipped day starts over at 1.
			if user.LastLoginDate != "" && helpers.DaysBetween(user.LastLoginDate, today) == 1 {
				user.Streak++
			} else {
				user.Streak = 1
			}
			user.LastLoginDate = today

			txns := tx.Transactions(ctx)
			txns = append(txns, models.Transaction{
				ID:          uuid.NewString(),
				UserID:      user.ID,
				Type:        models.TransactionCredit,
				Amount:      s.loginBonus,
				Description: "Daily login bonus",
				Timestamp:   s.now(),
			})
			if err := tx.SaveTransactions(ctx, txns); err != nil {
				return fmt.Errorf("error recording login bonus: %w", err)
			}
		}

		if err := tx.SaveUsers(ctx, users); err != nil {
			return fmt.Errorf("error saving users: %w", err)
		}
		if err := tx.SaveCurrentUser(ctx, user); err != nil {
			return fmt.Errorf("error saving session: %w", err)
		}

		u := *user
		result = &u
		return nil
	})
	if err != nil {
		s.logger.Debug().Err(err).Str("handle", handle).Msg("Login failed")
		return nil, err
	}

	s.logger.Info().Str("userId", result.ID).Str("handle", result.Handle).Int("streak", result.Streak).Msg("User logged in")
	return result, nil
}

// Signup constructs a new user with a fresh id, the handle normalized to a
// leading "@", the starting point balance and empty social graphs, appends
// it to the users collection and makes it the session user. A handle
// already taken (case-insensitively) is rejected.
func (s *authServiceImpl) Signup(ctx context.Context, req dto.SignupRequest) (*models.User, error) {
	s.delay()

	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	handle := validation.NormalizeHandle(req.Handle)

	var result *models.User
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		if findUserByHandle(users, handle) >= 0 {
			return apperrors.ErrHandleAlreadyExists
		}

		user := models.User{
			ID:               uuid.NewString(),
			Handle:           handle,
			Name:             req.Name,
			Avatar:           req.Avatar,
			Bio:              req.Bio,
			Role:             req.Role,
			Points:           s.signupBonus,
			Followers:        []string{},
			Following:        []string{},
			SubscribedBoxIDs: []string{},
			FavoriteBoxIDs:   []string{},
			SavedLessonIDs:   []string{},
		}
		if req.Role.CanTutor() && (req.Rate > 0 || len(req.Subjects) > 0) {
			user.Tutor = &models.TutorProfile{
				Rate:         req.Rate,
				Subjects:     req.Subjects,
				Availability: req.Availability,
			}
		}

		users = append(users, user)
		if err := tx.SaveUsers(ctx, users); err != nil {
			return fmt.Errorf("error saving users: %w", err)
		}

		txns := tx.Transactions(ctx)
		txns = append(txns, models.Transaction{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			Type:        models.TransactionCredit,
			Amount:      s.signupBonus,
			Description: "Welcome bonus",
			Timestamp:   s.now(),
		})
		if err := tx.SaveTransactions(ctx, txns); err != nil {
			return fmt.Errorf("error recording welcome bonus: %w", err)
		}

		if err := tx.SaveCurrentUser(ctx, &user); err != nil {
			return fmt.Errorf("error saving session: %w", err)
		}

		result = &user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("userId", result.ID).Str("handle", result.Handle).Str("role", string(result.Role)).Msg("User signed up")
	return result, nil
}

// Logout clears only the session pointer; no collection is touched.
func (s *authServiceImpl) Logout(ctx context.Context) error {
	s.delay()
	return s.store.ClearSession(ctx)
}
