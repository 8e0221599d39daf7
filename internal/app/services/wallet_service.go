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

// WalletService defines the interface for point purchases
type WalletService interface {
	PurchasePoints(ctx context.Context, userID string, amount int) (*models.User, error)
}

// walletServiceImpl implements WalletService
type walletServiceImpl struct {
	store  *store.Store
	delay  delayFn
	now    func() time.Time
	logger zerolog.Logger
}

// NewWalletService creates a new WalletService
func NewWalletService(st *store.Store, cfg *config.Config, logger zerolog.Logger) WalletService {
	min, max := cfg.LatencyBounds()
	return &walletServiceImpl{
		store:  st,
		delay:  newDelay(min, max),
		now:    time.Now,
		logger: logger,
	}
}

// PurchasePoints credits the user's balance and appends the matching
// ledger entry in one transaction. Amounts are additive only; a
// non-positive amount is rejected before anything is read.
func (s *walletServiceImpl) PurchasePoints(ctx context.Context, userID string, amount int) (*models.User, error) {
	s.delay()

	if amount <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, apperrors.ErrInvalidAmount.Error())
	}

	var result *models.User
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		users := tx.Users(ctx)
		idx := findUser(users, userID)
		if idx < 0 {
			return apperrors.ErrUserNotFound
		}

		user := &users[idx]
		user.Points += amount

		txns := tx.Transactions(ctx)
		txns = append(txns, models.Transaction{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			Type:        models.TransactionCredit,
			Amount:      amount,
			Description: "Points purchase",
			Timestamp:   s.now(),
		})

		if err := tx.SaveUsers(ctx, users); err != nil {
			return fmt.Errorf("error saving users: %w", err)
		}
		if err := tx.SaveTransactions(ctx, txns); err != nil {
			return fmt.Errorf("error saving transactions: %w", err)
		}

		if current := tx.CurrentUser(ctx); current != nil && current.ID == user.ID {
			if err := tx.SaveCurrentUser(ctx, user); err != nil {
				return fmt.Errorf("error refreshing session: %w", err)
			}
		}

		u := *user
		result = &u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("userId", userID).Int("amount", amount).Int("balance", result.Points).Msg("Points purchased")
	return result, nil
}
