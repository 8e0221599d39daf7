package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/models"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/store"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/pkg/apperrors"
)

func newTestWalletService(t *testing.T) (*walletServiceImpl, *store.Store) {
	t.Helper()
	st, cfg := newTestEnv(t)
	svc := NewWalletService(st, cfg, zerolog.Nop()).(*walletServiceImpl)
	return svc, st
}

func TestPurchasePoints(t *testing.T) {
	svc, st := newTestWalletService(t)
	svc.now = at(t, "2024-06-10T09:00:00Z")
	ctx := context.Background()

	user, err := svc.PurchasePoints(ctx, irisID, 500)
	require.NoError(t, err)
	assert.Equal(t, 595, user.Points)
	assert.Equal(t, 595, userByID(t, st, irisID).Points)

	txns := st.Transactions(ctx)
	require.Len(t, txns, 1)
	assert.Equal(t, irisID, txns[0].UserID)
	assert.Equal(t, models.TransactionCredit, txns[0].Type)
	assert.Equal(t, 500, txns[0].Amount)
	assert.Equal(t, "Points purchase", txns[0].Description)
}

func TestPurchasePointsRefreshesSession(t *testing.T) {
	svc, st := newTestWalletService(t)
	ctx := context.Background()

	iris := userByID(t, st, irisID)
	require.NoError(t, st.SaveCurrentUser(ctx, &iris))

	_, err := svc.PurchasePoints(ctx, irisID, 100)
	require.NoError(t, err)

	current := st.CurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, 195, current.Points)
}

func TestPurchasePointsRejectsBadInput(t *testing.T) {
	svc, st := newTestWalletService(t)
	ctx := context.Background()

	for _, amount := range []int{0, -50} {
		_, err := svc.PurchasePoints(ctx, irisID, amount)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "amount %d", amount)
	}

	_, err := svc.PurchasePoints(ctx, "user-ghost", 100)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	assert.Empty(t, st.Transactions(ctx))
	assert.Equal(t, 95, userByID(t, st, irisID).Points)
}
