package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/store"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/config"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/db"
)

// Fixture ids used throughout the service tests.
const (
	mayaID  = "user-maya"
	leoID   = "user-leo"
	irisID  = "user-iris"
	physBox = "box-pocket-physics"
	inertia = "lesson-inertia"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.API.LatencyMin = "0s"
	cfg.API.LatencyMax = "0s"
	cfg.API.LoginBonus = 50
	cfg.API.SignupBonus = 100
	cfg.API.PlatformFeePercent = 10
	return cfg
}

func newTestEnv(t *testing.T) (*store.Store, *config.Config) {
	t.Helper()

	database, err := db.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	st := store.New(database, zerolog.Nop())
	ctx := context.Background()
	require.NoError(t, st.EnsureSchema(ctx))
	require.NoError(t, st.Initialize(ctx))
	return st, testConfig()
}

// at parses a fixed timestamp for injecting into a service's clock.
func at(t *testing.T, value string) func() time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return func() time.Time { return ts }
}
