package bootstrap

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appServices "github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/services"
	appStore "github.com/khaderelias2025-cloud/LrnBox-sub001/internal/app/store"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/config"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/db"
	"github.com/khaderelias2025-cloud/LrnBox-sub001/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Config        *config.Config
	Logger        zerolog.Logger
	DB            *db.SQLiteDB
	Store         *appStore.Store
	Auth          appServices.AuthService
	Content       appServices.ContentService
	Social        appServices.SocialService
	Messaging     appServices.MessagingService
	Notifications appServices.NotificationService
	Reminders     appServices.ReminderService
	Wallet        appServices.WalletService
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the embedded database, ensures the schema and seeds any
// missing collections with their fixture defaults.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.SQLiteDB, *appStore.Store, error) {
	database, err := db.Open(cfg.Storage.Path)
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Storage.Path).Msg("Failed to open storage")
		return nil, nil, err
	}

	st := appStore.New(database, lgr)
	if err := st.EnsureSchema(ctx); err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	if err := st.Initialize(ctx); err != nil {
		_ = database.Close()
		return nil, nil, err
	}

	lgr.Info().Str("path", cfg.Storage.Path).Msg("Collection store ready")
	return database, st, nil
}

// SetupDependencies wires config, logger, store and services.
func SetupDependencies(ctx context.Context, configPath string) (*Dependencies, error) {
	cfg, lgr, err := LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, err
	}

	database, st, err := SetupStore(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Config:        cfg,
		Logger:        lgr,
		DB:            database,
		Store:         st,
		Auth:          appServices.NewAuthService(st, cfg, lgr),
		Content:       appServices.NewContentService(st, cfg, lgr),
		Social:        appServices.NewSocialService(st, cfg, lgr),
		Messaging:     appServices.NewMessagingService(st, cfg, lgr),
		Notifications: appServices.NewNotificationService(st, cfg, lgr),
		Reminders:     appServices.NewReminderService(st, cfg, lgr),
		Wallet:        appServices.NewWalletService(st, cfg, lgr),
	}, nil
}

// Close releases the database handle.
func (d *Dependencies) Close() {
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
