package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/ryzadigital/igripps/internal/config"
	"github.com/ryzadigital/igripps/internal/contact"
	"github.com/ryzadigital/igripps/internal/content"
	"github.com/ryzadigital/igripps/internal/designer"
	"github.com/ryzadigital/igripps/internal/handlers"
	"github.com/ryzadigital/igripps/internal/mailer"
	"github.com/ryzadigital/igripps/internal/observability"
)

type App struct {
	Config      *config.Config
	Logger      *slog.Logger
	DesignStore designer.Store
	Handlers    *handlers.Handlers
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	httpClient := observability.NewHTTPClient(10 * time.Second)

	contentClient := content.NewClient(content.ClientConfig{
		BaseURL:     cfg.ContentfulBaseURL,
		SpaceID:     cfg.ContentfulSpaceID,
		Environment: cfg.ContentfulEnvironment,
		AccessToken: cfg.ContentfulAccessToken,
		HTTPClient:  httpClient,
	}, logger)

	// The provider is rebuilt per dispatch so both notifications of one
	// submission share a provider session.
	providerFactory := func() (mailer.Provider, error) {
		return mailer.NewProvider(mailer.Config{
			Provider:   cfg.EmailProvider,
			APIKey:     cfg.EmailAPIKey,
			From:       cfg.EmailFrom,
			Domain:     cfg.MailgunDomain,
			HTTPClient: httpClient,
		})
	}
	dispatcher := mailer.NewDispatcher(mailer.DispatcherConfig{
		ProviderFactory: providerFactory,
		Mailbox:         cfg.ContactMailbox,
		BCC:             cfg.ContactBCC,
	}, logger)

	contactService := contact.NewService(dispatcher, logger)

	designStore, err := designer.NewStore(startupCtx, designer.StoreConfig{
		Provider:      cfg.DesignStoreProvider,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize design store: %w", err)
	}

	h, err := handlers.New(handlers.Dependencies{
		Config:         cfg,
		Content:        contentClient,
		ContactService: contactService,
		DesignStore:    designStore,
		Logger:         logger,
	})
	if err != nil {
		closeDesignStore(logger, designStore)
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return &App{
		Config:      cfg,
		Logger:      logger,
		DesignStore: designStore,
		Handlers:    h,
	}, nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.DesignStore != nil {
		closeDesignStore(a.Logger, a.DesignStore)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	format := strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	case "text", "":
		return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level: cfg.LogLevel,
		}))
	}
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: cfg.LogLevel}))
}

func closeDesignStore(logger *slog.Logger, store designer.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil && logger != nil {
		logger.Warn("failed to close design store", "error", err)
	}
}
