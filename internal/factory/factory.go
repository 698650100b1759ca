package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/pokerledger/internal/config"
	"github.com/mcoot/pokerledger/internal/dependencies/clock"
	"github.com/mcoot/pokerledger/internal/dependencies/random"
	"github.com/mcoot/pokerledger/internal/services/controller"
	"github.com/mcoot/pokerledger/internal/services/ledgerstore"
	"github.com/mcoot/pokerledger/internal/services/session"
	"github.com/mcoot/pokerledger/internal/services/table"
	"github.com/mcoot/pokerledger/internal/storage"
	"github.com/mcoot/pokerledger/internal/storage/memory"
	redisstorage "github.com/mcoot/pokerledger/internal/storage/redis"
	sqlitestorage "github.com/mcoot/pokerledger/internal/storage/sqlite"
	"github.com/mcoot/pokerledger/internal/web/sse"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	LedgerStore *ledgerstore.Service
	Session     *session.Model
	Renderer    *table.Renderer
	Controller  *controller.Controller

	// Live page updates
	Hub         *sse.Hub
	Broadcaster *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// CurrencySymbol prefixes formatted amounts; defaults to "$"
	CurrencySymbol string
	// Surfaces receive refreshes in addition to the SSE broadcaster
	Surfaces []table.Surface
}

// FromConfig maps server configuration onto factory configuration
func FromConfig(cfg config.Config, logger *slog.Logger) Config {
	fc := Config{
		Logger:         logger,
		StorageType:    cfg.StorageType,
		SQLitePath:     cfg.SQLitePath,
		CurrencySymbol: cfg.CurrencySymbol,
	}
	if cfg.StorageType == config.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// New creates a new application with all dependencies wired.
// The SSE hub is running on return; call Close to stop it and release storage.
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := NewStore(cfg)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(ctx, store, clock.New(), random.New(), cfg, logger), nil
}

// NewStore opens the storage backend named by cfg.StorageType
func NewStore(cfg Config) (storage.Store, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		return memory.New(), nil
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		store, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		store, err := sqlitestorage.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(ctx context.Context, store storage.Store, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) *App {
	ledger := ledgerstore.New(store, clk, logger)
	sessionModel := session.New(ctx, ledger, clk, rnd, logger)
	renderer := table.NewRenderer(cfg.CurrencySymbol)

	hub := sse.NewHub(logger)
	go hub.Run()
	broadcaster := sse.NewBroadcaster(hub, logger)

	surfaces := append(table.Surfaces{broadcaster}, cfg.Surfaces...)
	ctrl := controller.New(sessionModel, renderer, surfaces, logger)

	return &App{
		Storage:     store,
		Clock:       clk,
		Random:      rnd,
		LedgerStore: ledger,
		Session:     sessionModel,
		Renderer:    renderer,
		Controller:  ctrl,
		Hub:         hub,
		Broadcaster: broadcaster,
	}
}

// Close stops live updates and releases the store
func (a *App) Close() error {
	a.Hub.Close()
	return a.Storage.Close()
}
