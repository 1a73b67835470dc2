package cmd

import (
	"context"
	"fmt"

	"unique-checker/core/config"
	"unique-checker/core/database"
	"unique-checker/core/logger"
	"unique-checker/core/metrics"
	"unique-checker/core/storage"
	"unique-checker/feature/backup"
	"unique-checker/feature/player"
	"unique-checker/feature/uniques"
	ureconcile "unique-checker/feature/uniques/reconcile"
	"unique-checker/feature/uniques/store"
	"unique-checker/feature/uniques/sync"
	"unique-checker/feature/uniques/trade"

	"go.uber.org/zap"
)

// application wires the checker for one command run.
type application struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	store   *store.Store
	service *uniques.Service
}

// bootstrap loads configuration and builds every component.
// clipboard may be nil for commands that never read it.
func bootstrap(ctx context.Context, clipboard uniques.Clipboard) (*application, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	st, err := store.Open(ctx, db)
	if err != nil {
		return nil, err
	}

	players, err := player.NewStore(cfg.Player)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	rec := ureconcile.NewReconciler(st, m, l)
	pipeline := sync.NewPipeline(trade.NewHTTPClient(cfg.Trade), rec, cfg.Trade, m, l)

	svc, err := uniques.NewService(uniques.Deps{
		Reconciler: rec,
		Pipeline:   pipeline,
		Entries:    st,
		Players:    players,
		Window:     uniques.AlwaysFocused{},
		Clipboard:  clipboard,
		Chat:       uniques.LogChat{Logger: l.Named("chat")},
		Logger:     l,
		Username:   cfg.Player.Username,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	pipeline.SetNotifier(svc.Notify)

	return &application{
		cfg:     cfg,
		logger:  l,
		metrics: m,
		store:   st,
		service: svc,
	}, nil
}

// backupService connects to object storage.
func (a *application) backupService() (*backup.Service, error) {
	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return backup.NewService(client, a.cfg.Storage, a.store, a.service, a.service, a.logger), nil
}
