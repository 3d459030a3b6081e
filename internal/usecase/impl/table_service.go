package impl

import (
	"context"
	"log/slog"
	"sync"

	"fogon/config"
	"fogon/internal/domain/constants"
	"fogon/internal/domain/entity"
	"fogon/internal/domain/projection"
	"fogon/internal/domain/repository"
	"fogon/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tableService implements the TableUsecase interface. It owns its own
// subscription to active dine-in orders, independent of the kitchen board:
// the two views may observe the same write at different moments and each
// converges on its own.
type tableService struct {
	storeRepo     repository.StoreRepository
	watcher       repository.OrderWatcher
	fallbackCount int
	logger        *slog.Logger

	mu       sync.RWMutex
	snapshot []*entity.Order
}

// TableServiceParams holds dependencies for TableService, injected by Fx.
type TableServiceParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Ctx       context.Context
	StoreRepo repository.StoreRepository
	Watcher   repository.OrderWatcher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewTableService is the constructor for tableService.
func NewTableService(params TableServiceParams) (usecase.TableUsecase, error) {
	fallback := constants.FallbackTableCount
	if params.Config != nil && params.Config.Store != nil && params.Config.Store.FallbackTableCount > 0 {
		fallback = params.Config.Store.FallbackTableCount
	}

	srv := &tableService{
		storeRepo:     params.StoreRepo,
		watcher:       params.Watcher,
		fallbackCount: fallback,
		logger:        params.Logger,
	}

	watchCtx, cancel := context.WithCancel(params.Ctx)
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			updates, err := srv.watcher.WatchActiveDineIn(watchCtx)
			if err != nil {
				cancel()

				return errors.Wrap(err, "failed to open table occupancy watch")
			}
			go srv.consume(watchCtx, updates)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return srv, nil
}

func (srv *tableService) consume(ctx context.Context, updates <-chan []*entity.Order) {
	for {
		select {
		case <-ctx.Done():
			return
		case orders, ok := <-updates:
			if !ok {
				srv.logger.Info("Table occupancy watch closed")

				return
			}
			srv.mu.Lock()
			srv.snapshot = orders
			srv.mu.Unlock()
		}
	}
}

// Status folds the latest snapshot into the occupancy view. The table count
// comes from the live store configuration, then the legacy singleton, then
// the configured fallback; the picker never fails for want of a count.
func (srv *tableService) Status(ctx context.Context) (*usecase.TableStatus, error) {
	srv.mu.RLock()
	snapshot := srv.snapshot
	srv.mu.RUnlock()

	busy := projection.BusyTables(snapshot)
	count := srv.tableCount(ctx)

	return &usecase.TableStatus{
		TableCount: count,
		Busy:       projection.SortedTables(busy),
		Suggested:  projection.FirstFreeTable(busy, count),
	}, nil
}

func (srv *tableService) tableCount(ctx context.Context) int {
	cfg, err := srv.storeRepo.Get(ctx)
	if err == nil && cfg.TableCount > 0 {
		return cfg.TableCount
	}
	if err != nil {
		srv.logger.Warn("Failed to read store configuration for table count", "error", err)
	}

	count, err := srv.storeRepo.LegacyTableCount(ctx)
	if err == nil && count > 0 {
		return count
	}

	return srv.fallbackCount
}
