package impl

import (
	"context"
	"log/slog"
	"sync"

	"fogon/internal/domain/entity"
	domainerrors "fogon/internal/domain/errors"
	"fogon/internal/domain/projection"
	"fogon/internal/domain/repository"
	"fogon/internal/domain/service"
	"fogon/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// kitchenService implements the KitchenUsecase interface. It owns one
// subscription to the full order collection and keeps only the latest
// delivered snapshot; projections are computed per read.
type kitchenService struct {
	orderRepo repository.OrderRepository
	watcher   repository.OrderWatcher
	publisher service.EventPublisher
	logger    *slog.Logger

	mu          sync.RWMutex
	snapshot    []*entity.Order
	subscribers map[chan struct{}]struct{}
}

// KitchenServiceParams holds dependencies for KitchenService, injected by Fx.
type KitchenServiceParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Ctx       context.Context
	OrderRepo repository.OrderRepository
	Watcher   repository.OrderWatcher
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewKitchenService is the constructor for kitchenService. The watcher
// subscription is tied to the application lifecycle.
func NewKitchenService(params KitchenServiceParams) (usecase.KitchenUsecase, error) {
	srv := &kitchenService{
		orderRepo:   params.OrderRepo,
		watcher:     params.Watcher,
		publisher:   params.Publisher,
		logger:      params.Logger,
		subscribers: make(map[chan struct{}]struct{}),
	}

	watchCtx, cancel := context.WithCancel(params.Ctx)
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			updates, err := srv.watcher.WatchAll(watchCtx)
			if err != nil {
				cancel()

				return errors.Wrap(err, "failed to open kitchen order watch")
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

// consume folds delivered snapshots into the held state and signals
// subscribers. It exits when the watch channel closes.
func (srv *kitchenService) consume(ctx context.Context, updates <-chan []*entity.Order) {
	for {
		select {
		case <-ctx.Done():
			return
		case orders, ok := <-updates:
			if !ok {
				srv.logger.Info("Kitchen order watch closed")

				return
			}
			srv.store(orders)
		}
	}
}

func (srv *kitchenService) store(orders []*entity.Order) {
	srv.mu.Lock()
	srv.snapshot = orders
	for ch := range srv.subscribers {
		select {
		case ch <- struct{}{}:
		default: // Subscriber still has a pending signal.
		}
	}
	srv.mu.Unlock()
}

// Board returns the current kitchen board as the given role sees it.
func (srv *kitchenService) Board(role entity.Role) []projection.Ticket {
	srv.mu.RLock()
	snapshot := srv.snapshot
	srv.mu.RUnlock()

	return projection.KitchenBoard(snapshot, role)
}

// Subscribe registers for board-change signals until ctx is done. The
// channel has capacity one so a burst of snapshots collapses into a single
// pending signal.
func (srv *kitchenService) Subscribe(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)

	srv.mu.Lock()
	srv.subscribers[ch] = struct{}{}
	srv.mu.Unlock()

	go func() {
		<-ctx.Done()
		srv.mu.Lock()
		delete(srv.subscribers, ch)
		srv.mu.Unlock()
	}()

	return ch
}

// Advance moves an order forward in its lifecycle. Backward moves,
// terminal states and unconfirmed drafts are rejected.
func (srv *kitchenService) Advance(ctx context.Context, orderID string, next entity.OrderStatus) error {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to find order")
	}

	if order.Status == entity.StatusPendingPayment {
		return domainerrors.ErrInvalidTransition.WithDetails("order is awaiting payment")
	}
	if next == entity.StatusEnRoute && order.Type != entity.FulfillmentDelivery {
		return domainerrors.ErrInvalidTransition.WithDetails("only delivery orders go en route")
	}
	if !order.Status.CanTransitionTo(next) {
		return domainerrors.ErrInvalidTransition
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
		return errors.Wrap(err, "failed to advance order")
	}

	srv.logger.Info("Order advanced", "orderID", orderID, "from", order.Status, "to", next)

	order.Status = next
	event := &service.OrderEvent{
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
		Type:    order.Type,
		Total:   order.Total,
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish order event", "orderID", order.ID, "error", err)
	}

	return nil
}
