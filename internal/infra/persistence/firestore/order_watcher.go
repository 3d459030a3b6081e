package firestore

import (
	"context"
	"log/slog"

	"fogon/internal/domain/entity"
	"fogon/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type orderWatcher struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewOrderWatcher creates the Firestore-backed live order stream. Each
// Watch call opens its own snapshot listener; the kitchen and table views
// deliberately do not share one.
func NewOrderWatcher(client *firestore.Client, logger *slog.Logger) repository.OrderWatcher {
	return &orderWatcher{client: client, logger: logger}
}

func (w *orderWatcher) WatchAll(ctx context.Context) (<-chan []*entity.Order, error) {
	query := w.client.Collection(collectionOrders).Query

	return w.watch(ctx, query, "orders"), nil
}

func (w *orderWatcher) WatchActiveDineIn(ctx context.Context) (<-chan []*entity.Order, error) {
	query := w.client.Collection(collectionOrders).
		Where("type", "==", string(entity.FulfillmentTable)).
		Where("status", "in", []string{
			string(entity.StatusPending),
			string(entity.StatusPreparing),
			string(entity.StatusEnRoute),
		})

	return w.watch(ctx, query, "dine-in orders"), nil
}

// watch pumps query snapshots into a latest-wins channel until ctx is
// done. Within one subscription updates arrive in the store's commit
// order; consumers holding a stale snapshot simply get the next one.
func (w *orderWatcher) watch(ctx context.Context, query firestore.Query, name string) <-chan []*entity.Order {
	out := make(chan []*entity.Order, 1)

	go func() {
		defer close(out)

		iter := query.Snapshots(ctx)
		defer iter.Stop()

		for {
			snap, err := iter.Next()
			if err != nil {
				if ctx.Err() == nil {
					w.logger.Error("order snapshot stream ended",
						slog.String("watch", name),
						slog.Any("error", errors.WithStack(err)),
					)
				}

				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				w.logger.Error("failed to read order snapshot",
					slog.String("watch", name),
					slog.Any("error", err),
				)

				continue
			}

			orders, err := decodeOrders(docs)
			if err != nil {
				w.logger.Error("failed to decode order snapshot",
					slog.String("watch", name),
					slog.Any("error", err),
				)

				continue
			}

			// Latest-wins: replace an unread snapshot instead of blocking
			// the listener.
			select {
			case out <- orders:
			default:
				select {
				case <-out:
				default:
				}
				out <- orders
			}
		}
	}()

	return out
}
