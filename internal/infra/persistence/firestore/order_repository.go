package firestore

import (
	"context"
	"sort"
	"time"

	"fogon/internal/domain/entity"
	"fogon/internal/domain/repository"
	"fogon/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository creates the Firestore-backed order repository.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection(collectionOrders).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order document")
	}

	return decodeOrder(doc)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	docs, err := r.client.Collection(collectionOrders).
		Where("userId", "==", userID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	orders, err := decodeOrders(docs)
	if err != nil {
		return nil, err
	}

	// Sorting happens after normalization; the store's createdAt values are
	// not uniformly shaped, so OrderBy on the raw field is unreliable.
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}

func (r *orderRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Order, error) {
	docs, err := r.client.Collection(collectionOrders).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	all, err := decodeOrders(docs)
	if err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, 0, len(all))
	for _, order := range all {
		if order.CreatedAt.Before(from) || !order.CreatedAt.Before(to) {
			continue
		}
		orders = append(orders, order)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})

	return orders, nil
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if _, err := r.client.Collection(collectionOrders).Doc(order.ID).Create(ctx, model.OrderFromEntity(order)); err != nil {
		return errors.Wrap(err, "failed to create order document")
	}

	return nil
}

func (r *orderRepository) Upsert(ctx context.Context, order *entity.Order) error {
	// Blind overwrite: the wallet draft is recomputed wholesale while the
	// payment UI is open and the last write wins.
	if _, err := r.client.Collection(collectionOrders).Doc(order.ID).Set(ctx, model.OrderFromEntity(order)); err != nil {
		return errors.Wrap(err, "failed to upsert order draft")
	}

	return nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, st entity.OrderStatus) error {
	_, err := r.client.Collection(collectionOrders).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(st)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order status")
	}

	return nil
}

func decodeOrder(doc *firestore.DocumentSnapshot) (*entity.Order, error) {
	var m model.OrderModel
	if err := doc.DataTo(&m); err != nil {
		return nil, errors.Wrapf(err, "failed to decode order %s", doc.Ref.ID)
	}

	return m.ToEntity(doc.Ref.ID), nil
}

func decodeOrders(docs []*firestore.DocumentSnapshot) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(docs))
	for _, doc := range docs {
		order, err := decodeOrder(doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}
