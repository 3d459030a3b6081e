package firestore

import (
	"context"
	"time"

	"fogon/internal/domain/entity"
	"fogon/internal/domain/repository"
	"fogon/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type productRepository struct {
	client *firestore.Client
}

// NewProductRepository creates the Firestore-backed product repository.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection(collectionProducts).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product document")
	}

	var m model.ProductModel
	if err := doc.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode product document")
	}

	return m.ToEntity(doc.Ref.ID), nil
}

func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	docs, err := r.client.Collection(collectionProducts).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product documents")
	}

	products := make([]*entity.Product, 0, len(docs))
	for _, doc := range docs {
		var m model.ProductModel
		if err := doc.DataTo(&m); err != nil {
			return nil, errors.Wrapf(err, "failed to decode product %s", doc.Ref.ID)
		}
		products = append(products, m.ToEntity(doc.Ref.ID))
	}

	return products, nil
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	if _, err := r.client.Collection(collectionProducts).Doc(product.ID).Create(ctx, model.ProductFromEntity(product)); err != nil {
		return errors.Wrap(err, "failed to create product document")
	}

	return nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	if _, err := r.client.Collection(collectionProducts).Doc(product.ID).Set(ctx, model.ProductFromEntity(product)); err != nil {
		return errors.Wrap(err, "failed to update product document")
	}

	return nil
}

func (r *productRepository) SetInStock(ctx context.Context, id string, inStock bool) error {
	_, err := r.client.Collection(collectionProducts).Doc(id).Update(ctx, []firestore.Update{
		{Path: "inStock", Value: inStock},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to update product stock flag")
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(collectionProducts).Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete product document")
	}

	return nil
}
