package firestore

import (
	"context"
	"log/slog"
	"time"

	"fogon/config"
	"fogon/internal/domain/constants"
	"fogon/internal/domain/entity"
	"fogon/internal/domain/repository"
	"fogon/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type storeRepository struct {
	client             *firestore.Client
	logger             *slog.Logger
	fallbackTableCount int
}

// NewStoreRepository creates the Firestore-backed store-config repository.
func NewStoreRepository(client *firestore.Client, cfg *config.Config, logger *slog.Logger) repository.StoreRepository {
	fallback := constants.FallbackTableCount
	if cfg.Store != nil && cfg.Store.FallbackTableCount > 0 {
		fallback = cfg.Store.FallbackTableCount
	}

	return &storeRepository{
		client:             client,
		logger:             logger,
		fallbackTableCount: fallback,
	}
}

func (r *storeRepository) doc() *firestore.DocumentRef {
	return r.client.Collection(collectionStoreConfig).Doc(singletonDoc)
}

// Get reads the singleton, creating the default document on first read so
// every later mutation has something to update.
func (r *storeRepository) Get(ctx context.Context) (*entity.StoreConfig, error) {
	doc, err := r.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return r.createDefault(ctx)
		}

		return nil, errors.Wrap(err, "failed to get store config")
	}

	var m model.StoreModel
	if err := doc.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode store config")
	}

	return m.ToEntity(), nil
}

func (r *storeRepository) createDefault(ctx context.Context) (*entity.StoreConfig, error) {
	def := entity.DefaultStoreConfig(r.fallbackTableCount)
	if _, err := r.doc().Set(ctx, model.StoreFromEntity(def)); err != nil {
		return nil, errors.Wrap(err, "failed to create default store config")
	}

	r.logger.Info("created default store config",
		slog.Int("tableCount", def.TableCount),
	)

	return def, nil
}

func (r *storeRepository) SetOpen(ctx context.Context, open bool) error {
	return r.update(ctx, []firestore.Update{
		{Path: "isOpen", Value: open},
		{Path: "updatedAt", Value: time.Now()},
	})
}

func (r *storeRepository) SetTableCount(ctx context.Context, count int) error {
	return r.update(ctx, []firestore.Update{
		{Path: "tableCount", Value: count},
		{Path: "updatedAt", Value: time.Now()},
	})
}

func (r *storeRepository) AddAccount(ctx context.Context, account entity.TransferAccount) error {
	return r.update(ctx, []firestore.Update{
		{Path: "accounts", Value: firestore.ArrayUnion(model.AccountFromEntity(account))},
		{Path: "updatedAt", Value: time.Now()},
	})
}

func (r *storeRepository) RemoveAccount(ctx context.Context, account entity.TransferAccount) error {
	return r.update(ctx, []firestore.Update{
		{Path: "accounts", Value: firestore.ArrayRemove(model.AccountFromEntity(account))},
		{Path: "updatedAt", Value: time.Now()},
	})
}

func (r *storeRepository) update(ctx context.Context, updates []firestore.Update) error {
	if _, err := r.doc().Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			// Lazily create, then retry once.
			if _, createErr := r.createDefault(ctx); createErr != nil {
				return createErr
			}
			if _, retryErr := r.doc().Update(ctx, updates); retryErr != nil {
				return errors.Wrap(retryErr, "failed to update store config")
			}

			return nil
		}

		return errors.Wrap(err, "failed to update store config")
	}

	return nil
}

// LegacyTableCount reads the alternate `config` singleton. A missing or
// unreadable document degrades to the fallback count, never to an error
// the storefront would show.
func (r *storeRepository) LegacyTableCount(ctx context.Context) (int, error) {
	doc, err := r.client.Collection(collectionLegacy).Doc(singletonDoc).Get(ctx)
	if err != nil {
		r.logger.Warn("legacy table count unavailable, using fallback",
			slog.Int("fallback", r.fallbackTableCount),
			slog.Any("error", err),
		)

		return r.fallbackTableCount, nil
	}

	var m model.LegacyConfigModel
	if err := doc.DataTo(&m); err != nil || m.TableCount <= 0 {
		return r.fallbackTableCount, nil
	}

	return m.TableCount, nil
}
