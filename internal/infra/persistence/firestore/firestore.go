// Package firestore implements the repository contracts on the managed
// document store. Every mutation is an independent last-write-wins
// operation scoped to a single document or a single array-membership
// change; no document-level locking is used anywhere.
package firestore

import (
	"context"
	"log/slog"

	"fogon/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names shared with the storefront clients.
const (
	collectionProducts    = "products"
	collectionOrders      = "orders"
	collectionUsers       = "users"
	collectionStoreConfig = "store_config"
	collectionLegacy      = "config"

	singletonDoc = "main"
)

// Params holds dependencies for the Firestore client, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase admin app backing both Firestore and
// ID-token verification.
func NewApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

// NewClient opens the Firestore client and ties its shutdown to the fx
// lifecycle.
func NewClient(params Params, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
