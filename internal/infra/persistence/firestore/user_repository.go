package firestore

import (
	"context"
	"time"

	"fogon/internal/domain/entity"
	"fogon/internal/domain/repository"
	"fogon/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates the Firestore-backed profile repository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	doc, err := r.client.Collection(collectionUsers).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile document")
	}

	var m model.UserModel
	if err := doc.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}

	return m.ToEntity(doc.Ref.ID), nil
}

func (r *userRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	if _, err := r.client.Collection(collectionUsers).Doc(profile.UID).Create(ctx, model.UserFromEntity(profile)); err != nil {
		return errors.Wrap(err, "failed to create profile document")
	}

	return nil
}

func (r *userRepository) UpdateDisplay(ctx context.Context, uid, displayName, photoURL string) error {
	_, err := r.client.Collection(collectionUsers).Doc(uid).Update(ctx, []firestore.Update{
		{Path: "displayName", Value: displayName},
		{Path: "photoURL", Value: photoURL},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update profile display fields")
	}

	return nil
}

// Array-membership changes use the store's atomic union/remove primitives
// so concurrent edits to different entries never race on the whole
// document.

func (r *userRepository) AddAddress(ctx context.Context, uid string, address entity.SavedAddress) error {
	return r.updateArray(ctx, uid, "savedAddresses", firestore.ArrayUnion(model.AddressFromEntity(address)))
}

func (r *userRepository) RemoveAddress(ctx context.Context, uid string, address entity.SavedAddress) error {
	return r.updateArray(ctx, uid, "savedAddresses", firestore.ArrayRemove(model.AddressFromEntity(address)))
}

func (r *userRepository) AddCard(ctx context.Context, uid string, card entity.SavedCard) error {
	return r.updateArray(ctx, uid, "savedCards", firestore.ArrayUnion(model.CardFromEntity(card)))
}

func (r *userRepository) RemoveCard(ctx context.Context, uid string, card entity.SavedCard) error {
	return r.updateArray(ctx, uid, "savedCards", firestore.ArrayRemove(model.CardFromEntity(card)))
}

func (r *userRepository) updateArray(ctx context.Context, uid, field string, value any) error {
	_, err := r.client.Collection(collectionUsers).Doc(uid).Update(ctx, []firestore.Update{
		{Path: field, Value: value},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProfileNotFound
		}

		return errors.Wrapf(err, "failed to update %s", field)
	}

	return nil
}
