package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"fogon/config"
	"fogon/internal/domain/entity"
	domainerrors "fogon/internal/domain/errors"
	"fogon/internal/domain/repository"
	"fogon/internal/domain/service"
	"fogon/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo    repository.UserRepository
	adminEmails map[string]bool
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	adminEmails := make(map[string]bool)
	if params.Config != nil && params.Config.Store != nil {
		for _, email := range params.Config.Store.AdminEmails {
			adminEmails[strings.ToLower(strings.TrimSpace(email))] = true
		}
	}

	return &profileService{
		userRepo:    params.UserRepo,
		adminEmails: adminEmails,
		logger:      params.Logger,
	}
}

// EnsureProfile returns the profile for a verified identity, creating it on
// first sign-in. The profile document is the source of truth for the role;
// the identity provider only asserts who the caller is.
func (srv *profileService) EnsureProfile(ctx context.Context, identity *service.Identity) (*entity.UserProfile, error) {
	profile, err := srv.userRepo.FindByUID(ctx, identity.UID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	role := entity.RoleCustomer
	if srv.adminEmails[strings.ToLower(identity.Email)] {
		role = entity.RoleAdmin
	}

	now := time.Now()
	profile = &entity.UserProfile{
		UID:         identity.UID,
		Email:       identity.Email,
		Role:        role,
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	srv.logger.Info("Provisioning profile", "uid", identity.UID, "role", role)

	if err := srv.userRepo.Create(ctx, profile); err != nil {
		// Two first requests can race the create; the loser reads the
		// winner's document.
		if existing, findErr := srv.userRepo.FindByUID(ctx, identity.UID); findErr == nil {
			return existing, nil
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}

// GetProfile retrieves a profile by uid.
func (srv *profileService) GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, err := srv.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateDisplay updates display name and photo URL.
func (srv *profileService) UpdateDisplay(ctx context.Context, uid, displayName, photoURL string) error {
	if strings.TrimSpace(displayName) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("display name is required")
	}

	if err := srv.userRepo.UpdateDisplay(ctx, uid, displayName, photoURL); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update display data")
	}

	return nil
}

// AddAddress saves one delivery destination on the profile.
func (srv *profileService) AddAddress(ctx context.Context, uid string, input *usecase.AddressInput) (*entity.SavedAddress, error) {
	address := entity.SavedAddress{
		ID:         uuid.NewString(),
		Alias:      input.Alias,
		Text:       input.Text,
		Coordinate: orb.Point{input.Longitude, input.Latitude},
	}

	if err := srv.userRepo.AddAddress(ctx, uid, address); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to add address")
	}

	return &address, nil
}

// RemoveAddress removes one saved address. The full value is required:
// array removal matches whole elements.
func (srv *profileService) RemoveAddress(ctx context.Context, uid string, address entity.SavedAddress) error {
	if err := srv.userRepo.RemoveAddress(ctx, uid, address); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to remove address")
	}

	return nil
}

// AddCard saves a display-only card record. The raw number is reduced to
// brand plus last four digits and discarded; nothing resembling a payment
// vault is kept.
func (srv *profileService) AddCard(ctx context.Context, uid string, input *usecase.CardInput) (*entity.SavedCard, error) {
	number := strings.ReplaceAll(strings.TrimSpace(input.Number), " ", "")
	if len(number) < 12 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("card number is too short")
	}

	card := entity.SavedCard{
		ID:     uuid.NewString(),
		Alias:  input.Alias,
		Brand:  cardBrand(number),
		Holder: input.Holder,
		Last4:  number[len(number)-4:],
	}

	if err := srv.userRepo.AddCard(ctx, uid, card); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to add card")
	}

	return &card, nil
}

// RemoveCard removes one saved card.
func (srv *profileService) RemoveCard(ctx context.Context, uid string, card entity.SavedCard) error {
	if err := srv.userRepo.RemoveCard(ctx, uid, card); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to remove card")
	}

	return nil
}

// cardBrand guesses the card network from the leading digits. Display only.
func cardBrand(number string) string {
	switch {
	case strings.HasPrefix(number, "4"):
		return "Visa"
	case strings.HasPrefix(number, "5"):
		return "Mastercard"
	case strings.HasPrefix(number, "34"), strings.HasPrefix(number, "37"):
		return "American Express"
	default:
		return "Tarjeta"
	}
}
