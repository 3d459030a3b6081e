package impl

import (
	"context"
	"log/slog"

	"fogon/internal/domain/entity"
	domainerrors "fogon/internal/domain/errors"
	"fogon/internal/domain/repository"
	"fogon/internal/domain/service"
	"fogon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	storeRepo repository.StoreRepository
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo: params.StoreRepo,
		qrcode:    params.QRCode,
		logger:    params.Logger,
	}
}

// Get reads the live store configuration, creating the default document on
// first read.
func (srv *storeService) Get(ctx context.Context) (*entity.StoreConfig, error) {
	cfg, err := srv.storeRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read store configuration")
	}

	return cfg, nil
}

// SetOpen flips the storefront open flag.
func (srv *storeService) SetOpen(ctx context.Context, open bool) error {
	srv.logger.Info("Setting store open flag", "open", open)

	if err := srv.storeRepo.SetOpen(ctx, open); err != nil {
		return errors.Wrap(err, "failed to set store open flag")
	}

	return nil
}

// SetTableCount updates the dine-in table count.
func (srv *storeService) SetTableCount(ctx context.Context, count int) error {
	if count < 1 {
		return domainerrors.ErrValidationFailed.WithDetails("table count must be at least 1")
	}

	srv.logger.Info("Setting table count", "count", count)

	if err := srv.storeRepo.SetTableCount(ctx, count); err != nil {
		return errors.Wrap(err, "failed to set table count")
	}

	return nil
}

// AddAccount registers a new transfer destination.
func (srv *storeService) AddAccount(ctx context.Context, input *usecase.TransferAccountInput) (*entity.TransferAccount, error) {
	account := entity.TransferAccount{
		ID:     uuid.NewString(),
		Bank:   input.Bank,
		Holder: input.Holder,
		Number: input.Number,
	}

	if err := srv.storeRepo.AddAccount(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to add transfer account")
	}

	srv.logger.Info("Transfer account added", "accountID", account.ID, "bank", account.Bank)

	return &account, nil
}

// RemoveAccount removes a transfer destination. The full value is required:
// array removal matches whole elements, not ids.
func (srv *storeService) RemoveAccount(ctx context.Context, account entity.TransferAccount) error {
	if err := srv.storeRepo.RemoveAccount(ctx, account); err != nil {
		return errors.Wrap(err, "failed to remove transfer account")
	}

	return nil
}

// TableQR renders the deep-link QR code for one table as PNG bytes.
func (srv *storeService) TableQR(table int) ([]byte, error) {
	if table < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("table number must be at least 1")
	}

	png, err := srv.qrcode.GenerateTableQR(table)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate table QR")
	}

	return png, nil
}
