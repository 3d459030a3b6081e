package usecase

import (
	"context"

	"fogon/internal/domain/entity"
)

// TransferAccountInput defines a bank destination offered for transfer
// payments.
type TransferAccountInput struct {
	Bank   string `json:"bank" validate:"required"`
	Holder string `json:"holder" validate:"required"`
	Number string `json:"number" validate:"required"`
}

// StoreUsecase manages the storefront configuration: the open flag, the
// dine-in table count, the transfer accounts and the printable table QR
// codes.
type StoreUsecase interface {
	// Get reads the live store configuration, creating the default document
	// on first read.
	Get(ctx context.Context) (*entity.StoreConfig, error)

	SetOpen(ctx context.Context, open bool) error
	SetTableCount(ctx context.Context, count int) error

	AddAccount(ctx context.Context, input *TransferAccountInput) (*entity.TransferAccount, error)
	RemoveAccount(ctx context.Context, account entity.TransferAccount) error

	// TableQR renders the deep-link QR code for one table as PNG bytes.
	TableQR(table int) ([]byte, error)
}
