// Package entity contains the core business objects of the project.
package entity

import "time"

// StoreConfig is the singleton storefront configuration document. It is
// created lazily on first read, mutated only by admin actions, and read
// live by every storefront session.
type StoreConfig struct {
	IsOpen     bool              `json:"is_open"`
	TableCount int               `json:"table_count"`
	Accounts   []TransferAccount `json:"accounts"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// TransferAccount is a bank destination offered for transfer payments.
type TransferAccount struct {
	ID     string `json:"id"`
	Bank   string `json:"bank"`
	Holder string `json:"holder"`
	Number string `json:"number"` // CLABE or account number shown to the customer.
}

// DefaultStoreConfig is the document written on lazy creation: the store
// starts open with the fallback table count and no transfer accounts.
func DefaultStoreConfig(tableCount int) *StoreConfig {
	return &StoreConfig{
		IsOpen:     true,
		TableCount: tableCount,
		Accounts:   nil,
		UpdatedAt:  time.Now(),
	}
}
