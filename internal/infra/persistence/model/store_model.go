package model

import (
	"time"

	"fogon/internal/domain/entity"
)

// StoreModel is the `store_config` singleton document (doc id "main").
type StoreModel struct {
	IsOpen     bool           `firestore:"isOpen"`
	TableCount int            `firestore:"tableCount"`
	Accounts   []AccountModel `firestore:"accounts,omitempty"`
	UpdatedAt  any            `firestore:"updatedAt,omitempty"`
}

// AccountModel is one transfer destination array element.
type AccountModel struct {
	ID     string `firestore:"id"`
	Bank   string `firestore:"bank"`
	Holder string `firestore:"holder"`
	Number string `firestore:"number"`
}

// LegacyConfigModel is the alternate `config` singleton still read by the
// old dashboard's table-count helper.
type LegacyConfigModel struct {
	TableCount int `firestore:"tableCount"`
}

// ToEntity converts the document into the domain store config.
func (m *StoreModel) ToEntity() *entity.StoreConfig {
	accounts := make([]entity.TransferAccount, 0, len(m.Accounts))
	for _, a := range m.Accounts {
		accounts = append(accounts, a.ToEntity())
	}

	return &entity.StoreConfig{
		IsOpen:     m.IsOpen,
		TableCount: m.TableCount,
		Accounts:   accounts,
		UpdatedAt:  NormalizeTime(m.UpdatedAt),
	}
}

// ToEntity converts an account array element into its domain shape.
func (m AccountModel) ToEntity() entity.TransferAccount {
	return entity.TransferAccount{
		ID:     m.ID,
		Bank:   m.Bank,
		Holder: m.Holder,
		Number: m.Number,
	}
}

// StoreFromEntity converts a domain store config into its document shape.
func StoreFromEntity(store *entity.StoreConfig) *StoreModel {
	accounts := make([]AccountModel, 0, len(store.Accounts))
	for _, a := range store.Accounts {
		accounts = append(accounts, AccountFromEntity(a))
	}

	return &StoreModel{
		IsOpen:     store.IsOpen,
		TableCount: store.TableCount,
		Accounts:   accounts,
		UpdatedAt:  time.Now(),
	}
}

// AccountFromEntity converts a domain account into its array element shape.
func AccountFromEntity(account entity.TransferAccount) AccountModel {
	return AccountModel{
		ID:     account.ID,
		Bank:   account.Bank,
		Holder: account.Holder,
		Number: account.Number,
	}
}
