// Package repository provides testify mocks for the persistence interfaces.
package repository

import (
	"context"
	"testing"
	"time"

	"fogon/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a mock whose expectations are asserted
// on test cleanup.
func NewMockProductRepository(t *testing.T) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) SetInStock(ctx context.Context, id string, inStock bool) error {
	return m.Called(ctx, id, inStock).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

// NewMockOrderRepository creates a mock whose expectations are asserted on
// test cleanup.
func NewMockOrderRepository(t *testing.T) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Order, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) Upsert(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

// MockOrderWatcher is a mock implementation of repository.OrderWatcher.
type MockOrderWatcher struct {
	mock.Mock
}

// NewMockOrderWatcher creates a mock whose expectations are asserted on
// test cleanup.
func NewMockOrderWatcher(t *testing.T) *MockOrderWatcher {
	m := &MockOrderWatcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderWatcher) WatchAll(ctx context.Context) (<-chan []*entity.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(<-chan []*entity.Order), args.Error(1)
}

func (m *MockOrderWatcher) WatchActiveDineIn(ctx context.Context) (<-chan []*entity.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(<-chan []*entity.Order), args.Error(1)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock whose expectations are asserted on
// test cleanup.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockUserRepository) UpdateDisplay(ctx context.Context, uid, displayName, photoURL string) error {
	return m.Called(ctx, uid, displayName, photoURL).Error(0)
}

func (m *MockUserRepository) AddAddress(ctx context.Context, uid string, address entity.SavedAddress) error {
	return m.Called(ctx, uid, address).Error(0)
}

func (m *MockUserRepository) RemoveAddress(ctx context.Context, uid string, address entity.SavedAddress) error {
	return m.Called(ctx, uid, address).Error(0)
}

func (m *MockUserRepository) AddCard(ctx context.Context, uid string, card entity.SavedCard) error {
	return m.Called(ctx, uid, card).Error(0)
}

func (m *MockUserRepository) RemoveCard(ctx context.Context, uid string, card entity.SavedCard) error {
	return m.Called(ctx, uid, card).Error(0)
}

// MockStoreRepository is a mock implementation of repository.StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

// NewMockStoreRepository creates a mock whose expectations are asserted on
// test cleanup.
func NewMockStoreRepository(t *testing.T) *MockStoreRepository {
	m := &MockStoreRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStoreRepository) Get(ctx context.Context) (*entity.StoreConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.StoreConfig), args.Error(1)
}

func (m *MockStoreRepository) SetOpen(ctx context.Context, open bool) error {
	return m.Called(ctx, open).Error(0)
}

func (m *MockStoreRepository) SetTableCount(ctx context.Context, count int) error {
	return m.Called(ctx, count).Error(0)
}

func (m *MockStoreRepository) AddAccount(ctx context.Context, account entity.TransferAccount) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockStoreRepository) RemoveAccount(ctx context.Context, account entity.TransferAccount) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockStoreRepository) LegacyTableCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}
