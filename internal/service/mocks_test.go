package service

import (
	"context"
	"math/big"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRentRepo
type MockRentRepo struct {
	mock.Mock
}

func (m *MockRentRepo) GetRecord(ctx context.Context, tokenID int64) (*domain.RentRecord, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentRecord), args.Error(1)
}
func (m *MockRentRepo) SaveRecord(ctx context.Context, record *domain.RentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *MockRentRepo) ListRecords(ctx context.Context) ([]domain.RentRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentRecord), args.Error(1)
}
func (m *MockRentRepo) SaveSnapshot(ctx context.Context, snapshot *domain.RentSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

// MockAssetRepo
type MockAssetRepo struct {
	mock.Mock
}

func (m *MockAssetRepo) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}
func (m *MockAssetRepo) GetByTokenID(ctx context.Context, tokenID int64) (*domain.Asset, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockAssetRepo) UpdateOwner(ctx context.Context, tokenID int64, newOwner string) error {
	args := m.Called(ctx, tokenID, newOwner)
	return args.Error(0)
}
func (m *MockAssetRepo) SetListed(ctx context.Context, tokenID int64, listed bool) error {
	args := m.Called(ctx, tokenID, listed)
	return args.Error(0)
}
func (m *MockAssetRepo) ListByOwner(ctx context.Context, owner string) ([]domain.Asset, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]domain.Asset), args.Error(1)
}

// MockCategoryRepo
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
func (m *MockCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) UpdateDepositor(ctx context.Context, id int64, depositor string) error {
	args := m.Called(ctx, id, depositor)
	return args.Error(0)
}

// MockRentEventRepo
type MockRentEventRepo struct {
	mock.Mock
}

func (m *MockRentEventRepo) Create(ctx context.Context, event *domain.RentEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockRentEventRepo) ListByToken(ctx context.Context, tokenID int64, limit, offset int32) ([]domain.RentEvent, int32, error) {
	args := m.Called(ctx, tokenID, limit, offset)
	return args.Get(0).([]domain.RentEvent), args.Get(1).(int32), args.Error(2)
}

// MockBalanceRepo
type MockBalanceRepo struct {
	mock.Mock
}

func (m *MockBalanceRepo) GetBalance(ctx context.Context, address, token string) (*big.Int, error) {
	args := m.Called(ctx, address, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}
func (m *MockBalanceRepo) Credit(ctx context.Context, address, token string, amount *big.Int) error {
	args := m.Called(ctx, address, token, amount)
	return args.Error(0)
}
func (m *MockBalanceRepo) Debit(ctx context.Context, address, token string, amount *big.Int) error {
	args := m.Called(ctx, address, token, amount)
	return args.Error(0)
}

// MockListingRepo
type MockListingRepo struct {
	mock.Mock
}

func (m *MockListingRepo) Create(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}
func (m *MockListingRepo) GetByTokenID(ctx context.Context, tokenID int64) (*domain.Listing, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingRepo) Delete(ctx context.Context, tokenID int64) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MockTransferService
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) Transfer(ctx context.Context, from, to, token string, amount *big.Int) error {
	args := m.Called(ctx, from, to, token, amount)
	return args.Error(0)
}
func (m *MockTransferService) BalanceOf(ctx context.Context, address, token string) (*big.Int, error) {
	args := m.Called(ctx, address, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}
func (m *MockTransferService) Fund(ctx context.Context, caller, to, token string, amount *big.Int) error {
	args := m.Called(ctx, caller, to, token, amount)
	return args.Error(0)
}

// passthroughTx runs the transactional closure directly; unit tests assert
// repository calls, not transaction plumbing.
type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
