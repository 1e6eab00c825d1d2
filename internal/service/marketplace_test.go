package service

import (
	"context"
	"math/big"
	"testing"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type marketFixture struct {
	listingRepo  *MockListingRepo
	assetRepo    *MockAssetRepo
	categoryRepo *MockCategoryRepo
	transferSvc  *MockTransferService
	svc          MarketplaceService
}

func newMarketFixture() *marketFixture {
	fx := &marketFixture{
		listingRepo:  new(MockListingRepo),
		assetRepo:    new(MockAssetRepo),
		categoryRepo: new(MockCategoryRepo),
		transferSvc:  new(MockTransferService),
	}
	fx.svc = NewMarketplaceService(fx.listingRepo, fx.assetRepo, fx.categoryRepo, fx.transferSvc, passthroughTx{})
	return fx
}

func TestListAsset(t *testing.T) {
	fx := newMarketFixture()
	fx.assetRepo.On("GetByTokenID", mock.Anything, int64(5)).
		Return(&domain.Asset{TokenID: 5, CategoryID: 1, Owner: "seller"}, nil)
	fx.listingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	fx.assetRepo.On("SetListed", mock.Anything, int64(5), true).Return(nil)

	listing, err := fx.svc.ListAsset(context.Background(), "seller", 5, "USDC", big.NewInt(5000))

	assert.NoError(t, err)
	assert.Equal(t, "seller", listing.Seller)
	assert.Equal(t, "5000", listing.Price.String())
	fx.assetRepo.AssertExpectations(t)
}

func TestListAssetRejectsNonOwnerAndDoubleListing(t *testing.T) {
	fx := newMarketFixture()
	fx.assetRepo.On("GetByTokenID", mock.Anything, int64(5)).
		Return(&domain.Asset{TokenID: 5, CategoryID: 1, Owner: "seller", Listed: true}, nil)

	_, err := fx.svc.ListAsset(context.Background(), "stranger", 5, "USDC", big.NewInt(100))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = fx.svc.ListAsset(context.Background(), "seller", 5, "USDC", big.NewInt(100))
	assert.ErrorIs(t, err, domain.ErrAlreadyListed)

	_, err = fx.svc.ListAsset(context.Background(), "seller", 5, "USDC", big.NewInt(0))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	fx.listingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDelistAsset(t *testing.T) {
	fx := newMarketFixture()
	fx.listingRepo.On("GetByTokenID", mock.Anything, int64(5)).
		Return(&domain.Listing{TokenID: 5, Seller: "seller", PaymentToken: "USDC", Price: big.NewInt(100)}, nil)
	fx.listingRepo.On("Delete", mock.Anything, int64(5)).Return(nil)
	fx.assetRepo.On("SetListed", mock.Anything, int64(5), false).Return(nil)

	err := fx.svc.DelistAsset(context.Background(), "seller", 5)

	assert.NoError(t, err)
	fx.listingRepo.AssertExpectations(t)
}

func TestDelistAssetRejectsNonSeller(t *testing.T) {
	fx := newMarketFixture()
	fx.listingRepo.On("GetByTokenID", mock.Anything, int64(5)).
		Return(&domain.Listing{TokenID: 5, Seller: "seller", PaymentToken: "USDC", Price: big.NewInt(100)}, nil)

	err := fx.svc.DelistAsset(context.Background(), "stranger", 5)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	fx.listingRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPurchaseAssetSplitsFeeAndTransfersOwnership(t *testing.T) {
	fx := newMarketFixture()
	fx.listingRepo.On("GetByTokenID", mock.Anything, int64(5)).
		Return(&domain.Listing{TokenID: 5, Seller: "seller", PaymentToken: "USDC", Price: big.NewInt(10000)}, nil)
	fx.assetRepo.On("GetByTokenID", mock.Anything, int64(5)).
		Return(&domain.Asset{TokenID: 5, CategoryID: 1, Owner: "seller", Listed: true}, nil)
	fx.categoryRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Category{ID: 1, Treasury: "treasury", FeeBps: 250}, nil)

	// 2.5% of 10000 to the treasury, the rest to the seller.
	fx.transferSvc.On("Transfer", mock.Anything, "buyer", "treasury", "USDC", big.NewInt(250)).Return(nil)
	fx.transferSvc.On("Transfer", mock.Anything, "buyer", "seller", "USDC", big.NewInt(9750)).Return(nil)
	fx.listingRepo.On("Delete", mock.Anything, int64(5)).Return(nil)
	fx.assetRepo.On("SetListed", mock.Anything, int64(5), false).Return(nil)
	fx.assetRepo.On("UpdateOwner", mock.Anything, int64(5), "buyer").Return(nil)

	asset, err := fx.svc.PurchaseAsset(context.Background(), "buyer", 5)

	assert.NoError(t, err)
	assert.Equal(t, "buyer", asset.Owner)
	assert.False(t, asset.Listed)
	fx.transferSvc.AssertExpectations(t)
	fx.assetRepo.AssertExpectations(t)
}

func TestPurchaseAssetZeroFeeSkipsTreasury(t *testing.T) {
	fx := newMarketFixture()
	fx.listingRepo.On("GetByTokenID", mock.Anything, int64(5)).
		Return(&domain.Listing{TokenID: 5, Seller: "seller", PaymentToken: "USDC", Price: big.NewInt(100)}, nil)
	fx.assetRepo.On("GetByTokenID", mock.Anything, int64(5)).
		Return(&domain.Asset{TokenID: 5, CategoryID: 1, Owner: "seller", Listed: true}, nil)
	fx.categoryRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Category{ID: 1, Treasury: "treasury", FeeBps: 0}, nil)
	fx.transferSvc.On("Transfer", mock.Anything, "buyer", "seller", "USDC", big.NewInt(100)).Return(nil)
	fx.listingRepo.On("Delete", mock.Anything, int64(5)).Return(nil)
	fx.assetRepo.On("SetListed", mock.Anything, int64(5), false).Return(nil)
	fx.assetRepo.On("UpdateOwner", mock.Anything, int64(5), "buyer").Return(nil)

	_, err := fx.svc.PurchaseAsset(context.Background(), "buyer", 5)

	assert.NoError(t, err)
	fx.transferSvc.AssertNotCalled(t, "Transfer", mock.Anything, "buyer", "treasury", "USDC", mock.Anything)
}

func TestPurchaseAssetRejectsSelfPurchaseAndUnlisted(t *testing.T) {
	fx := newMarketFixture()
	fx.listingRepo.On("GetByTokenID", mock.Anything, int64(5)).
		Return(&domain.Listing{TokenID: 5, Seller: "seller", PaymentToken: "USDC", Price: big.NewInt(100)}, nil)
	fx.listingRepo.On("GetByTokenID", mock.Anything, int64(6)).Return(nil, domain.ErrNotFound)

	_, err := fx.svc.PurchaseAsset(context.Background(), "seller", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = fx.svc.PurchaseAsset(context.Background(), "buyer", 6)
	assert.ErrorIs(t, err, domain.ErrNotListed)
}

func TestPurchaseAssetAbortsWhenBuyerCannotPay(t *testing.T) {
	fx := newMarketFixture()
	fx.listingRepo.On("GetByTokenID", mock.Anything, int64(5)).
		Return(&domain.Listing{TokenID: 5, Seller: "seller", PaymentToken: "USDC", Price: big.NewInt(10000)}, nil)
	fx.assetRepo.On("GetByTokenID", mock.Anything, int64(5)).
		Return(&domain.Asset{TokenID: 5, CategoryID: 1, Owner: "seller", Listed: true}, nil)
	fx.categoryRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Category{ID: 1, Treasury: "treasury", FeeBps: 250}, nil)
	fx.transferSvc.On("Transfer", mock.Anything, "buyer", "treasury", "USDC", big.NewInt(250)).
		Return(domain.ErrInsufficientFunds)

	asset, err := fx.svc.PurchaseAsset(context.Background(), "buyer", 5)

	assert.Nil(t, asset)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	fx.assetRepo.AssertNotCalled(t, "UpdateOwner", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransferDebitsBeforeCredit(t *testing.T) {
	balanceRepo := new(MockBalanceRepo)
	svc := NewTransferService(balanceRepo, "operator")

	balanceRepo.On("Debit", mock.Anything, "alice", "USDC", big.NewInt(100)).Return(nil)
	balanceRepo.On("Credit", mock.Anything, "bob", "USDC", big.NewInt(100)).Return(nil)

	err := svc.Transfer(context.Background(), "alice", "bob", "USDC", big.NewInt(100))

	assert.NoError(t, err)
	balanceRepo.AssertExpectations(t)
}

func TestTransferStopsOnInsufficientFunds(t *testing.T) {
	balanceRepo := new(MockBalanceRepo)
	svc := NewTransferService(balanceRepo, "operator")

	balanceRepo.On("Debit", mock.Anything, "alice", "USDC", big.NewInt(100)).
		Return(domain.ErrInsufficientFunds)

	err := svc.Transfer(context.Background(), "alice", "bob", "USDC", big.NewInt(100))

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	balanceRepo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFundIsOperatorOnly(t *testing.T) {
	balanceRepo := new(MockBalanceRepo)
	svc := NewTransferService(balanceRepo, "operator")

	err := svc.Fund(context.Background(), "stranger", "alice", "USDC", big.NewInt(100))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	balanceRepo.On("Credit", mock.Anything, "alice", "USDC", big.NewInt(100)).Return(nil)
	err = svc.Fund(context.Background(), "operator", "alice", "USDC", big.NewInt(100))
	assert.NoError(t, err)
}
