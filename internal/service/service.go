package service

import (
	"context"
	"math/big"
	"time"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
)

// Caller identity is always an explicit parameter. The HTTP layer resolves
// it from the access token; services never read it from ambient state.

type RentService interface {
	Deposit(ctx context.Context, caller string, tokenID int64, rentToken string, amount *big.Int, endTime time.Time) error
	ClaimableRentForToken(ctx context.Context, tokenID int64) (*big.Int, error)
	ClaimRentForToken(ctx context.Context, caller string, tokenID int64) (*big.Int, error)
	UpdateDepositor(ctx context.Context, caller string, categoryID int64, newDepositor string) error
	GetRentRecord(ctx context.Context, tokenID int64) (*domain.RentRecord, error)
	ListRentEvents(ctx context.Context, tokenID int64, page, pageSize int32) ([]domain.RentEvent, int32, error)
}

type TransferService interface {
	Transfer(ctx context.Context, from, to, token string, amount *big.Int) error
	BalanceOf(ctx context.Context, address, token string) (*big.Int, error)
	// Fund credits an address out of thin air. Operator-only; stands in
	// for on-ramp deposits, which are outside this system.
	Fund(ctx context.Context, caller, to, token string, amount *big.Int) error
}

type AssetService interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	MintAsset(ctx context.Context, caller string, categoryID int64, owner string) (*domain.Asset, error)
	TransferAsset(ctx context.Context, caller string, tokenID int64, newOwner string) error
	GetAsset(ctx context.Context, tokenID int64) (*domain.Asset, error)
	OwnerOf(ctx context.Context, tokenID int64) (string, error)
	ListAssetsByOwner(ctx context.Context, owner string) ([]domain.Asset, error)
}

type MarketplaceService interface {
	ListAsset(ctx context.Context, caller string, tokenID int64, paymentToken string, price *big.Int) (*domain.Listing, error)
	DelistAsset(ctx context.Context, caller string, tokenID int64) error
	PurchaseAsset(ctx context.Context, caller string, tokenID int64) (*domain.Asset, error)
	GetListing(ctx context.Context, tokenID int64) (*domain.Listing, error)
}

type PriceService interface {
	SetPrice(ctx context.Context, caller string, tokenID int64, paymentToken string, price *big.Int) error
	PricesForTokens(ctx context.Context, tokenIDs []int64) ([]domain.AssetPrice, error)
}

type AuthService interface {
	Signup(ctx context.Context, address, email, password string) (*domain.Account, error)
	Login(ctx context.Context, address, password string) (string, error) // access token
	GetAccount(ctx context.Context, address string) (*domain.Account, error)
}

type EmailService interface {
	SendClaimableRentNotice(ctx context.Context, email string, tokenID int64, rentToken, amount string) error
}
