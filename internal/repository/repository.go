package repository

import (
	"context"
	"math/big"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
)

// TxManager runs a function inside a single database transaction. Every
// mutating service operation goes through it so that value movement and
// record mutation commit or roll back together.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByAddress(ctx context.Context, address string) (*domain.Account, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	UpdateDepositor(ctx context.Context, categoryID int64, depositor string) error
}

type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	GetByTokenID(ctx context.Context, tokenID int64) (*domain.Asset, error)
	UpdateOwner(ctx context.Context, tokenID int64, owner string) error
	SetListed(ctx context.Context, tokenID int64, listed bool) error
	ListByOwner(ctx context.Context, owner string) ([]domain.Asset, error)
}

type RentRepository interface {
	// GetRecord returns domain.ErrNotFound for tokens that have never
	// received a deposit; callers start from a zero-valued record.
	GetRecord(ctx context.Context, tokenID int64) (*domain.RentRecord, error)
	SaveRecord(ctx context.Context, record *domain.RentRecord) error
	ListRecords(ctx context.Context) ([]domain.RentRecord, error)
	SaveSnapshot(ctx context.Context, snapshot *domain.RentSnapshot) error
}

type BalanceRepository interface {
	GetBalance(ctx context.Context, address, token string) (*big.Int, error)
	Credit(ctx context.Context, address, token string, amount *big.Int) error
	// Debit fails with domain.ErrInsufficientFunds when the balance does
	// not cover the amount.
	Debit(ctx context.Context, address, token string, amount *big.Int) error
}

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByTokenID(ctx context.Context, tokenID int64) (*domain.Listing, error)
	Delete(ctx context.Context, tokenID int64) error
}

type PriceRepository interface {
	Upsert(ctx context.Context, price *domain.AssetPrice) error
	GetByTokenIDs(ctx context.Context, tokenIDs []int64) ([]domain.AssetPrice, error)
}

type RentEventRepository interface {
	Create(ctx context.Context, event *domain.RentEvent) error
	ListByToken(ctx context.Context, tokenID int64, limit, offset int32) ([]domain.RentEvent, int32, error)
}
