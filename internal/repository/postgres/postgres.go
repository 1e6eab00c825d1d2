package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"

	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AccountRepository
	repository.CategoryRepository
	repository.AssetRepository
	repository.RentRepository
	repository.BalanceRepository
	repository.ListingRepository
	repository.PriceRepository
	repository.RentEventRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		AccountRepository:   NewAccountRepository(db),
		CategoryRepository:  NewCategoryRepository(db),
		AssetRepository:     NewAssetRepository(db),
		RentRepository:      NewRentRepository(db),
		BalanceRepository:   NewBalanceRepository(db),
		ListingRepository:   NewListingRepository(db),
		PriceRepository:     NewPriceRepository(db),
		RentEventRepository: NewRentEventRepository(db),
	}
}

type txKey struct{}

// WithinTx begins a transaction, stores it in the context and runs fn.
// Repositories pick the transaction out of the context, so everything fn
// does through this store commits or rolls back as one unit.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (after: %w)", rbErr, err)
		}
		return err
	}
	return tx.Commit()
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// conn returns the transaction carried by the context, if any, and the
// plain connection pool otherwise.
func conn(ctx context.Context, db *sql.DB) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

// parseNumeric converts a NUMERIC column scanned as text into a big.Int.
func parseNumeric(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("malformed numeric value %q", s)
	}
	return n, nil
}
