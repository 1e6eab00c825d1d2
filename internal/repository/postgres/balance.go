package postgres

import (
	"context"
	"database/sql"
	"math/big"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"
)

type balanceRepository struct {
	db *sql.DB
}

func NewBalanceRepository(db *sql.DB) repository.BalanceRepository {
	return &balanceRepository{db: db}
}

func (r *balanceRepository) GetBalance(ctx context.Context, address, token string) (*big.Int, error) {
	query := `SELECT COALESCE((SELECT balance::text FROM balances WHERE address = $1 AND token = $2), '0')`
	var balanceStr string
	if err := conn(ctx, r.db).QueryRowContext(ctx, query, address, token).Scan(&balanceStr); err != nil {
		return nil, err
	}
	return parseNumeric(balanceStr)
}

func (r *balanceRepository) Credit(ctx context.Context, address, token string, amount *big.Int) error {
	query := `INSERT INTO balances (address, token, balance) VALUES ($1, $2, $3)
	          ON CONFLICT (address, token) DO UPDATE SET balance = balances.balance + EXCLUDED.balance`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, address, token, amount.String())
	return err
}

// Debit decrements the balance only when it covers the amount; the guard in
// the WHERE clause is what turns an overdraft into ErrInsufficientFunds.
func (r *balanceRepository) Debit(ctx context.Context, address, token string, amount *big.Int) error {
	query := `UPDATE balances SET balance = balance - $3
	          WHERE address = $1 AND token = $2 AND balance >= $3`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, address, token, amount.String())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}
