package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `INSERT INTO accounts (address, email, password_hash, created_on)
	          VALUES ($1, $2, $3, now())`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, account.Address, account.Email, account.PasswordHash)
	return err
}

func (r *accountRepository) GetByAddress(ctx context.Context, address string) (*domain.Account, error) {
	query := `SELECT address, email, password_hash, created_on FROM accounts WHERE address = $1`
	var account domain.Account
	err := conn(ctx, r.db).QueryRowContext(ctx, query, address).Scan(
		&account.Address, &account.Email, &account.PasswordHash, &account.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
