package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"
)

type listingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	query := `INSERT INTO listings (token_id, seller, payment_token, price, created_on)
	          VALUES ($1, $2, $3, $4, now())`
	_, err := conn(ctx, r.db).ExecContext(ctx, query,
		listing.TokenID, listing.Seller, listing.PaymentToken, listing.Price.String())
	return err
}

func (r *listingRepository) GetByTokenID(ctx context.Context, tokenID int64) (*domain.Listing, error) {
	query := `SELECT token_id, seller, payment_token, price::text, created_on
	          FROM listings WHERE token_id = $1`
	var (
		listing  domain.Listing
		priceStr string
	)
	err := conn(ctx, r.db).QueryRowContext(ctx, query, tokenID).Scan(
		&listing.TokenID, &listing.Seller, &listing.PaymentToken, &priceStr, &listing.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if listing.Price, err = parseNumeric(priceStr); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) Delete(ctx context.Context, tokenID int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM listings WHERE token_id = $1`, tokenID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
