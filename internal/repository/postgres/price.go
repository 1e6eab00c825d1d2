package postgres

import (
	"context"
	"database/sql"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"

	"github.com/lib/pq"
)

type priceRepository struct {
	db *sql.DB
}

func NewPriceRepository(db *sql.DB) repository.PriceRepository {
	return &priceRepository{db: db}
}

func (r *priceRepository) Upsert(ctx context.Context, price *domain.AssetPrice) error {
	query := `INSERT INTO asset_prices (token_id, payment_token, price, updated_on)
	          VALUES ($1, $2, $3, now())
	          ON CONFLICT (token_id) DO UPDATE SET
	            payment_token = EXCLUDED.payment_token,
	            price = EXCLUDED.price,
	            updated_on = now()`
	_, err := conn(ctx, r.db).ExecContext(ctx, query, price.TokenID, price.PaymentToken, price.Price.String())
	return err
}

func (r *priceRepository) GetByTokenIDs(ctx context.Context, tokenIDs []int64) ([]domain.AssetPrice, error) {
	query := `SELECT token_id, payment_token, price::text, updated_on
	          FROM asset_prices WHERE token_id = ANY($1) ORDER BY token_id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, pq.Array(tokenIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []domain.AssetPrice
	for rows.Next() {
		var (
			price    domain.AssetPrice
			priceStr string
		)
		if err := rows.Scan(&price.TokenID, &price.PaymentToken, &priceStr, &price.UpdatedOn); err != nil {
			return nil, err
		}
		if price.Price, err = parseNumeric(priceStr); err != nil {
			return nil, err
		}
		prices = append(prices, price)
	}
	return prices, rows.Err()
}
