package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"
)

type assetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) repository.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	query := `INSERT INTO assets (category_id, owner, listed, created_on, updated_on)
	          VALUES ($1, $2, false, now(), now()) RETURNING token_id`
	return conn(ctx, r.db).QueryRowContext(ctx, query, asset.CategoryID, asset.Owner).Scan(&asset.TokenID)
}

func (r *assetRepository) GetByTokenID(ctx context.Context, tokenID int64) (*domain.Asset, error) {
	query := `SELECT token_id, category_id, owner, listed, created_on, updated_on
	          FROM assets WHERE token_id = $1`
	var asset domain.Asset
	err := conn(ctx, r.db).QueryRowContext(ctx, query, tokenID).Scan(
		&asset.TokenID, &asset.CategoryID, &asset.Owner, &asset.Listed, &asset.CreatedOn, &asset.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) UpdateOwner(ctx context.Context, tokenID int64, owner string) error {
	query := `UPDATE assets SET owner = $2, updated_on = now() WHERE token_id = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, tokenID, owner)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *assetRepository) SetListed(ctx context.Context, tokenID int64, listed bool) error {
	query := `UPDATE assets SET listed = $2, updated_on = now() WHERE token_id = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, tokenID, listed)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *assetRepository) ListByOwner(ctx context.Context, owner string) ([]domain.Asset, error) {
	query := `SELECT token_id, category_id, owner, listed, created_on, updated_on
	          FROM assets WHERE owner = $1 ORDER BY token_id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		var asset domain.Asset
		if err := rows.Scan(&asset.TokenID, &asset.CategoryID, &asset.Owner, &asset.Listed,
			&asset.CreatedOn, &asset.UpdatedOn); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

// requireRow maps zero affected rows onto ErrNotFound.
func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
