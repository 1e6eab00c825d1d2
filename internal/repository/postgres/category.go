package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"
)

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO categories (name, admin, treasury, depositor, fee_bps, created_on)
	          VALUES ($1, $2, $3, $4, $5, now()) RETURNING id`
	return conn(ctx, r.db).QueryRowContext(ctx, query,
		category.Name, category.Admin, category.Treasury, category.Depositor, category.FeeBps).Scan(&category.ID)
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `SELECT id, name, admin, treasury, depositor, fee_bps, created_on
	          FROM categories WHERE id = $1`
	var category domain.Category
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(
		&category.ID, &category.Name, &category.Admin, &category.Treasury,
		&category.Depositor, &category.FeeBps, &category.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) UpdateDepositor(ctx context.Context, categoryID int64, depositor string) error {
	query := `UPDATE categories SET depositor = $2 WHERE id = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, categoryID, depositor)
	if err != nil {
		return err
	}
	return requireRow(res)
}
