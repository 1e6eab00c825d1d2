package postgres

import (
	"context"
	"database/sql"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"
)

type rentEventRepository struct {
	db *sql.DB
}

func NewRentEventRepository(db *sql.DB) repository.RentEventRepository {
	return &rentEventRepository{db: db}
}

func (r *rentEventRepository) Create(ctx context.Context, event *domain.RentEvent) error {
	query := `INSERT INTO rent_events (id, kind, token_id, actor, rent_token, amount, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err := conn(ctx, r.db).ExecContext(ctx, query,
		event.ID, event.Kind, event.TokenID, event.Actor, event.RentToken, event.Amount.String())
	return err
}

func (r *rentEventRepository) ListByToken(ctx context.Context, tokenID int64, limit, offset int32) ([]domain.RentEvent, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM rent_events WHERE token_id = $1`
	if err := conn(ctx, r.db).QueryRowContext(ctx, countQuery, tokenID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, kind, token_id, actor, rent_token, amount::text, created_on
	          FROM rent_events WHERE token_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, tokenID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var events []domain.RentEvent
	for rows.Next() {
		var (
			event     domain.RentEvent
			amountStr string
		)
		if err := rows.Scan(&event.ID, &event.Kind, &event.TokenID, &event.Actor,
			&event.RentToken, &amountStr, &event.CreatedOn); err != nil {
			return nil, 0, err
		}
		if event.Amount, err = parseNumeric(amountStr); err != nil {
			return nil, 0, err
		}
		events = append(events, event)
	}
	return events, count, rows.Err()
}
