package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"
)

type rentRepository struct {
	db *sql.DB
}

func NewRentRepository(db *sql.DB) repository.RentRepository {
	return &rentRepository{db: db}
}

func (r *rentRepository) GetRecord(ctx context.Context, tokenID int64) (*domain.RentRecord, error) {
	query := `SELECT token_id, rent_token, deposit_amount::text, claimed_amount::text, unclaimed_amount::text, deposit_time, end_time
	          FROM rent_records WHERE token_id = $1`
	var (
		record                          domain.RentRecord
		depositStr, claimedStr, unclStr string
		depositTime, endTime            sql.NullTime
	)
	err := conn(ctx, r.db).QueryRowContext(ctx, query, tokenID).Scan(
		&record.TokenID, &record.RentToken, &depositStr, &claimedStr, &unclStr, &depositTime, &endTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if record.DepositAmount, err = parseNumeric(depositStr); err != nil {
		return nil, err
	}
	if record.ClaimedAmount, err = parseNumeric(claimedStr); err != nil {
		return nil, err
	}
	if record.UnclaimedAmount, err = parseNumeric(unclStr); err != nil {
		return nil, err
	}
	if depositTime.Valid {
		record.DepositTime = depositTime.Time
	}
	if endTime.Valid {
		record.EndTime = endTime.Time
	}
	return &record, nil
}

func (r *rentRepository) SaveRecord(ctx context.Context, record *domain.RentRecord) error {
	query := `INSERT INTO rent_records (token_id, rent_token, deposit_amount, claimed_amount, unclaimed_amount, deposit_time, end_time)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (token_id) DO UPDATE SET
	            rent_token = EXCLUDED.rent_token,
	            deposit_amount = EXCLUDED.deposit_amount,
	            claimed_amount = EXCLUDED.claimed_amount,
	            unclaimed_amount = EXCLUDED.unclaimed_amount,
	            deposit_time = EXCLUDED.deposit_time,
	            end_time = EXCLUDED.end_time`
	_, err := conn(ctx, r.db).ExecContext(ctx, query,
		record.TokenID, record.RentToken,
		record.DepositAmount.String(), record.ClaimedAmount.String(), record.UnclaimedAmount.String(),
		record.DepositTime, record.EndTime)
	return err
}

func (r *rentRepository) ListRecords(ctx context.Context) ([]domain.RentRecord, error) {
	query := `SELECT token_id, rent_token, deposit_amount::text, claimed_amount::text, unclaimed_amount::text, deposit_time, end_time
	          FROM rent_records ORDER BY token_id`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.RentRecord
	for rows.Next() {
		var (
			record                          domain.RentRecord
			depositStr, claimedStr, unclStr string
		)
		if err := rows.Scan(&record.TokenID, &record.RentToken, &depositStr, &claimedStr, &unclStr,
			&record.DepositTime, &record.EndTime); err != nil {
			return nil, err
		}
		if record.DepositAmount, err = parseNumeric(depositStr); err != nil {
			return nil, err
		}
		if record.ClaimedAmount, err = parseNumeric(claimedStr); err != nil {
			return nil, err
		}
		if record.UnclaimedAmount, err = parseNumeric(unclStr); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *rentRepository) SaveSnapshot(ctx context.Context, snapshot *domain.RentSnapshot) error {
	query := `INSERT INTO rent_snapshots (id, token_id, rent_token, claimable, claimed, depositing, taken_on, window_ends)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	takenOn := snapshot.TakenOn
	if takenOn.IsZero() {
		takenOn = time.Now().UTC()
	}
	_, err := conn(ctx, r.db).ExecContext(ctx, query,
		snapshot.ID, snapshot.TokenID, snapshot.RentToken,
		snapshot.Claimable.String(), snapshot.Claimed.String(), snapshot.Depositing.String(),
		takenOn, snapshot.WindowEnds)
	return err
}
