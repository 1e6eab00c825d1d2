package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/logger"

	"github.com/google/uuid"
)

// SendClaimableRentNotices emails every asset owner whose claimable rent is
// positive. Failures are logged and skipped; the job never aborts halfway.
func (jr *JobRunner) SendClaimableRentNotices() {
	jr.runWithRecovery("SendClaimableRentNotices", func() {
		ctx := context.Background()

		records, err := jr.store.RentRepository.ListRecords(ctx)
		if err != nil {
			logger.Error("Failed to list rent records", "error", err)
			return
		}

		now := time.Now()
		notified := 0
		for i := range records {
			record := &records[i]
			claimable := record.ClaimableAt(now)
			if claimable.Sign() <= 0 {
				continue
			}

			owner, err := jr.services.Asset.OwnerOf(ctx, record.TokenID)
			if err != nil {
				logger.Warn("Skipping rent notice, owner lookup failed", "token_id", record.TokenID, "error", err)
				continue
			}
			account, err := jr.services.Auth.GetAccount(ctx, owner)
			if errors.Is(err, domain.ErrNotFound) {
				// Owner has no registered account; nothing to notify.
				continue
			}
			if err != nil {
				logger.Warn("Skipping rent notice, account lookup failed", "owner", owner, "error", err)
				continue
			}

			if err := jr.services.Email.SendClaimableRentNotice(ctx, account.Email, record.TokenID, record.RentToken, claimable.String()); err != nil {
				logger.Warn("Failed to send rent notice", "token_id", record.TokenID, "error", err)
				continue
			}
			notified++
		}
		logger.Info("Claimable rent notices sent", "count", notified, "records", len(records))
	})
}

// TakeRentSnapshots persists a per-token view of the vesting state for
// month-end reporting.
func (jr *JobRunner) TakeRentSnapshots() {
	jr.runWithRecovery("TakeRentSnapshots", func() {
		ctx := context.Background()

		records, err := jr.store.RentRepository.ListRecords(ctx)
		if err != nil {
			logger.Error("Failed to list rent records", "error", err)
			return
		}

		now := time.Now().UTC()
		taken := 0
		for i := range records {
			record := &records[i]
			snapshot := &domain.RentSnapshot{
				ID:         uuid.NewString(),
				TokenID:    record.TokenID,
				RentToken:  record.RentToken,
				Claimable:  record.ClaimableAt(now),
				Claimed:    record.ClaimedAmount,
				Depositing: record.DepositAmount,
				TakenOn:    now,
				WindowEnds: record.EndTime,
			}
			if err := jr.store.RentRepository.SaveSnapshot(ctx, snapshot); err != nil {
				logger.Warn("Failed to save rent snapshot", "token_id", record.TokenID, "error", err)
				continue
			}
			taken++
		}
		logger.Info("Rent snapshots taken", "count", taken, "records", len(records))
	})
}
