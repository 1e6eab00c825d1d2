package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/logger"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"

	"github.com/google/uuid"
)

type rentService struct {
	rentRepo     repository.RentRepository
	assetRepo    repository.AssetRepository
	categoryRepo repository.CategoryRepository
	eventRepo    repository.RentEventRepository
	transferSvc  TransferService
	tx           repository.TxManager
	custody      string
	now          func() time.Time
}

func NewRentService(
	rentRepo repository.RentRepository,
	assetRepo repository.AssetRepository,
	categoryRepo repository.CategoryRepository,
	eventRepo repository.RentEventRepository,
	transferSvc TransferService,
	tx repository.TxManager,
	custody string,
) RentService {
	return &rentService{
		rentRepo:     rentRepo,
		assetRepo:    assetRepo,
		categoryRepo: categoryRepo,
		eventRepo:    eventRepo,
		transferSvc:  transferSvc,
		tx:           tx,
		custody:      custody,
		now:          time.Now,
	}
}

// NewRentServiceWithClock is NewRentService with an injected clock, for
// tests that need to move time across a vesting window.
func NewRentServiceWithClock(
	rentRepo repository.RentRepository,
	assetRepo repository.AssetRepository,
	categoryRepo repository.CategoryRepository,
	eventRepo repository.RentEventRepository,
	transferSvc TransferService,
	tx repository.TxManager,
	custody string,
	now func() time.Time,
) RentService {
	svc := NewRentService(rentRepo, assetRepo, categoryRepo, eventRepo, transferSvc, tx, custody).(*rentService)
	svc.now = now
	return svc
}

// Deposit pulls amount of rentToken from the caller into custody and merges
// it into the token's vesting record. Whatever had vested under the old
// window but was never claimed is carried forward as immediately claimable;
// the unvested remainder joins the new deposit in a fresh window starting
// now and ending at endTime. The pull and the record mutation share one
// transaction, so a failed transfer leaves no trace.
func (s *rentService) Deposit(ctx context.Context, caller string, tokenID int64, rentToken string, amount *big.Int, endTime time.Time) error {
	logger.EnterMethod("RentService.Deposit", "caller", caller, "token_id", tokenID, "rent_token", rentToken)

	if rentToken == "" {
		return fmt.Errorf("%w: rent token is required", domain.ErrInvalidArgument)
	}
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("%w: deposit amount must be positive", domain.ErrInvalidArgument)
	}
	now := s.now()
	if !endTime.After(now) {
		return fmt.Errorf("%w: end time must be in the future", domain.ErrInvalidArgument)
	}

	asset, err := s.assetRepo.GetByTokenID(ctx, tokenID)
	if err != nil {
		return err
	}
	category, err := s.categoryRepo.GetByID(ctx, asset.CategoryID)
	if err != nil {
		return err
	}
	if caller != category.Depositor {
		return fmt.Errorf("%w: caller is not the rent depositor", domain.ErrUnauthorized)
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		record, err := s.rentRepo.GetRecord(ctx, tokenID)
		if errors.Is(err, domain.ErrNotFound) {
			record = domain.NewRentRecord(tokenID)
		} else if err != nil {
			return err
		}
		if record.RentToken != "" && record.RentToken != rentToken {
			return fmt.Errorf("%w: rent for token %d is denominated in %s", domain.ErrRentTokenMismatch, tokenID, record.RentToken)
		}

		if err := s.transferSvc.Transfer(ctx, caller, s.custody, rentToken, amount); err != nil {
			return fmt.Errorf("pull deposit: %w", err)
		}

		vested := record.VestedAt(now)
		unvested := new(big.Int).Sub(record.DepositAmount, vested)
		carried := new(big.Int).Sub(vested, record.ClaimedAmount)

		record.RentToken = rentToken
		record.UnclaimedAmount = new(big.Int).Add(record.UnclaimedAmount, carried)
		record.ClaimedAmount = big.NewInt(0)
		record.DepositAmount = unvested.Add(unvested, amount)
		record.DepositTime = now
		record.EndTime = endTime

		if err := s.rentRepo.SaveRecord(ctx, record); err != nil {
			return err
		}
		return s.eventRepo.Create(ctx, &domain.RentEvent{
			ID:        uuid.NewString(),
			Kind:      domain.RentEventDeposit,
			TokenID:   tokenID,
			Actor:     caller,
			RentToken: rentToken,
			Amount:    new(big.Int).Set(amount),
		})
	})
	if err != nil {
		logger.ExitMethodWithError("RentService.Deposit", err, "token_id", tokenID)
		return err
	}
	logger.ExitMethod("RentService.Deposit", "token_id", tokenID, "amount", amount.String())
	return nil
}

func (s *rentService) ClaimableRentForToken(ctx context.Context, tokenID int64) (*big.Int, error) {
	record, err := s.rentRepo.GetRecord(ctx, tokenID)
	if errors.Is(err, domain.ErrNotFound) {
		return big.NewInt(0), nil
	}
	if err != nil {
		return nil, err
	}
	return record.ClaimableAt(s.now()), nil
}

// ClaimRentForToken pays the token's current owner the full claimable
// amount. Ownership is checked against the asset registry at call time,
// never cached. Carried-over unclaimed value is drawn down before the
// currently vesting pool is charged, so the record keeps an exact split
// between the two pools. Returns the amount paid out.
func (s *rentService) ClaimRentForToken(ctx context.Context, caller string, tokenID int64) (*big.Int, error) {
	logger.EnterMethod("RentService.ClaimRentForToken", "caller", caller, "token_id", tokenID)

	asset, err := s.assetRepo.GetByTokenID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if asset.Owner != caller {
		return nil, fmt.Errorf("%w: only the asset owner may claim rent", domain.ErrUnauthorized)
	}

	var paid *big.Int
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		record, err := s.rentRepo.GetRecord(ctx, tokenID)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: no rent deposited for token %d", domain.ErrNothingToClaim, tokenID)
		}
		if err != nil {
			return err
		}

		claimable := record.ClaimableAt(s.now())
		if claimable.Sign() <= 0 {
			return fmt.Errorf("%w: token %d", domain.ErrNothingToClaim, tokenID)
		}

		if record.UnclaimedAmount.Sign() > 0 {
			if record.UnclaimedAmount.Cmp(claimable) >= 0 {
				record.UnclaimedAmount = new(big.Int).Sub(record.UnclaimedAmount, claimable)
			} else {
				rest := new(big.Int).Sub(claimable, record.UnclaimedAmount)
				record.ClaimedAmount = new(big.Int).Add(record.ClaimedAmount, rest)
				record.UnclaimedAmount = big.NewInt(0)
			}
		} else {
			record.ClaimedAmount = new(big.Int).Add(record.ClaimedAmount, claimable)
		}

		if err := s.rentRepo.SaveRecord(ctx, record); err != nil {
			return err
		}
		if err := s.transferSvc.Transfer(ctx, s.custody, caller, record.RentToken, claimable); err != nil {
			return fmt.Errorf("push claim: %w", err)
		}
		if err := s.eventRepo.Create(ctx, &domain.RentEvent{
			ID:        uuid.NewString(),
			Kind:      domain.RentEventClaim,
			TokenID:   tokenID,
			Actor:     caller,
			RentToken: record.RentToken,
			Amount:    claimable,
		}); err != nil {
			return err
		}
		paid = claimable
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("RentService.ClaimRentForToken", err, "token_id", tokenID)
		return nil, err
	}
	logger.ExitMethod("RentService.ClaimRentForToken", "token_id", tokenID, "amount", paid.String())
	return paid, nil
}

func (s *rentService) UpdateDepositor(ctx context.Context, caller string, categoryID int64, newDepositor string) error {
	if newDepositor == "" {
		return fmt.Errorf("%w: depositor address must not be empty", domain.ErrInvalidArgument)
	}
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if caller != category.Admin {
		return fmt.Errorf("%w: only the category admin may update the depositor", domain.ErrUnauthorized)
	}
	return s.categoryRepo.UpdateDepositor(ctx, categoryID, newDepositor)
}

func (s *rentService) GetRentRecord(ctx context.Context, tokenID int64) (*domain.RentRecord, error) {
	record, err := s.rentRepo.GetRecord(ctx, tokenID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewRentRecord(tokenID), nil
	}
	return record, err
}

func (s *rentService) ListRentEvents(ctx context.Context, tokenID int64, page, pageSize int32) ([]domain.RentEvent, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.eventRepo.ListByToken(ctx, tokenID, pageSize, (page-1)*pageSize)
}
