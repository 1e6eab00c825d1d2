package service

import (
	"context"
	"fmt"
	"math/big"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/logger"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"
)

type transferService struct {
	balanceRepo repository.BalanceRepository
	operator    string
}

func NewTransferService(balanceRepo repository.BalanceRepository, operator string) TransferService {
	return &transferService{balanceRepo: balanceRepo, operator: operator}
}

// Transfer moves amount of token from one address to another. The debit
// runs first and carries the insufficient-funds guard; callers are expected
// to run inside a transaction so a failed debit leaves the credit unapplied.
func (s *transferService) Transfer(ctx context.Context, from, to, token string, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("%w: transfer amount must be positive", domain.ErrInvalidArgument)
	}
	if from == "" || to == "" {
		return fmt.Errorf("%w: transfer endpoints must not be empty", domain.ErrInvalidArgument)
	}
	if err := s.balanceRepo.Debit(ctx, from, token, amount); err != nil {
		return fmt.Errorf("debit %s: %w", from, err)
	}
	if err := s.balanceRepo.Credit(ctx, to, token, amount); err != nil {
		return fmt.Errorf("credit %s: %w", to, err)
	}
	logger.Debug("Value transferred", "from", from, "to", to, "token", token, "amount", amount.String())
	return nil
}

func (s *transferService) BalanceOf(ctx context.Context, address, token string) (*big.Int, error) {
	return s.balanceRepo.GetBalance(ctx, address, token)
}

func (s *transferService) Fund(ctx context.Context, caller, to, token string, amount *big.Int) error {
	if caller != s.operator {
		return fmt.Errorf("%w: only the operator may fund balances", domain.ErrUnauthorized)
	}
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("%w: fund amount must be positive", domain.ErrInvalidArgument)
	}
	return s.balanceRepo.Credit(ctx, to, token, amount)
}
