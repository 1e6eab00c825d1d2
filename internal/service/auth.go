package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"
	"github.com/TangibleTNFT/tangible-marketplace/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	accountRepo repository.AccountRepository
	tokens      security.TokenManager
}

func NewAuthService(accountRepo repository.AccountRepository, tokens security.TokenManager) AuthService {
	return &authService{accountRepo: accountRepo, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, address, email, password string) (*domain.Account, error) {
	if address == "" || email == "" {
		return nil, fmt.Errorf("%w: address and email are required", domain.ErrInvalidArgument)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidArgument)
	}
	if _, err := s.accountRepo.GetByAddress(ctx, address); err == nil {
		return nil, fmt.Errorf("%w: address already registered", domain.ErrInvalidArgument)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	account := &domain.Account{Address: address, Email: email, PasswordHash: string(hash)}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *authService) Login(ctx context.Context, address, password string) (string, error) {
	account, err := s.accountRepo.GetByAddress(ctx, address)
	if errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("%w: unknown address", domain.ErrUnauthorized)
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", fmt.Errorf("%w: bad credentials", domain.ErrUnauthorized)
	}
	return s.tokens.GenerateAccessToken(account.Address, account.Email)
}

func (s *authService) GetAccount(ctx context.Context, address string) (*domain.Account, error) {
	return s.accountRepo.GetByAddress(ctx, address)
}
