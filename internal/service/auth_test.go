package service

import (
	"context"
	"testing"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockAccountRepo
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockAccountRepo) GetByAddress(ctx context.Context, address string) (*domain.Account, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func TestSignup(t *testing.T) {
	accountRepo := new(MockAccountRepo)
	svc := NewAuthService(accountRepo, security.NewTokenManager("test-secret", 60))
	ctx := context.Background()

	accountRepo.On("GetByAddress", mock.Anything, "0xabc").Return(nil, domain.ErrNotFound)
	accountRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	account, err := svc.Signup(ctx, "0xabc", "owner@example.com", "long-enough-password")
	assert.NoError(t, err)
	assert.Equal(t, "0xabc", account.Address)
	assert.NotEqual(t, "long-enough-password", account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("long-enough-password")))
}

func TestSignupRejectsShortPasswordAndDuplicates(t *testing.T) {
	accountRepo := new(MockAccountRepo)
	svc := NewAuthService(accountRepo, security.NewTokenManager("test-secret", 60))
	ctx := context.Background()

	_, err := svc.Signup(ctx, "0xabc", "owner@example.com", "short")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	accountRepo.On("GetByAddress", mock.Anything, "0xdup").
		Return(&domain.Account{Address: "0xdup"}, nil)
	_, err = svc.Signup(ctx, "0xdup", "owner@example.com", "long-enough-password")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	accountRepo := new(MockAccountRepo)
	tokens := security.NewTokenManager("test-secret", 60)
	svc := NewAuthService(accountRepo, tokens)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	accountRepo.On("GetByAddress", mock.Anything, "0xabc").
		Return(&domain.Account{Address: "0xabc", Email: "owner@example.com", PasswordHash: string(hash)}, nil)

	token, err := svc.Login(ctx, "0xabc", "correct-password")
	assert.NoError(t, err)

	claims, err := tokens.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "0xabc", claims.Address)

	_, err = svc.Login(ctx, "0xabc", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginUnknownAddress(t *testing.T) {
	accountRepo := new(MockAccountRepo)
	svc := NewAuthService(accountRepo, security.NewTokenManager("test-secret", 60))

	accountRepo.On("GetByAddress", mock.Anything, "0xghost").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), "0xghost", "whatever")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
