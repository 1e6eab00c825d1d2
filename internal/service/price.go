package service

import (
	"context"
	"fmt"
	"math/big"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"
)

type priceService struct {
	priceRepo    repository.PriceRepository
	assetRepo    repository.AssetRepository
	categoryRepo repository.CategoryRepository
}

func NewPriceService(priceRepo repository.PriceRepository, assetRepo repository.AssetRepository, categoryRepo repository.CategoryRepository) PriceService {
	return &priceService{priceRepo: priceRepo, assetRepo: assetRepo, categoryRepo: categoryRepo}
}

func (s *priceService) SetPrice(ctx context.Context, caller string, tokenID int64, paymentToken string, price *big.Int) error {
	if paymentToken == "" {
		return fmt.Errorf("%w: payment token is required", domain.ErrInvalidArgument)
	}
	if price == nil || price.Sign() < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidArgument)
	}
	asset, err := s.assetRepo.GetByTokenID(ctx, tokenID)
	if err != nil {
		return err
	}
	category, err := s.categoryRepo.GetByID(ctx, asset.CategoryID)
	if err != nil {
		return err
	}
	if caller != category.Admin {
		return fmt.Errorf("%w: only the category admin may set prices", domain.ErrUnauthorized)
	}
	return s.priceRepo.Upsert(ctx, &domain.AssetPrice{
		TokenID:      tokenID,
		PaymentToken: paymentToken,
		Price:        new(big.Int).Set(price),
	})
}

// PricesForTokens is a batched lookup; tokens without a stored price are
// simply absent from the result.
func (s *priceService) PricesForTokens(ctx context.Context, tokenIDs []int64) ([]domain.AssetPrice, error) {
	if len(tokenIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one token id is required", domain.ErrInvalidArgument)
	}
	if len(tokenIDs) > 200 {
		return nil, fmt.Errorf("%w: at most 200 token ids per lookup", domain.ErrInvalidArgument)
	}
	return s.priceRepo.GetByTokenIDs(ctx, tokenIDs)
}
