package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/logger"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"
)

type marketplaceService struct {
	listingRepo  repository.ListingRepository
	assetRepo    repository.AssetRepository
	categoryRepo repository.CategoryRepository
	transferSvc  TransferService
	tx           repository.TxManager
}

func NewMarketplaceService(
	listingRepo repository.ListingRepository,
	assetRepo repository.AssetRepository,
	categoryRepo repository.CategoryRepository,
	transferSvc TransferService,
	tx repository.TxManager,
) MarketplaceService {
	return &marketplaceService{
		listingRepo:  listingRepo,
		assetRepo:    assetRepo,
		categoryRepo: categoryRepo,
		transferSvc:  transferSvc,
		tx:           tx,
	}
}

func (s *marketplaceService) ListAsset(ctx context.Context, caller string, tokenID int64, paymentToken string, price *big.Int) (*domain.Listing, error) {
	if paymentToken == "" {
		return nil, fmt.Errorf("%w: payment token is required", domain.ErrInvalidArgument)
	}
	if price == nil || price.Sign() <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrInvalidArgument)
	}
	asset, err := s.assetRepo.GetByTokenID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if asset.Owner != caller {
		return nil, fmt.Errorf("%w: only the owner may list the asset", domain.ErrUnauthorized)
	}
	if asset.Listed {
		return nil, fmt.Errorf("%w: token %d", domain.ErrAlreadyListed, tokenID)
	}

	listing := &domain.Listing{
		TokenID:      tokenID,
		Seller:       caller,
		PaymentToken: paymentToken,
		Price:        new(big.Int).Set(price),
	}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.listingRepo.Create(ctx, listing); err != nil {
			return err
		}
		return s.assetRepo.SetListed(ctx, tokenID, true)
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *marketplaceService) DelistAsset(ctx context.Context, caller string, tokenID int64) error {
	listing, err := s.listingRepo.GetByTokenID(ctx, tokenID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: token %d", domain.ErrNotListed, tokenID)
	}
	if err != nil {
		return err
	}
	if listing.Seller != caller {
		return fmt.Errorf("%w: only the seller may delist", domain.ErrUnauthorized)
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.listingRepo.Delete(ctx, tokenID); err != nil {
			return err
		}
		return s.assetRepo.SetListed(ctx, tokenID, false)
	})
}

// PurchaseAsset settles a listing: the buyer pays the full price, the
// category fee goes to the treasury, the seller receives the remainder and
// ownership moves to the buyer. One transaction end to end.
func (s *marketplaceService) PurchaseAsset(ctx context.Context, caller string, tokenID int64) (*domain.Asset, error) {
	listing, err := s.listingRepo.GetByTokenID(ctx, tokenID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: token %d", domain.ErrNotListed, tokenID)
	}
	if err != nil {
		return nil, err
	}
	if listing.Seller == caller {
		return nil, fmt.Errorf("%w: seller cannot buy their own listing", domain.ErrInvalidArgument)
	}
	asset, err := s.assetRepo.GetByTokenID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.GetByID(ctx, asset.CategoryID)
	if err != nil {
		return nil, err
	}

	fee := new(big.Int).Mul(listing.Price, big.NewInt(int64(category.FeeBps)))
	fee.Quo(fee, big.NewInt(10000))
	sellerProceeds := new(big.Int).Sub(listing.Price, fee)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if fee.Sign() > 0 {
			if err := s.transferSvc.Transfer(ctx, caller, category.Treasury, listing.PaymentToken, fee); err != nil {
				return fmt.Errorf("collect fee: %w", err)
			}
		}
		if err := s.transferSvc.Transfer(ctx, caller, listing.Seller, listing.PaymentToken, sellerProceeds); err != nil {
			return fmt.Errorf("pay seller: %w", err)
		}
		if err := s.listingRepo.Delete(ctx, tokenID); err != nil {
			return err
		}
		if err := s.assetRepo.SetListed(ctx, tokenID, false); err != nil {
			return err
		}
		return s.assetRepo.UpdateOwner(ctx, tokenID, caller)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Asset purchased", "token_id", tokenID, "buyer", caller, "seller", listing.Seller,
		"price", listing.Price.String(), "fee", fee.String())
	asset.Owner = caller
	asset.Listed = false
	return asset, nil
}

func (s *marketplaceService) GetListing(ctx context.Context, tokenID int64) (*domain.Listing, error) {
	return s.listingRepo.GetByTokenID(ctx, tokenID)
}
