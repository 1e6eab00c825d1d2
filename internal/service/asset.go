package service

import (
	"context"
	"fmt"

	"github.com/TangibleTNFT/tangible-marketplace/internal/domain"
	"github.com/TangibleTNFT/tangible-marketplace/internal/repository"
)

type assetService struct {
	assetRepo    repository.AssetRepository
	categoryRepo repository.CategoryRepository
}

func NewAssetService(assetRepo repository.AssetRepository, categoryRepo repository.CategoryRepository) AssetService {
	return &assetService{assetRepo: assetRepo, categoryRepo: categoryRepo}
}

func (s *assetService) CreateCategory(ctx context.Context, category *domain.Category) error {
	if category.Name == "" {
		return fmt.Errorf("%w: category name is required", domain.ErrInvalidArgument)
	}
	if category.Admin == "" || category.Treasury == "" || category.Depositor == "" {
		return fmt.Errorf("%w: category admin, treasury and depositor are required", domain.ErrInvalidArgument)
	}
	if category.FeeBps < 0 || category.FeeBps > 10000 {
		return fmt.Errorf("%w: fee must be between 0 and 10000 basis points", domain.ErrInvalidArgument)
	}
	return s.categoryRepo.Create(ctx, category)
}

func (s *assetService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *assetService) MintAsset(ctx context.Context, caller string, categoryID int64, owner string) (*domain.Asset, error) {
	if owner == "" {
		return nil, fmt.Errorf("%w: owner address is required", domain.ErrInvalidArgument)
	}
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if caller != category.Admin {
		return nil, fmt.Errorf("%w: only the category admin may mint assets", domain.ErrUnauthorized)
	}
	asset := &domain.Asset{CategoryID: categoryID, Owner: owner}
	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *assetService) TransferAsset(ctx context.Context, caller string, tokenID int64, newOwner string) error {
	if newOwner == "" {
		return fmt.Errorf("%w: new owner address is required", domain.ErrInvalidArgument)
	}
	asset, err := s.assetRepo.GetByTokenID(ctx, tokenID)
	if err != nil {
		return err
	}
	if asset.Owner != caller {
		return fmt.Errorf("%w: only the owner may transfer the asset", domain.ErrUnauthorized)
	}
	if asset.Listed {
		return fmt.Errorf("%w: delist the asset before transferring it", domain.ErrAlreadyListed)
	}
	return s.assetRepo.UpdateOwner(ctx, tokenID, newOwner)
}

func (s *assetService) GetAsset(ctx context.Context, tokenID int64) (*domain.Asset, error) {
	return s.assetRepo.GetByTokenID(ctx, tokenID)
}

func (s *assetService) OwnerOf(ctx context.Context, tokenID int64) (string, error) {
	asset, err := s.assetRepo.GetByTokenID(ctx, tokenID)
	if err != nil {
		return "", err
	}
	return asset.Owner, nil
}

func (s *assetService) ListAssetsByOwner(ctx context.Context, owner string) ([]domain.Asset, error) {
	return s.assetRepo.ListByOwner(ctx, owner)
}
