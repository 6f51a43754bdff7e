package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/agrolink/farm_market/internal/models"
	"github.com/agrolink/farm_market/internal/repo"
	"github.com/agrolink/farm_market/internal/transport"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) CreateCrop(ctx context.Context, req transport.CreateCropRequest) (*models.Crop, error) {
	if req.Name == "" || req.Category == "" || req.Location == "" || req.FarmerName == "" {
		return nil, fmt.Errorf("%w: all required fields must be provided", ErrValidation)
	}
	if req.FarmerID == 0 {
		return nil, fmt.Errorf("%w: farmerId required", ErrValidation)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if req.Quantity == 0 {
		return nil, fmt.Errorf("%w: quantity required", ErrValidation)
	}

	category := models.CropCategory(req.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: invalid category", ErrValidation)
	}

	quality := models.QualityStandard
	if req.Quality != "" {
		quality = models.CropQuality(req.Quality)
		if !quality.Valid() {
			return nil, fmt.Errorf("%w: invalid quality", ErrValidation)
		}
	}

	crop := &models.Crop{
		Name:        req.Name,
		Category:    category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		Location:    req.Location,
		Image:       req.ImageURL,
		Quality:     quality,
		FarmerID:    req.FarmerID,
		FarmerName:  req.FarmerName,
		Status:      models.CropPendingApproval,
	}

	if err := s.Repo.CreateCrop(ctx, crop); err != nil {
		return nil, err
	}
	return crop, nil
}

func (s *CatalogService) ListAvailable(ctx context.Context) ([]models.Crop, error) {
	return s.Repo.ListCropsByStatus(ctx, models.CropAvailable)
}

func (s *CatalogService) ListPending(ctx context.Context) ([]models.Crop, error) {
	return s.Repo.ListCropsByStatus(ctx, models.CropPendingApproval)
}

func (s *CatalogService) ListByFarmer(ctx context.Context, farmerID uint) ([]models.Crop, error) {
	return s.Repo.ListCropsByFarmer(ctx, farmerID)
}

// UpdateCrop overwrites the supplied fields unconditionally. It is also the
// approval path: the admin flips status to available or rejected here. A
// manual quantity raise does not revert a sold_out status.
func (s *CatalogService) UpdateCrop(ctx context.Context, id uint, req transport.UpdateCropRequest) (*models.Crop, error) {
	crop, err := s.Repo.GetCrop(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: crop not found", ErrNotFound)
		}
		return nil, err
	}

	if req.Name != nil {
		crop.Name = *req.Name
	}
	if req.Category != nil {
		category := models.CropCategory(*req.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("%w: invalid category", ErrValidation)
		}
		crop.Category = category
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
		}
		crop.Price = *req.Price
	}
	if req.Quantity != nil {
		crop.Quantity = *req.Quantity
	}
	if req.Description != nil {
		crop.Description = *req.Description
	}
	if req.Location != nil {
		crop.Location = *req.Location
	}
	if req.Quality != nil {
		quality := models.CropQuality(*req.Quality)
		if !quality.Valid() {
			return nil, fmt.Errorf("%w: invalid quality", ErrValidation)
		}
		crop.Quality = quality
	}
	if req.Image != nil {
		crop.Image = *req.Image
	}
	if req.Status != nil {
		status := models.CropStatus(*req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: invalid status", ErrValidation)
		}
		crop.Status = status
	}

	if err := s.Repo.SaveCrop(ctx, crop); err != nil {
		return nil, err
	}
	return crop, nil
}

func (s *CatalogService) DeleteCrop(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteCrop(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: crop not found", ErrNotFound)
		}
		return err
	}
	return nil
}
