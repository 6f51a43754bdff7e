package repo

import (
	"context"

	"github.com/agrolink/farm_market/internal/models"
	"gorm.io/gorm"
)

func (r *GormRepo) CreateCrop(ctx context.Context, crop *models.Crop) error {
	return r.DB.WithContext(ctx).Create(crop).Error
}

func (r *GormRepo) GetCrop(ctx context.Context, id uint) (*models.Crop, error) {
	var crop models.Crop
	if err := r.DB.WithContext(ctx).First(&crop, id).Error; err != nil {
		return nil, err
	}
	return &crop, nil
}

func (r *GormRepo) ListCropsByStatus(ctx context.Context, status models.CropStatus) ([]models.Crop, error) {
	var crops []models.Crop
	if err := r.DB.WithContext(ctx).Where("status = ?", status).Find(&crops).Error; err != nil {
		return nil, err
	}
	return crops, nil
}

func (r *GormRepo) ListCropsByFarmer(ctx context.Context, farmerID uint) ([]models.Crop, error) {
	var crops []models.Crop
	if err := r.DB.WithContext(ctx).Where("farmer_id = ?", farmerID).Find(&crops).Error; err != nil {
		return nil, err
	}
	return crops, nil
}

func (r *GormRepo) SaveCrop(ctx context.Context, crop *models.Crop) error {
	return r.DB.WithContext(ctx).Save(crop).Error
}

func (r *GormRepo) DeleteCrop(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.Crop{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteCropsByFarmer(ctx context.Context, farmerID uint) error {
	return r.DB.WithContext(ctx).Where("farmer_id = ?", farmerID).Delete(&models.Crop{}).Error
}

// DecrementCropStock subtracts qty from the crop's quantity only when enough
// stock remains, as a single conditional UPDATE. Returns false when the crop
// is missing or the remaining stock is below qty. Two racing orders cannot
// both pass: the losing writer sees zero rows affected.
func (r *GormRepo) DecrementCropStock(ctx context.Context, id, qty uint) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Crop{}).
		Where("id = ? AND quantity >= ?", id, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepo) SetCropStatus(ctx context.Context, id uint, status models.CropStatus) error {
	return r.DB.WithContext(ctx).
		Model(&models.Crop{}).
		Where("id = ?", id).
		Update("status", status).Error
}
