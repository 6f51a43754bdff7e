package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/agrolink/farm_market/internal/models"
	"github.com/agrolink/farm_market/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Crop{}, &models.Order{}))

	t.Cleanup(func() { sqlDB.Close() })
	return repo.NewGormRepo(db)
}

func seedCrop(t *testing.T, r *repo.GormRepo, price float64, quantity uint) *models.Crop {
	t.Helper()

	crop := &models.Crop{
		Name:       "Wheat",
		Category:   models.CategoryGrains,
		Price:      price,
		Quantity:   quantity,
		Location:   "Nashik",
		Quality:    models.QualityStandard,
		FarmerID:   7,
		FarmerName: "Ravi",
		Status:     models.CropAvailable,
	}
	require.NoError(t, r.DB.Create(crop).Error)
	return crop
}
