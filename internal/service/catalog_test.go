package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrolink/farm_market/internal/models"
	"github.com/agrolink/farm_market/internal/transport"
)

func cropReq() transport.CreateCropRequest {
	return transport.CreateCropRequest{
		Name:       "Tomato",
		Category:   "vegetables",
		Price:      4.5,
		Quantity:   20,
		Location:   "Pune",
		FarmerID:   7,
		FarmerName: "Ravi",
	}
}

func TestCreateCropDefaultsAndForcedStatus(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	crop, err := svc.CreateCrop(context.Background(), cropReq())
	require.NoError(t, err)

	assert.Equal(t, models.CropPendingApproval, crop.Status)
	assert.Equal(t, models.QualityStandard, crop.Quality)

	req := cropReq()
	req.Quality = "Premium"
	premium, err := svc.CreateCrop(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.QualityPremium, premium.Quality)
}

func TestCreateCropValidation(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	bad := func(mutate func(*transport.CreateCropRequest)) transport.CreateCropRequest {
		req := cropReq()
		mutate(&req)
		return req
	}

	cases := map[string]transport.CreateCropRequest{
		"missing name":     bad(func(r *transport.CreateCropRequest) { r.Name = "" }),
		"missing location": bad(func(r *transport.CreateCropRequest) { r.Location = "" }),
		"missing farmer":   bad(func(r *transport.CreateCropRequest) { r.FarmerID = 0 }),
		"bad category":     bad(func(r *transport.CreateCropRequest) { r.Category = "minerals" }),
		"bad quality":      bad(func(r *transport.CreateCropRequest) { r.Quality = "Shiny" }),
		"zero price":       bad(func(r *transport.CreateCropRequest) { r.Price = 0 }),
		"zero quantity":    bad(func(r *transport.CreateCropRequest) { r.Quantity = 0 }),
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateCrop(context.Background(), req)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCropListFilters(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	seed := []models.Crop{
		{Name: "Tomato", Category: models.CategoryVegetables, Price: 4, Quantity: 10, Location: "Pune",
			Quality: models.QualityStandard, FarmerID: 7, FarmerName: "Ravi", Status: models.CropAvailable},
		{Name: "Mango", Category: models.CategoryFruits, Price: 30, Quantity: 5, Location: "Ratnagiri",
			Quality: models.QualityPremium, FarmerID: 8, FarmerName: "Meena", Status: models.CropPendingApproval},
		{Name: "Rice", Category: models.CategoryGrains, Price: 12, Quantity: 50, Location: "Raipur",
			Quality: models.QualityGradeB, FarmerID: 7, FarmerName: "Ravi", Status: models.CropRejected},
	}
	for i := range seed {
		require.NoError(t, r.DB.Create(&seed[i]).Error)
	}

	available, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Tomato", available[0].Name)

	pending, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Mango", pending[0].Name)

	ravi, err := svc.ListByFarmer(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, ravi, 2)
}

func TestUpdateCropApprovalPath(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	crop, err := svc.CreateCrop(context.Background(), cropReq())
	require.NoError(t, err)

	status := "available"
	approved, err := svc.UpdateCrop(context.Background(), crop.ID, transport.UpdateCropRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.CropAvailable, approved.Status)

	badStatus := "vanished"
	_, err = svc.UpdateCrop(context.Background(), crop.ID, transport.UpdateCropRequest{Status: &badStatus})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateCrop(context.Background(), 9999, transport.UpdateCropRequest{Status: &status})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCropDoesNotRevertSoldOut(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	crop := seedCrop(t, r, 10, 0)
	require.NoError(t, r.DB.Model(&models.Crop{}).Where("id = ?", crop.ID).Update("status", models.CropSoldOut).Error)

	qty := uint(25)
	updated, err := svc.UpdateCrop(context.Background(), crop.ID, transport.UpdateCropRequest{Quantity: &qty})
	require.NoError(t, err)

	// restocking alone does not republish the listing
	assert.Equal(t, uint(25), updated.Quantity)
	assert.Equal(t, models.CropSoldOut, updated.Status)
}

func TestDeleteCrop(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	crop := seedCrop(t, r, 10, 5)
	require.NoError(t, svc.DeleteCrop(context.Background(), crop.ID))
	require.ErrorIs(t, svc.DeleteCrop(context.Background(), crop.ID), ErrNotFound)
}
