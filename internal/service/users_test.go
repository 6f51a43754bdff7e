package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/agrolink/farm_market/internal/hash"
	"github.com/agrolink/farm_market/internal/models"
	"github.com/agrolink/farm_market/internal/transport"
)

func signupReq(email string, role string) transport.SignupRequest {
	return transport.SignupRequest{
		Name:     "Asha",
		Email:    email,
		Password: "secret123",
		Phone:    "9876543210",
		Role:     role,
	}
}

func TestSignupHashesPasswordAndDefaultsRole(t *testing.T) {
	r := newTestRepo(t)
	svc := &UserService{Repo: r}

	user, err := svc.Signup(context.Background(), signupReq("asha@example.com", ""))
	require.NoError(t, err)

	assert.Equal(t, models.RoleBuyer, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, hash.CheckPassword(user.PasswordHash, "secret123"))
}

func TestSignupKeepsFarmerDetailsOnlyForSellers(t *testing.T) {
	r := newTestRepo(t)
	svc := &UserService{Repo: r}

	details := &models.FarmerDetails{FarmName: "Green Acres", OrganicCertified: true}

	buyerReq := signupReq("buyer@example.com", "buyer")
	buyerReq.FarmerDetails = details
	buyer, err := svc.Signup(context.Background(), buyerReq)
	require.NoError(t, err)
	assert.Nil(t, buyer.FarmerDetails)

	sellerReq := signupReq("seller@example.com", "seller")
	sellerReq.FarmerDetails = details
	seller, err := svc.Signup(context.Background(), sellerReq)
	require.NoError(t, err)
	require.NotNil(t, seller.FarmerDetails)
	assert.Equal(t, "Green Acres", seller.FarmerDetails.FarmName)
}

func TestSignupRejectsDuplicateEmailAndBadInput(t *testing.T) {
	r := newTestRepo(t)
	svc := &UserService{Repo: r}

	_, err := svc.Signup(context.Background(), signupReq("asha@example.com", "buyer"))
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signupReq("asha@example.com", "buyer"))
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Signup(context.Background(), transport.SignupRequest{Email: "x@example.com"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Signup(context.Background(), signupReq("y@example.com", "landlord"))
	require.ErrorIs(t, err, ErrValidation)
}

// A duplicate insert that slips past the existence check (two signups racing)
// is caught by the unique index; TranslateError turns the driver error into
// gorm.ErrDuplicatedKey so Signup can map it to a validation failure.
func TestDuplicateEmailInsertTranslatesToDuplicatedKey(t *testing.T) {
	r := newTestRepo(t)

	first := &models.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "x", Phone: "1", Role: models.RoleBuyer}
	require.NoError(t, r.CreateUser(context.Background(), first))

	second := &models.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "x", Phone: "1", Role: models.RoleBuyer}
	err := r.CreateUser(context.Background(), second)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestLogin(t *testing.T) {
	r := newTestRepo(t)
	svc := &UserService{Repo: r}

	_, err := svc.Signup(context.Background(), signupReq("asha@example.com", "buyer"))
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), transport.LoginRequest{Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)

	_, err = svc.Login(context.Background(), transport.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrAuth)

	_, err = svc.Login(context.Background(), transport.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	require.ErrorIs(t, err, ErrAuth)
}

func TestUpdateProfileMergesFarmerDetails(t *testing.T) {
	r := newTestRepo(t)
	svc := &UserService{Repo: r}

	req := signupReq("seller@example.com", "seller")
	req.FarmerDetails = &models.FarmerDetails{FarmName: "Green Acres", SoilType: "loam"}
	seller, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	newPhone := "1112223334"
	updated, err := svc.UpdateProfile(context.Background(), seller.ID, transport.UpdateUserRequest{
		Phone:         &newPhone,
		FarmerDetails: &transport.FarmerDetailsPatch{LandSize: "4 acres"},
	})
	require.NoError(t, err)

	assert.Equal(t, newPhone, updated.Phone)
	require.NotNil(t, updated.FarmerDetails)
	assert.Equal(t, "Green Acres", updated.FarmerDetails.FarmName)
	assert.Equal(t, "loam", updated.FarmerDetails.SoilType)
	assert.Equal(t, "4 acres", updated.FarmerDetails.LandSize)

	_, err = svc.UpdateProfile(context.Background(), 9999, transport.UpdateUserRequest{Phone: &newPhone})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfileCanClearOrganicCertified(t *testing.T) {
	r := newTestRepo(t)
	svc := &UserService{Repo: r}

	req := signupReq("seller@example.com", "seller")
	req.FarmerDetails = &models.FarmerDetails{FarmName: "Green Acres", OrganicCertified: true}
	seller, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	// a patch without the flag leaves it alone
	updated, err := svc.UpdateProfile(context.Background(), seller.ID, transport.UpdateUserRequest{
		FarmerDetails: &transport.FarmerDetailsPatch{LandSize: "4 acres"},
	})
	require.NoError(t, err)
	assert.True(t, updated.FarmerDetails.OrganicCertified)

	notOrganic := false
	updated, err = svc.UpdateProfile(context.Background(), seller.ID, transport.UpdateUserRequest{
		FarmerDetails: &transport.FarmerDetailsPatch{OrganicCertified: &notOrganic},
	})
	require.NoError(t, err)
	assert.False(t, updated.FarmerDetails.OrganicCertified)
	assert.Equal(t, "Green Acres", updated.FarmerDetails.FarmName)
}

func TestDeleteSellerCascadesCropsButNotOrders(t *testing.T) {
	r := newTestRepo(t)
	users := &UserService{Repo: r}
	orders := &OrderService{Repo: r}

	req := signupReq("seller@example.com", "seller")
	seller, err := users.Signup(context.Background(), req)
	require.NoError(t, err)

	crop := &models.Crop{
		Name: "Tomato", Category: models.CategoryVegetables, Price: 4, Quantity: 20,
		Location: "Pune", Quality: models.QualityGradeA,
		FarmerID: seller.ID, FarmerName: seller.Name, Status: models.CropAvailable,
	}
	require.NoError(t, r.DB.Create(crop).Error)

	placed, err := orders.PlaceOrder(context.Background(), transport.CreateOrderRequest{
		CropID: crop.ID, Quantity: 5, DeliveryAddress: "12 Market Road", BuyerID: 3, BuyerName: "Asha",
	})
	require.NoError(t, err)

	require.NoError(t, users.DeleteUser(context.Background(), seller.ID))

	var cropCount int64
	require.NoError(t, r.DB.Model(&models.Crop{}).Where("farmer_id = ?", seller.ID).Count(&cropCount).Error)
	assert.Equal(t, int64(0), cropCount)

	// the order survives with its snapshots intact
	var kept models.Order
	require.NoError(t, r.DB.First(&kept, placed.ID).Error)
	assert.Equal(t, "Tomato", kept.CropName)
	assert.Equal(t, seller.Name, kept.FarmerName)
	assert.Equal(t, float64(20), kept.TotalAmount)
}

func TestDeleteBuyerLeavesCropsAlone(t *testing.T) {
	r := newTestRepo(t)
	svc := &UserService{Repo: r}

	buyer, err := svc.Signup(context.Background(), signupReq("buyer@example.com", "buyer"))
	require.NoError(t, err)
	seedCrop(t, r, 10, 5)

	require.NoError(t, svc.DeleteUser(context.Background(), buyer.ID))

	var cropCount int64
	require.NoError(t, r.DB.Model(&models.Crop{}).Count(&cropCount).Error)
	assert.Equal(t, int64(1), cropCount)

	require.ErrorIs(t, svc.DeleteUser(context.Background(), buyer.ID), ErrNotFound)
}
