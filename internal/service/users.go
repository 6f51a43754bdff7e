package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/agrolink/farm_market/internal/hash"
	"github.com/agrolink/farm_market/internal/models"
	"github.com/agrolink/farm_market/internal/repo"
	"github.com/agrolink/farm_market/internal/transport"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) Signup(ctx context.Context, req transport.SignupRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Phone == "" {
		return nil, fmt.Errorf("%w: name, email, password and phone are required", ErrValidation)
	}

	role := models.RoleBuyer
	if req.Role != "" {
		role = models.Role(req.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: invalid role", ErrValidation)
		}
	}

	if _, err := s.Repo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: user already exists", ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Phone:        req.Phone,
		Role:         role,
		Address:      req.Address,
	}
	if role == models.RoleSeller {
		user.FarmerDetails = req.FarmerDetails
	}

	if err := s.Repo.CreateUser(ctx, user); err != nil {
		// unique email index backstops the existence check above
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: user already exists", ErrValidation)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, req transport.LoginRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.Repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", ErrAuth)
		}
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, fmt.Errorf("%w: invalid email or password", ErrAuth)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s *UserService) UpdateProfile(ctx context.Context, id uint, req transport.UpdateUserRequest) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if user.Role == models.RoleSeller && req.FarmerDetails != nil {
		user.FarmerDetails = mergeFarmerDetails(user.FarmerDetails, req.FarmerDetails)
	}

	if err := s.Repo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user and, for sellers, their crop listings in the
// same transaction. Orders referencing those crops are left alone: their
// snapshot columns keep the history readable.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		user, err := tx.GetUser(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user not found", ErrNotFound)
			}
			return err
		}

		if user.Role == models.RoleSeller {
			if err := tx.DeleteCropsByFarmer(ctx, user.ID); err != nil {
				return err
			}
		}
		return tx.DeleteUser(ctx, user.ID)
	})
}

func mergeFarmerDetails(cur *models.FarmerDetails, patch *transport.FarmerDetailsPatch) *models.FarmerDetails {
	merged := models.FarmerDetails{}
	if cur != nil {
		merged = *cur
	}
	if patch.FarmName != "" {
		merged.FarmName = patch.FarmName
	}
	if patch.LandSize != "" {
		merged.LandSize = patch.LandSize
	}
	if patch.LandType != "" {
		merged.LandType = patch.LandType
	}
	if patch.SoilType != "" {
		merged.SoilType = patch.SoilType
	}
	if patch.FarmingExperience != "" {
		merged.FarmingExperience = patch.FarmingExperience
	}
	if patch.AverageYield != "" {
		merged.AverageYield = patch.AverageYield
	}
	if patch.OrganicCertified != nil {
		merged.OrganicCertified = *patch.OrganicCertified
	}
	if patch.ProfilePhotoURL != "" {
		merged.ProfilePhotoURL = patch.ProfilePhotoURL
	}
	if patch.AadharCardURL != "" {
		merged.AadharCardURL = patch.AadharCardURL
	}
	if patch.LandDocumentsURL != "" {
		merged.LandDocumentsURL = patch.LandDocumentsURL
	}
	if patch.BankPassbookURL != "" {
		merged.BankPassbookURL = patch.BankPassbookURL
	}
	if len(patch.PrimaryCrops) > 0 {
		merged.PrimaryCrops = patch.PrimaryCrops
	}
	if len(patch.SecondaryCrops) > 0 {
		merged.SecondaryCrops = patch.SecondaryCrops
	}
	return &merged
}
