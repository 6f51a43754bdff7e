package transport

import "github.com/agrolink/farm_market/internal/models"

type SignupRequest struct {
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Password      string                `json:"password"`
	Phone         string                `json:"phone"`
	Role          string                `json:"role"`
	Address       models.Address        `json:"address"`
	FarmerDetails *models.FarmerDetails `json:"farmerDetails"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name          *string             `json:"name"`
	Email         *string             `json:"email"`
	Phone         *string             `json:"phone"`
	Address       *models.Address     `json:"address"`
	FarmerDetails *FarmerDetailsPatch `json:"farmerDetails"`
}

// FarmerDetailsPatch mirrors models.FarmerDetails with an explicit pointer for
// the boolean so a patch can clear it, not just set it.
type FarmerDetailsPatch struct {
	FarmName          string   `json:"farmName"`
	LandSize          string   `json:"landSize"`
	LandType          string   `json:"landType"`
	SoilType          string   `json:"soilType"`
	FarmingExperience string   `json:"farmingExperience"`
	AverageYield      string   `json:"averageYield"`
	OrganicCertified  *bool    `json:"organicCertified"`
	ProfilePhotoURL   string   `json:"profilePhotoUrl"`
	AadharCardURL     string   `json:"aadharCardUrl"`
	LandDocumentsURL  string   `json:"landDocumentsUrl"`
	BankPassbookURL   string   `json:"bankPassbookUrl"`
	PrimaryCrops      []string `json:"primaryCrops"`
	SecondaryCrops    []string `json:"secondaryCrops"`
}

type CreateCropRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    uint    `json:"quantity"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Quality     string  `json:"quality"`
	ImageURL    string  `json:"imageUrl"`
	FarmerID    uint    `json:"farmerId"`
	FarmerName  string  `json:"farmerName"`
}

type UpdateCropRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *uint    `json:"quantity"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Quality     *string  `json:"quality"`
	Image       *string  `json:"image"`
	Status      *string  `json:"status"`
}

type CreateOrderRequest struct {
	CropID              uint   `json:"cropId"`
	Quantity            uint   `json:"quantity"`
	DeliveryAddress     string `json:"deliveryAddress"`
	SpecialInstructions string `json:"specialInstructions"`
	BuyerID             uint   `json:"buyerId"`
	BuyerName           string `json:"buyerName"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
