package models

import (
	"time"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

type CropCategory string

const (
	CategoryVegetables CropCategory = "vegetables"
	CategoryFruits     CropCategory = "fruits"
	CategoryGrains     CropCategory = "grains"
	CategorySpices     CropCategory = "spices"
)

func (c CropCategory) Valid() bool {
	switch c {
	case CategoryVegetables, CategoryFruits, CategoryGrains, CategorySpices:
		return true
	}
	return false
}

type CropQuality string

const (
	QualityPremium  CropQuality = "Premium"
	QualityGradeA   CropQuality = "Grade A"
	QualityGradeB   CropQuality = "Grade B"
	QualityStandard CropQuality = "Standard"
)

func (q CropQuality) Valid() bool {
	switch q {
	case QualityPremium, QualityGradeA, QualityGradeB, QualityStandard:
		return true
	}
	return false
}

type CropStatus string

const (
	CropPendingApproval CropStatus = "pending_approval"
	CropAvailable       CropStatus = "available"
	CropSoldOut         CropStatus = "sold_out"
	CropRejected        CropStatus = "rejected"
)

func (s CropStatus) Valid() bool {
	switch s {
	case CropPendingApproval, CropAvailable, CropSoldOut, CropRejected:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type Address struct {
	Village  string `json:"village,omitempty"`
	District string `json:"district,omitempty"`
	State    string `json:"state,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
	Street   string `json:"street,omitempty"`
}

// FarmerDetails is filled only for users with the seller role.
type FarmerDetails struct {
	FarmName          string   `json:"farmName,omitempty"`
	LandSize          string   `json:"landSize,omitempty"`
	LandType          string   `json:"landType,omitempty"`
	SoilType          string   `json:"soilType,omitempty"`
	FarmingExperience string   `json:"farmingExperience,omitempty"`
	AverageYield      string   `json:"averageYield,omitempty"`
	OrganicCertified  bool     `json:"organicCertified,omitempty"`
	ProfilePhotoURL   string   `json:"profilePhotoUrl,omitempty"`
	AadharCardURL     string   `json:"aadharCardUrl,omitempty"`
	LandDocumentsURL  string   `json:"landDocumentsUrl,omitempty"`
	BankPassbookURL   string   `json:"bankPassbookUrl,omitempty"`
	PrimaryCrops      []string `json:"primaryCrops,omitempty"`
	SecondaryCrops    []string `json:"secondaryCrops,omitempty"`
}

type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement"         json:"id"`
	Name          string         `gorm:"not null"                         json:"name"`
	Email         string         `gorm:"uniqueIndex;not null"             json:"email"`
	PasswordHash  string         `gorm:"not null"                         json:"-"`
	Phone         string         `gorm:"not null"                         json:"phone"`
	Role          Role           `gorm:"not null;default:'buyer'"         json:"role"`
	Address       Address        `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	IsVerified    bool           `gorm:"default:false"                    json:"isVerified"`
	FarmerDetails *FarmerDetails `gorm:"serializer:json"                  json:"farmerDetails,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type Crop struct {
	ID          uint         `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name        string       `gorm:"not null"                   json:"name"`
	Category    CropCategory `gorm:"not null"                   json:"category"`
	Price       float64      `gorm:"not null"                   json:"price"`
	Quantity    uint         `gorm:"not null"                   json:"quantity"`
	Description string       `json:"description"`
	Location    string       `gorm:"not null"                   json:"location"`
	Image       string       `gorm:"default:''"                 json:"image"`
	Quality     CropQuality  `gorm:"default:'Standard'"         json:"quality"`
	FarmerID    uint         `gorm:"index;not null"             json:"farmer"`
	FarmerName  string       `gorm:"not null"                   json:"farmerName"`
	Status      CropStatus   `gorm:"default:'pending_approval'" json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Order is an immutable purchase record. The buyerName/farmerName/cropName/
// cropPrice columns are snapshots taken at placement time so order history
// stays readable after the crop or the users change.
type Order struct {
	ID                  uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	CropID              uint        `gorm:"index;not null"           json:"crop"`
	BuyerID             uint        `gorm:"index;not null"           json:"buyer"`
	FarmerID            uint        `gorm:"index;not null"           json:"farmer"`
	Quantity            uint        `gorm:"not null"                 json:"quantity"`
	TotalAmount         float64     `gorm:"not null"                 json:"totalAmount"`
	Status              OrderStatus `gorm:"default:'pending'"        json:"status"`
	DeliveryAddress     string      `gorm:"not null"                 json:"deliveryAddress"`
	SpecialInstructions string      `json:"specialInstructions"`
	BuyerName           string      `gorm:"not null"                 json:"buyerName"`
	FarmerName          string      `gorm:"not null"                 json:"farmerName"`
	CropName            string      `gorm:"not null"                 json:"cropName"`
	CropPrice           float64     `gorm:"not null"                 json:"cropPrice"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`
}
