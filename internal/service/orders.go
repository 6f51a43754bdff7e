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

type OrderService struct {
	Repo *repo.GormRepo
}

// PlaceOrder creates an order against a crop and deducts the ordered quantity
// from its stock. Both writes happen in one transaction; the stock deduction
// is a conditional decrement, so two overlapping orders can never oversell.
func (s *OrderService) PlaceOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if req.CropID == 0 {
		return nil, fmt.Errorf("%w: cropId required", ErrValidation)
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
	}
	if req.DeliveryAddress == "" {
		return nil, fmt.Errorf("%w: deliveryAddress required", ErrValidation)
	}
	if req.BuyerID == 0 {
		return nil, fmt.Errorf("%w: buyerId required", ErrValidation)
	}
	if req.BuyerName == "" {
		return nil, fmt.Errorf("%w: buyerName required", ErrValidation)
	}

	var order *models.Order
	txErr := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		crop, err := tx.GetCrop(ctx, req.CropID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: crop not found", ErrNotFound)
			}
			return err
		}

		if crop.Quantity < req.Quantity {
			return fmt.Errorf("%w: not enough quantity available", ErrInsufficientStock)
		}

		ok, err := tx.DecrementCropStock(ctx, crop.ID, req.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			// lost a race with a concurrent order since the read above
			return fmt.Errorf("%w: not enough quantity available", ErrInsufficientStock)
		}

		remaining, err := tx.GetCrop(ctx, crop.ID)
		if err != nil {
			return err
		}
		if remaining.Quantity == 0 {
			if err := tx.SetCropStatus(ctx, crop.ID, models.CropSoldOut); err != nil {
				return err
			}
		}

		order = &models.Order{
			CropID:              crop.ID,
			BuyerID:             req.BuyerID,
			FarmerID:            crop.FarmerID,
			Quantity:            req.Quantity,
			TotalAmount:         crop.Price * float64(req.Quantity),
			Status:              models.OrderPending,
			DeliveryAddress:     req.DeliveryAddress,
			SpecialInstructions: req.SpecialInstructions,
			BuyerName:           req.BuyerName,
			FarmerName:          crop.FarmerName,
			CropName:            crop.Name,
			CropPrice:           crop.Price,
		}
		return tx.CreateOrder(ctx, order)
	})
	if txErr != nil {
		return nil, txErr
	}

	return order, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	st := models.OrderStatus(status)
	if !st.Valid() {
		return nil, fmt.Errorf("%w: invalid status", ErrValidation)
	}

	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, err
	}

	order.Status = st
	if err := s.Repo.SaveOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListByBuyer(ctx context.Context, buyerID uint) ([]models.Order, error) {
	return s.Repo.ListOrdersByBuyer(ctx, buyerID)
}

func (s *OrderService) ListByFarmer(ctx context.Context, farmerID uint) ([]models.Order, error) {
	return s.Repo.ListOrdersByFarmer(ctx, farmerID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx)
}
