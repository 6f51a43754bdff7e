package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrolink/farm_market/internal/logging"
	"github.com/agrolink/farm_market/internal/mykafka"
	"github.com/agrolink/farm_market/internal/service"
	"github.com/agrolink/farm_market/internal/transport"
)

type OrderHandler struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.place")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.PlaceOrder(ctx, req)
	if err != nil {
		l.Warn("place order failed", "crop_id", req.CropID, "error", err)
		return httpError(err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(order.ID), map[string]any{
		"type":        "order_created",
		"orderID":     order.ID,
		"cropID":      order.CropID,
		"buyerID":     order.BuyerID,
		"quantity":    order.Quantity,
		"totalAmount": order.TotalAmount,
	})

	l.Info("order placed", "order_id", order.ID, "crop_id", order.CropID, "total", order.TotalAmount)
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Order placed successfully!",
		"order":   order,
	})
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateOrderStatus(ctx, id, req.Status)
	if err != nil {
		return httpError(err)
	}

	publish(c, h.Producer, "order_events", fmt.Sprint(order.ID), map[string]any{
		"type":    "order_status_updated",
		"orderID": order.ID,
		"status":  order.Status,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Order status updated successfully!",
		"order":   order,
	})
}

func (h *OrderHandler) ListByBuyer(c echo.Context) error {
	buyerID, err := paramID(c, "buyerId")
	if err != nil {
		return err
	}

	orders, err := h.Svc.ListByBuyer(c.Request().Context(), buyerID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListByFarmer(c echo.Context) error {
	farmerID, err := paramID(c, "farmerId")
	if err != nil {
		return err
	}

	orders, err := h.Svc.ListByFarmer(c.Request().Context(), farmerID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.Svc.ListAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}
