package handlers

import (
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/agrolink/farm_market/internal/logging"
	"github.com/agrolink/farm_market/internal/models"
	"github.com/agrolink/farm_market/internal/mykafka"
	"github.com/agrolink/farm_market/internal/service"
	"github.com/agrolink/farm_market/internal/service/search"
	"github.com/agrolink/farm_market/internal/transport"
)

type CropHandler struct {
	Svc      *service.CatalogService
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
}

func (h *CropHandler) ListAvailable(c echo.Context) error {
	crops, err := h.Svc.ListAvailable(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, crops)
}

func (h *CropHandler) ListPending(c echo.Context) error {
	crops, err := h.Svc.ListPending(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, crops)
}

func (h *CropHandler) ListByFarmer(c echo.Context) error {
	farmerID, err := paramID(c, "farmerId")
	if err != nil {
		return err
	}

	crops, err := h.Svc.ListByFarmer(c.Request().Context(), farmerID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, crops)
}

func (h *CropHandler) CreateCrop(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "crops.create")

	var req transport.CreateCropRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	crop, err := h.Svc.CreateCrop(ctx, req)
	if err != nil {
		l.Warn("create crop failed", "error", err)
		return httpError(err)
	}

	h.reindex(c, crop)
	publish(c, h.Producer, "crop_events", fmt.Sprint(crop.ID), map[string]any{
		"type":     "crop_created",
		"cropID":   crop.ID,
		"farmerID": crop.FarmerID,
		"name":     crop.Name,
	})

	l.Info("crop created", "crop_id", crop.ID, "farmer_id", crop.FarmerID)
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Crop added successfully!",
		"crop":    crop,
	})
}

func (h *CropHandler) UpdateCrop(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateCropRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	crop, err := h.Svc.UpdateCrop(ctx, id, req)
	if err != nil {
		return httpError(err)
	}

	h.reindex(c, crop)
	publish(c, h.Producer, "crop_events", fmt.Sprint(crop.ID), map[string]any{
		"type":   "crop_updated",
		"cropID": crop.ID,
		"status": crop.Status,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Crop updated successfully!",
		"crop":    crop,
	})
}

func (h *CropHandler) DeleteCrop(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteCrop(ctx, id); err != nil {
		return httpError(err)
	}

	if h.ES != nil {
		if err := search.DeleteCrop(ctx, h.ES, h.Index, id); err != nil {
			logging.FromContext(ctx).Error("es delete failed", "crop_id", id, "error", err)
		}
	}
	publish(c, h.Producer, "crop_events", fmt.Sprint(id), map[string]any{
		"type":   "crop_deleted",
		"cropID": id,
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "Crop deleted successfully!"})
}

// reindex mirrors the crop into the search index; search lags rather than
// failing the write when the cluster is down.
func (h *CropHandler) reindex(c echo.Context, crop *models.Crop) {
	if h.ES == nil {
		return
	}
	ctx := c.Request().Context()
	if err := search.IndexCrop(ctx, h.ES, h.Index, crop); err != nil {
		logging.FromContext(ctx).Error("es index failed", "crop_id", crop.ID, "error", err)
	}
}
