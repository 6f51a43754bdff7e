package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrolink/farm_market/internal/logging"
	"github.com/agrolink/farm_market/internal/mykafka"
	"github.com/agrolink/farm_market/internal/service"
)

// httpError maps service errors onto the API's status codes. The underlying
// message is surfaced to the caller as-is.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInsufficientStock):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuth):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// publish sends a domain event best-effort: a dead broker must not fail the
// request that already committed.
func publish(c echo.Context, producer *mykafka.Producer, topic, key string, event map[string]any) {
	if producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "topic", topic, "error", err)
	}
}
