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

type UserHandler struct {
	Svc      *service.UserService
	Producer *mykafka.Producer
}

func (h *UserHandler) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.signup")

	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Signup(ctx, req)
	if err != nil {
		l.Warn("signup failed", "error", err)
		return httpError(err)
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"role":   user.Role,
	})

	l.Info("user created", "user_id", user.ID)
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User created successfully!",
		"user":    user,
	})
}

func (h *UserHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Login(ctx, req)
	if err != nil {
		l.Warn("login failed", "email", req.Email, "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Logged in successfully!",
		"user":    user,
	})
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.Svc.ListUsers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.UpdateProfile(ctx, id, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.delete")

	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteUser(ctx, id); err != nil {
		return httpError(err)
	}

	publish(c, h.Producer, "user_events", fmt.Sprint(id), map[string]any{
		"type":   "user_deleted",
		"userID": id,
	})

	l.Info("user removed", "user_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "User removed successfully"})
}
