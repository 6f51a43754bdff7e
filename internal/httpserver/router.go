package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/agrolink/farm_market/internal/handlers"
)

type Deps struct {
	UserHandler   *handlers.UserHandler
	CropHandler   *handlers.CropHandler
	OrderHandler  *handlers.OrderHandler
	SearchHandler *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	users := e.Group("/users")
	users.POST("/signup", d.UserHandler.Signup)
	users.POST("/login", d.UserHandler.Login)
	users.GET("", d.UserHandler.ListUsers)
	users.PUT("/:id", d.UserHandler.UpdateProfile)
	users.DELETE("/:id", d.UserHandler.DeleteUser)

	crops := e.Group("/crops")
	crops.GET("", d.CropHandler.ListAvailable)
	crops.GET("/pending", d.CropHandler.ListPending)
	crops.GET("/farmer/:farmerId", d.CropHandler.ListByFarmer)
	crops.POST("", d.CropHandler.CreateCrop)
	crops.PUT("/:id", d.CropHandler.UpdateCrop)
	crops.DELETE("/:id", d.CropHandler.DeleteCrop)
	if d.SearchHandler != nil {
		crops.GET("/search", d.SearchHandler.Search)
	}

	orders := e.Group("/orders")
	orders.POST("", d.OrderHandler.PlaceOrder)
	orders.GET("", d.OrderHandler.ListAll)
	orders.GET("/buyer/:buyerId", d.OrderHandler.ListByBuyer)
	orders.GET("/farmer/:farmerId", d.OrderHandler.ListByFarmer)
	orders.PUT("/:id/status", d.OrderHandler.UpdateStatus)
}
