package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	CartHandler    *CartHTTP
	ProductHandler *CatalogHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"ok": true})
	})

	api := e.Group("/api/ecommerce")

	api.GET("/products", d.ProductHandler.GetProducts)

	api.GET("/cart", d.CartHandler.GetCart)
	api.POST("/cart", d.CartHandler.AddToCart)
	api.DELETE("/cart/:productId", d.CartHandler.RemoveFromCart)
	api.PATCH("/cart/:productId/decrease", d.CartHandler.DecreaseQuantity)
}
