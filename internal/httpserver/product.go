package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_backend/internal/service"
	"github.com/Skotchmaster/ecommerce_backend/internal/transport"
	"github.com/Skotchmaster/ecommerce_backend/pkg/logging"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	items, err := h.Svc.GetProducts(ctx)
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.MessageResponse{Message: "Database error"})
	}

	return c.JSON(http.StatusOK, items)
}
