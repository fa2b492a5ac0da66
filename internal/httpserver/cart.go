package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_backend/internal/events"
	"github.com/Skotchmaster/ecommerce_backend/internal/service"
	"github.com/Skotchmaster/ecommerce_backend/internal/transport"
	"github.com/Skotchmaster/ecommerce_backend/pkg/logging"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) publish(c echo.Context, key string, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("kafka_publish_error", "error", err)
	}
}

func productIDParam(c echo.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("productId"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.list")

	items, err := h.Svc.GetCart(ctx)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.MessageResponse{Message: "Database error"})
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.MessageResponse{Message: "Product required"})
	}
	if req.Product == nil || req.Product.ID == 0 {
		l.Warn("add_to_cart_error", "status", 400, "reason", "product missing")
		return c.JSON(http.StatusBadRequest, transport.MessageResponse{Message: "Product required"})
	}

	created, item, err := h.Svc.AddToCart(ctx, *req.Product)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, transport.MessageResponse{Message: "Invalid product payload"})
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.MessageResponse{Message: "Database error"})
	}

	eventType := "cart_quantity_updated"
	msg := "Quantity updated"
	if created {
		eventType = "cart_item_added"
		msg = "Product added"
	}
	h.publish(c, strconv.Itoa(int(item.ProductID)), map[string]any{
		"type":       eventType,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})

	l.Info("add_to_cart_success", "product_id", item.ProductID, "quantity", item.Quantity)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: msg})
}

func (h *CartHTTP) DecreaseQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.decrease")

	productID, ok := productIDParam(c)
	if !ok {
		l.Warn("decrease_quantity_error", "status", 400, "reason", "invalid product id")
		return c.JSON(http.StatusBadRequest, transport.MessageResponse{Message: "Invalid product id"})
	}

	removed, item, err := h.Svc.DecreaseQuantity(ctx, productID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("decrease_quantity_not_found", "status", 404, "product_id", productID)
			return c.JSON(http.StatusNotFound, transport.MessageResponse{Message: "Product not in cart"})
		}
		l.Error("decrease_quantity_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.MessageResponse{Message: "Database error"})
	}

	if removed {
		h.publish(c, strconv.Itoa(int(productID)), map[string]any{
			"type":       "cart_item_removed",
			"product_id": productID,
		})
		l.Info("decrease_quantity_removed", "product_id", productID)
		return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Product removed"})
	}

	h.publish(c, strconv.Itoa(int(productID)), map[string]any{
		"type":       "cart_quantity_decreased",
		"product_id": productID,
		"quantity":   item.Quantity,
	})
	l.Info("decrease_quantity_success", "product_id", productID, "quantity", item.Quantity)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Quantity decreased"})
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	productID, ok := productIDParam(c)
	if !ok {
		l.Warn("remove_from_cart_error", "status", 400, "reason", "invalid product id")
		return c.JSON(http.StatusBadRequest, transport.MessageResponse{Message: "Invalid product id"})
	}

	if err := h.Svc.RemoveFromCart(ctx, productID); err != nil {
		l.Error("remove_from_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.MessageResponse{Message: "Database error"})
	}

	h.publish(c, strconv.Itoa(int(productID)), map[string]any{
		"type":       "cart_item_removed",
		"product_id": productID,
	})
	l.Info("remove_from_cart_success", "product_id", productID)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Product removed"})
}
