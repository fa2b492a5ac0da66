package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Skotchmaster/ecommerce_backend/internal/models"
	"github.com/Skotchmaster/ecommerce_backend/internal/transport"
	"gorm.io/gorm"
)

// CartStore is what the cart logic needs from persistence. The cart is
// a single global table today; a per-session store satisfies the same
// interface later without touching the service.
type CartStore interface {
	GetCart(ctx context.Context) ([]models.CartItem, error)
	UpsertCartItem(ctx context.Context, item *models.CartItem) (bool, error)
	DecreaseQuantity(ctx context.Context, productID uint) (bool, *models.CartItem, error)
	RemoveFromCart(ctx context.Context, productID uint) error
}

type CartService struct {
	Repo CartStore
}

func (s *CartService) GetCart(ctx context.Context) ([]models.CartItem, error) {
	return s.Repo.GetCart(ctx)
}

// AddToCart creates the line with quantity 1 or increments an existing
// one. Returns true when a new line was created.
func (s *CartService) AddToCart(ctx context.Context, product transport.ProductPayload) (bool, *models.CartItem, error) {
	if product.ID == 0 {
		return false, nil, fmt.Errorf("product id is required: %w", ErrValidation)
	}
	if product.Price < 0 {
		return false, nil, fmt.Errorf("price cannot be negative: %w", ErrValidation)
	}

	item := models.CartItem{
		ProductID:   product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    1,
		ImageURL:    product.ImageURL,
	}

	created, err := s.Repo.UpsertCartItem(ctx, &item)
	if err != nil {
		return false, nil, err
	}
	return created, &item, nil
}

// DecreaseQuantity decrements the line or removes it at quantity 1.
// Returns true when the line was removed.
func (s *CartService) DecreaseQuantity(ctx context.Context, productID uint) (bool, *models.CartItem, error) {
	if productID == 0 {
		return false, nil, fmt.Errorf("product id is required: %w", ErrValidation)
	}

	removed, item, err := s.Repo.DecreaseQuantity(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil, fmt.Errorf("product not in cart: %w", ErrNotFound)
	}
	return removed, item, err
}

func (s *CartService) RemoveFromCart(ctx context.Context, productID uint) error {
	if productID == 0 {
		return fmt.Errorf("product id is required: %w", ErrValidation)
	}
	return s.Repo.RemoveFromCart(ctx, productID)
}
