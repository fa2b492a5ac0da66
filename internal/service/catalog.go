package service

import (
	"context"

	"github.com/Skotchmaster/ecommerce_backend/internal/models"
)

type CatalogStore interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
}

type CatalogService struct {
	Repo CatalogStore
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}
