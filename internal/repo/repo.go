package repo

import (
	"github.com/Skotchmaster/ecommerce_backend/internal/models"
	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

// Migrate syncs the two tables. The unique index on cart.product_id is
// required: the add-to-cart upsert conflicts on it.
func (r *GormRepo) Migrate() error {
	return r.DB.AutoMigrate(&models.Product{}, &models.CartItem{})
}
