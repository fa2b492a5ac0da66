package repo

import (
	"context"

	"github.com/Skotchmaster/ecommerce_backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *GormRepo) GetCart(ctx context.Context) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	if err := r.DB.WithContext(ctx).Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpsertCartItem inserts the line with quantity 1 or, on a product_id
// conflict, increments the existing row's quantity by one in the same
// statement. Snapshot fields are written only on insert. Returns true
// when a new line was created.
//
// The follow-up read only refreshes the row for the created/updated
// response; convergence does not depend on it.
func (r *GormRepo) UpsertCartItem(ctx context.Context, item *models.CartItem) (bool, error) {
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("quantity + 1")}),
		}).
		Create(item).Error
	if err != nil {
		return false, err
	}

	var row models.CartItem
	if err := r.DB.WithContext(ctx).Where("product_id = ?", item.ProductID).First(&row).Error; err != nil {
		return false, err
	}
	*item = row
	return row.Quantity == 1, nil
}

// DecreaseQuantity decrements the line or deletes it when the quantity
// is exactly 1, as two guarded statements in one transaction. A row
// with quantity < 1 is never written. Returns gorm.ErrRecordNotFound
// when no line exists for the product.
func (r *GormRepo) DecreaseQuantity(ctx context.Context, productID uint) (bool, *models.CartItem, error) {
	var item models.CartItem
	removed := false

	if err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("product_id = ? AND quantity > 1", productID).
			Update("quantity", gorm.Expr("quantity - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("product_id = ?", productID).First(&item).Error
		}

		del := tx.Where("product_id = ? AND quantity = 1", productID).Delete(&models.CartItem{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		removed = true
		return nil
	}); err != nil {
		return false, nil, err
	}

	if removed {
		return true, nil, nil
	}
	return false, &item, nil
}

// RemoveFromCart deletes the line unconditionally. Deleting a line that
// does not exist is not an error.
func (r *GormRepo) RemoveFromCart(ctx context.Context, productID uint) error {
	return r.DB.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.CartItem{}).Error
}
