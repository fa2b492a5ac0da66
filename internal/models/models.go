package models

// Product is the read-only catalog row. It is created and updated by an
// external catalog process; the cart logic never mutates it.
type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name        string  `gorm:"not null"                   json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null;check:price >= 0"  json:"price"`
	ImageURL    string  `json:"image_url"`
}

func (Product) TableName() string {
	return "products"
}

// CartItem holds one product's quantity in the shared cart, at most one
// row per product_id. Name, description, price and image_url are a
// snapshot taken when the line is first added and are not refreshed on
// later increments.
type CartItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"       json:"id"`
	ProductID   uint    `gorm:"uniqueIndex;not null"           json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    uint    `gorm:"not null;default:1;check:quantity > 0" json:"quantity"`
	ImageURL    string  `json:"image_url"`
}

func (CartItem) TableName() string {
	return "cart"
}
