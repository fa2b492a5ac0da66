package transport

type ProductPayload struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

type AddToCartRequest struct {
	Product *ProductPayload `json:"product"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
