package api

// Request and response DTOs for the HTTP surface.

type CreateListingRequest struct {
	Title       string   `json:"title" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	ImageUrl    string   `json:"image_url" validate:"required,url"`
	Category    string   `json:"category" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	SellerEmail string   `json:"seller_email" validate:"required,email"`
	Description *string  `json:"description,omitempty"`
}

type CreateMessageRequest struct {
	ListingId   string `json:"listing_id" validate:"required,uuid"`
	BuyerEmail  string `json:"buyer_email" validate:"required,email"`
	SellerEmail string `json:"seller_email" validate:"required,email"`
	Message     string `json:"message" validate:"required"`
}

type UploadResponse struct {
	Url string `json:"url"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
