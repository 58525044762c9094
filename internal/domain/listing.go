package domain

import "time"

type (
	Email     = string
	ListingId = string // uuid assigned by the store
	Category  = string
)

// Listing is a single marketplace item. Id and CreatedAt are assigned by the
// store on insert and never change afterwards.
type Listing struct {
	Id          ListingId `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	ImageUrl    string    `json:"image_url"`
	Category    Category  `json:"category"`
	Location    string    `json:"location"`
	SellerEmail Email     `json:"seller_email"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// to iterate thru layers: handler -> service -> storage
type ListingCreationData struct {
	Title       string
	Price       float64
	ImageUrl    string
	Category    Category
	Location    string
	SellerEmail Email
	Description *string
}

// ListingFilter composes with logical AND. Empty fields are no-ops.
type ListingFilter struct {
	Category Category // exact match, case-sensitive
	Search   string   // case-insensitive substring of the title
}
