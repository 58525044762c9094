package domain

import "time"

// Message is a buyer-to-seller contact note about a listing. Created once,
// immutable, no read path.
type Message struct {
	Id          string    `json:"id"`
	ListingId   ListingId `json:"listing_id"`
	BuyerEmail  Email     `json:"buyer_email"`
	SellerEmail Email     `json:"seller_email"`
	Text        string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

type MessageCreationData struct {
	ListingId   ListingId
	BuyerEmail  Email
	SellerEmail Email
	Text        string
}
