package domain

import (
	"time"

	"github.com/google/uuid"
)

// MarketListing is an escrowed seed offered for sale. Listings are never
// physically deleted; a purchase transitions the status to sold.
type MarketListing struct {
	ID        uuid.UUID  `json:"id"`
	SellerID  uuid.UUID  `json:"seller_id"`
	Class     string     `json:"class"`
	BasePrice int        `json:"base_price"`
	Mutation  string     `json:"mutation,omitempty"`
	AskPrice  int64      `json:"ask_price"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	SoldAt    *time.Time `json:"sold_at,omitempty"`
}
