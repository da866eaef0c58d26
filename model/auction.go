package model

import "time"

// Offer is an immutable competitive offer inside an open auction.
type Offer struct {
	BidderID        uint64    `json:"bidder_id"`
	Price           float64   `json:"price"`
	ShippingAddress string    `json:"shipping_address"`
	ContactInfo     string    `json:"contact_info"`
	PaymentDetails  string    `json:"-"`
	PlacedAt        time.Time `json:"placed_at"`
}

// AuctionStatus is the read-only view of an open auction. CurrentMaxOffer falls
// back to the starting price while no offers were placed; TimeLeft is never negative.
type AuctionStatus struct {
	StartingPrice   float64       `json:"starting_price"`
	CurrentMaxOffer float64       `json:"current_max_offer"`
	TimeLeft        time.Duration `json:"time_left_ms"`
}

type OpenAuctionRequest struct {
	StoreID       string    `json:"store_id" validate:"required"`
	ListingID     string    `json:"listing_id" validate:"required"`
	ProductID     string    `json:"product_id" validate:"required"`
	StartingPrice float64   `json:"starting_price" validate:"gte=0"`
	EndTime       time.Time `json:"end_time" validate:"required"`
}

type CloseAuctionRequest struct {
	StoreID   string `json:"store_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
}

type SubmitOfferRequest struct {
	StoreID         string  `json:"store_id" validate:"required"`
	ProductID       string  `json:"product_id" validate:"required"`
	Price           float64 `json:"price" validate:"gt=0"`
	ShippingAddress string  `json:"shipping_address" validate:"required"`
	ContactInfo     string  `json:"contact_info" validate:"required"`
	PaymentDetails  string  `json:"payment_details" validate:"required"`
}
