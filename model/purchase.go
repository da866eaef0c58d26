package model

import (
	"time"

	"github.com/muhammadheryan/marketplace/constant"
)

// PurchaseLine is one purchased item: which listing, from which store, how many,
// at what unit price.
type PurchaseLine struct {
	StoreID   string  `db:"store_id" json:"store_id"`
	ListingID string  `db:"listing_id" json:"listing_id"`
	ProductID string  `db:"product_id" json:"product_id"`
	Quantity  int     `db:"quantity" json:"quantity"`
	UnitPrice float64 `db:"unit_price" json:"unit_price"`
}

// PurchaseRecord is the immutable outcome of a completed purchase, created only
// after reservation, payment and shipment have all succeeded.
type PurchaseRecord struct {
	ID              string                  `db:"id" json:"id"`
	BuyerID         uint64                  `db:"buyer_id" json:"buyer_id"`
	Lines           []PurchaseLine          `json:"lines"`
	TotalPrice      float64                 `db:"total_price" json:"total_price"`
	ShippingAddress string                  `db:"shipping_address" json:"shipping_address"`
	ContactInfo     string                  `db:"contact_info" json:"contact_info"`
	Source          constant.PurchaseSource `db:"source" json:"source"`
	TrackingID      string                  `db:"tracking_id" json:"tracking_id"`
	CreatedAt       time.Time               `db:"created_at" json:"created_at"`
}

type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" validate:"required"`
	ContactInfo     string `json:"contact_info" validate:"required"`
	PaymentDetails  string `json:"payment_details" validate:"required"`
}

type CheckoutResponse struct {
	PurchaseID string    `json:"purchase_id"`
	TotalPrice float64   `json:"total_price"`
	TrackingID string    `json:"tracking_id"`
	CreatedAt  time.Time `json:"created_at"`
}
