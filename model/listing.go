package model

// Listing is a store's sellable offering of a product with its own price and stock.
// Quantity is mutated only through the ledger's Reserve/Restore or an admin edit.
type Listing struct {
	ID                string  `json:"id"`
	StoreID           string  `json:"store_id"`
	ProductID         string  `json:"product_id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Description       string  `json:"description,omitempty"`
	Price             float64 `json:"price"`
	QuantityAvailable int     `json:"quantity_available"`
	Active            bool    `json:"active"`
}

// StockReservationRequest is one atomic unit of ledger work:
// store id -> listing id -> quantity.
type StockReservationRequest struct {
	Stores map[string]map[string]int
}

// NewStockReservationRequest builds a single-listing reservation, the shape used
// by the auction-close and bid-approval paths.
func NewStockReservationRequest(storeID, listingID string, quantity int) *StockReservationRequest {
	return &StockReservationRequest{
		Stores: map[string]map[string]int{
			storeID: {listingID: quantity},
		},
	}
}

type SetListingActiveRequest struct {
	Active bool `json:"active"`
}

type CreateListingRequest struct {
	StoreID     string  `json:"store_id" validate:"required"`
	ProductID   string  `json:"product_id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
}
