package model

// Cart groups a buyer's selected listings per store: store id -> listing id -> quantity.
type Cart struct {
	Stores map[string]map[string]int `json:"stores"`
}

func (c *Cart) Empty() bool {
	if c == nil {
		return true
	}
	for _, listings := range c.Stores {
		if len(listings) > 0 {
			return false
		}
	}
	return true
}

type AddCartItemRequest struct {
	StoreID   string `json:"store_id" validate:"required"`
	ListingID string `json:"listing_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}
