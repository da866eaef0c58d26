package model

import "github.com/muhammadheryan/marketplace/constant"

// BidRecord is one negotiated offer on a (store, product) pair. Each record carries
// its own approver quorum; approval is complete once ApprovedBy covers every
// required approver. Approved-and-purchased and rejected are terminal.
type BidRecord struct {
	BidderID          uint64
	ListingID         string
	Price             float64
	ShippingAddress   string
	ContactInfo       string
	PaymentDetails    string
	RequiredApprovers map[uint64]struct{}
	ApprovedBy        map[uint64]struct{}
	Approved          bool
	Rejected          bool
	CounterOffered    bool
	CounterPrice      float64
	Purchased         bool
}

// Approve records one approver's sign-off and flips Approved once the quorum is
// covered. The caller must have checked the approver is in the required set.
func (b *BidRecord) Approve(approverID uint64) {
	b.ApprovedBy[approverID] = struct{}{}
	for approver := range b.RequiredApprovers {
		if _, ok := b.ApprovedBy[approver]; !ok {
			return
		}
	}
	b.Approved = true
}

// IsAuthorized reports whether approverID belongs to the bid's required set.
func (b *BidRecord) IsAuthorized(approverID uint64) bool {
	_, ok := b.RequiredApprovers[approverID]
	return ok
}

// Terminal reports whether the record accepts no further transitions. Once a
// bid is approved (and its purchase triggered) or rejected, it is done.
func (b *BidRecord) Terminal() bool {
	return b.Rejected || b.Approved
}

// Status evaluates the record flags in priority order.
func (b *BidRecord) Status() constant.BidStatus {
	switch {
	case b.Rejected:
		return constant.BidStatusRejected
	case b.CounterOffered:
		return constant.BidStatusCounterOffered
	case b.Approved:
		return constant.BidStatusApproved
	default:
		return constant.BidStatusPending
	}
}

type SubmitBidRequest struct {
	StoreID           string   `json:"store_id" validate:"required"`
	ProductID         string   `json:"product_id" validate:"required"`
	ListingID         string   `json:"listing_id" validate:"required"`
	Price             float64  `json:"price"`
	ShippingAddress   string   `json:"shipping_address" validate:"required"`
	ContactInfo       string   `json:"contact_info" validate:"required"`
	PaymentDetails    string   `json:"payment_details" validate:"required"`
	RequiredApprovers []uint64 `json:"required_approvers" validate:"required,min=1"`
}

type BidStatusResponse struct {
	Status       constant.BidStatus `json:"status"`
	Price        float64            `json:"price"`
	CounterPrice float64            `json:"counter_price,omitempty"`
}

// BidDecisionRequest identifies one bid for an approve or reject call; the
// acting approver comes from the session.
type BidDecisionRequest struct {
	StoreID   string `json:"store_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	BidderID  uint64 `json:"bidder_id" validate:"required"`
}

// CounterDecisionRequest identifies the counter-offer the bidder responds to.
type CounterDecisionRequest struct {
	StoreID   string `json:"store_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
}

type CounterBidRequest struct {
	StoreID   string  `json:"store_id" validate:"required"`
	ProductID string  `json:"product_id" validate:"required"`
	BidderID  uint64  `json:"bidder_id" validate:"required"`
	NewAmount float64 `json:"new_amount"`
}
