package constant

// BidStatus reflects the lifecycle of a negotiated bid. Flags on the record are
// evaluated in priority order rejected > counter offered > approved > pending.
type BidStatus string

const (
	BidStatusPending        BidStatus = "PENDING"
	BidStatusApproved       BidStatus = "APPROVED"
	BidStatusRejected       BidStatus = "REJECTED"
	BidStatusCounterOffered BidStatus = "COUNTER_OFFERED"
)

// PurchaseSource records which path produced a purchase.
type PurchaseSource string

const (
	PurchaseSourceDirect  PurchaseSource = "DIRECT"
	PurchaseSourceAuction PurchaseSource = "AUCTION"
	PurchaseSourceBid     PurchaseSource = "BID"
)
