package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrInvalidReference
	ErrInsufficientStock
	ErrAuctionNotActive
	ErrOfferTooLow
	ErrAuctionStillOpen
	ErrInvalidAmount
	ErrUnauthorizedApprover
	ErrNoBidFound
	ErrPaymentFailed
	ErrShipmentFailed
	ErrStockUnavailable
	ErrPurchaseNotAllowed
	ErrEmptyCart
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrCredentialExists:     "email or phone already exists",
	ErrInvalidPassword:      "password invalid",
	ErrInvalidReference:     "listing does not exist or does not belong to store",
	ErrInsufficientStock:    "insufficient stock for requested quantity",
	ErrAuctionNotActive:     "auction is not active",
	ErrOfferTooLow:          "offer must be higher than current maximum",
	ErrAuctionStillOpen:     "auction has not ended yet",
	ErrInvalidAmount:        "amount must be a positive value",
	ErrUnauthorizedApprover: "approver is not authorized for this bid",
	ErrNoBidFound:           "no bid found",
	ErrPaymentFailed:        "payment failed",
	ErrShipmentFailed:       "shipment failed",
	ErrStockUnavailable:     "stock unavailable for purchase",
	ErrPurchaseNotAllowed:   "purchase not allowed by store policy",
	ErrEmptyCart:            "shopping cart is empty",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusBadRequest,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrCredentialExists:     http.StatusBadRequest,
	ErrInvalidPassword:      http.StatusBadRequest,
	ErrInvalidReference:     http.StatusBadRequest,
	ErrInsufficientStock:    http.StatusConflict,
	ErrAuctionNotActive:     http.StatusBadRequest,
	ErrOfferTooLow:          http.StatusBadRequest,
	ErrAuctionStillOpen:     http.StatusBadRequest,
	ErrInvalidAmount:        http.StatusBadRequest,
	ErrUnauthorizedApprover: http.StatusForbidden,
	ErrNoBidFound:           http.StatusNotFound,
	ErrPaymentFailed:        http.StatusBadGateway,
	ErrShipmentFailed:       http.StatusBadGateway,
	ErrStockUnavailable:     http.StatusConflict,
	ErrPurchaseNotAllowed:   http.StatusBadRequest,
	ErrEmptyCart:            http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrCredentialExists:     "0005",
	ErrInvalidPassword:      "0006",
	ErrInvalidReference:     "0007",
	ErrInsufficientStock:    "0008",
	ErrAuctionNotActive:     "0009",
	ErrOfferTooLow:          "0010",
	ErrAuctionStillOpen:     "0011",
	ErrInvalidAmount:        "0012",
	ErrUnauthorizedApprover: "0013",
	ErrNoBidFound:           "0014",
	ErrPaymentFailed:        "0015",
	ErrShipmentFailed:       "0016",
	ErrStockUnavailable:     "0017",
	ErrPurchaseNotAllowed:   "0018",
	ErrEmptyCart:            "0019",
}
