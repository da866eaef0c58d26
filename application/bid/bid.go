package bid

import (
	"context"
	"fmt"
	"sync"

	purchaseapp "github.com/muhammadheryan/marketplace/application/purchase"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	listingrepo "github.com/muhammadheryan/marketplace/repository/listing"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type BidApp interface {
	SubmitBid(ctx context.Context, bidderID uint64, req *model.SubmitBidRequest) error
	ApproveBid(ctx context.Context, storeID, productID string, bidderID, approverID uint64) error
	RejectBid(ctx context.Context, storeID, productID string, bidderID, approverID uint64) error
	ProposeCounterBid(ctx context.Context, storeID, productID string, bidderID uint64, newAmount float64) error
	AcceptCounterOffer(ctx context.Context, storeID, productID string, bidderID uint64) error
	DeclineCounterOffer(ctx context.Context, storeID, productID string, bidderID uint64) error
	GetBidStatus(ctx context.Context, storeID, productID string, bidderID uint64) (*model.BidStatusResponse, error)
}

type bidKey struct {
	storeID   string
	productID string
}

type bidAppImpl struct {
	mu   sync.Mutex
	bids map[bidKey][]*model.BidRecord

	listingRepo listingrepo.ListingRepository
	purchaseApp purchaseapp.PurchaseApp
	notifier    purchaseapp.Notifier
}

// NewBidApp returns a coordinator owning its own bid map; independent instances
// never share state.
func NewBidApp(listingRepo listingrepo.ListingRepository, purchaseApp purchaseapp.PurchaseApp, notifier purchaseapp.Notifier) BidApp {
	return &bidAppImpl{
		bids:        make(map[bidKey][]*model.BidRecord),
		listingRepo: listingRepo,
		purchaseApp: purchaseApp,
		notifier:    notifier,
	}
}

func (s *bidAppImpl) SubmitBid(ctx context.Context, bidderID uint64, req *model.SubmitBidRequest) error {
	if req.Price <= 0 {
		return errors.SetCustomError(constant.ErrInvalidAmount)
	}

	l, err := s.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil || l.StoreID != req.StoreID {
		return errors.SetCustomError(constant.ErrInvalidReference)
	}

	required := make(map[uint64]struct{}, len(req.RequiredApprovers))
	for _, approver := range req.RequiredApprovers {
		required[approver] = struct{}{}
	}
	record := &model.BidRecord{
		BidderID:          bidderID,
		ListingID:         req.ListingID,
		Price:             req.Price,
		ShippingAddress:   req.ShippingAddress,
		ContactInfo:       req.ContactInfo,
		PaymentDetails:    req.PaymentDetails,
		RequiredApprovers: required,
		ApprovedBy:        make(map[uint64]struct{}),
	}

	key := bidKey{storeID: req.StoreID, productID: req.ProductID}
	s.mu.Lock()
	s.bids[key] = append(s.bids[key], record)
	s.mu.Unlock()

	for _, approver := range req.RequiredApprovers {
		s.notify(approver, fmt.Sprintf("New bid submitted for product %s in store %s: %.2f", req.ProductID, req.StoreID, req.Price))
	}
	return nil
}

// ApproveBid adds one approver's sign-off. When the quorum is covered the bid
// becomes APPROVED and the purchase pipeline runs synchronously: reserve one
// unit, then charge/ship/persist. A reservation failure is reported as
// StockUnavailable even though the quorum bookkeeping already committed.
func (s *bidAppImpl) ApproveBid(ctx context.Context, storeID, productID string, bidderID, approverID uint64) error {
	s.mu.Lock()
	record := s.findActive(storeID, productID, bidderID)
	if record == nil {
		s.mu.Unlock()
		return errors.SetCustomError(constant.ErrNoBidFound)
	}
	if !record.IsAuthorized(approverID) {
		s.mu.Unlock()
		return errors.SetCustomError(constant.ErrUnauthorizedApprover)
	}

	record.Approve(approverID)
	if !record.Approved {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	logger.Info("[ApproveBid] quorum complete", zap.String("store_id", storeID), zap.String("product_id", productID), zap.Uint64("bidder_id", bidderID))
	return s.completePurchase(ctx, storeID, productID, record)
}

func (s *bidAppImpl) RejectBid(ctx context.Context, storeID, productID string, bidderID, approverID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.findActive(storeID, productID, bidderID)
	if record == nil {
		return errors.SetCustomError(constant.ErrNoBidFound)
	}
	if !record.IsAuthorized(approverID) {
		return errors.SetCustomError(constant.ErrUnauthorizedApprover)
	}

	record.Rejected = true
	s.notify(record.BidderID, fmt.Sprintf("Your bid for product %s in store %s has been rejected", productID, storeID))
	return nil
}

func (s *bidAppImpl) ProposeCounterBid(ctx context.Context, storeID, productID string, bidderID uint64, newAmount float64) error {
	if newAmount <= 0 {
		return errors.SetCustomError(constant.ErrInvalidAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.findActive(storeID, productID, bidderID)
	if record == nil {
		// A rejected bid is no longer negotiable: countering it is an invalid
		// request, distinct from the bid never existing.
		for _, rejected := range s.bids[bidKey{storeID: storeID, productID: productID}] {
			if rejected.BidderID == bidderID && rejected.Rejected {
				return errors.SetCustomError(constant.ErrInvalidAmount)
			}
		}
		return errors.SetCustomError(constant.ErrNoBidFound)
	}

	record.CounterOffered = true
	record.CounterPrice = newAmount
	s.notify(record.BidderID, fmt.Sprintf("Counter offer proposed for product %s in store %s: %.2f", productID, storeID, newAmount))
	return nil
}

// AcceptCounterOffer adopts the countered price and approves the bid without
// re-collecting signatures, then runs the same purchase pipeline as approval.
func (s *bidAppImpl) AcceptCounterOffer(ctx context.Context, storeID, productID string, bidderID uint64) error {
	s.mu.Lock()
	record := s.findCountered(storeID, productID, bidderID)
	if record == nil {
		s.mu.Unlock()
		return errors.SetCustomError(constant.ErrNoBidFound)
	}

	record.Price = record.CounterPrice
	record.CounterOffered = false
	record.Approved = true
	s.mu.Unlock()

	return s.completePurchase(ctx, storeID, productID, record)
}

func (s *bidAppImpl) DeclineCounterOffer(ctx context.Context, storeID, productID string, bidderID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.findCountered(storeID, productID, bidderID)
	if record == nil {
		return errors.SetCustomError(constant.ErrNoBidFound)
	}

	record.Rejected = true
	return nil
}

func (s *bidAppImpl) GetBidStatus(ctx context.Context, storeID, productID string, bidderID uint64) (*model.BidStatusResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.bids[bidKey{storeID: storeID, productID: productID}]
	for _, record := range records {
		if record.BidderID != bidderID {
			continue
		}
		resp := &model.BidStatusResponse{
			Status: record.Status(),
			Price:  record.Price,
		}
		if record.CounterOffered {
			resp.CounterPrice = record.CounterPrice
		}
		return resp, nil
	}
	return nil, errors.SetCustomError(constant.ErrNoBidFound)
}

// findActive returns the bidder's first record that still accepts transitions.
// Callers must hold s.mu.
func (s *bidAppImpl) findActive(storeID, productID string, bidderID uint64) *model.BidRecord {
	for _, record := range s.bids[bidKey{storeID: storeID, productID: productID}] {
		if record.BidderID == bidderID && !record.Terminal() {
			return record
		}
	}
	return nil
}

// findCountered returns the bidder's first record with a pending counter-offer.
// Callers must hold s.mu.
func (s *bidAppImpl) findCountered(storeID, productID string, bidderID uint64) *model.BidRecord {
	for _, record := range s.bids[bidKey{storeID: storeID, productID: productID}] {
		if record.BidderID == bidderID && record.CounterOffered && !record.Rejected {
			return record
		}
	}
	return nil
}

// completePurchase reserves one unit and hands the bid to the purchase executor.
// Callers must have marked the record approved and released s.mu: an approved
// record is terminal, so its fields are stable while payment and shipment run
// without the coordinator lock. The approved flag stays committed whatever
// happens downstream.
func (s *bidAppImpl) completePurchase(ctx context.Context, storeID, productID string, record *model.BidRecord) error {
	reservation := model.NewStockReservationRequest(storeID, record.ListingID, 1)
	if err := s.listingRepo.Reserve(ctx, reservation); err != nil {
		logger.Error("[completePurchase] reserve unit", zap.String("store_id", storeID), zap.String("product_id", productID), zap.String("error", err.Error()))
		s.notify(record.BidderID, "Your approved bid could not be completed: stock unavailable")
		return errors.SetCustomError(constant.ErrStockUnavailable)
	}

	_, err := s.purchaseApp.Execute(ctx, &purchaseapp.ExecuteInput{
		BuyerID: record.BidderID,
		Lines: []model.PurchaseLine{{
			StoreID:   storeID,
			ListingID: record.ListingID,
			ProductID: productID,
			Quantity:  1,
			UnitPrice: record.Price,
		}},
		ShippingAddress: record.ShippingAddress,
		ContactInfo:     record.ContactInfo,
		PaymentDetails:  record.PaymentDetails,
		Source:          constant.PurchaseSourceBid,
		StockReserved:   true,
	})
	if err != nil {
		// The executor already restored the reserved unit.
		return err
	}

	s.mu.Lock()
	record.Purchased = true
	s.mu.Unlock()

	s.notify(record.BidderID, fmt.Sprintf("Your bid was approved and the purchase completed at %.2f", record.Price))
	return nil
}

func (s *bidAppImpl) notify(userID uint64, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(userID, message); err != nil {
		logger.Warn("[notify] send notification", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
	}
}
