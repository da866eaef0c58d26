package auction

import (
	"context"
	"fmt"
	"sync"
	"time"

	purchaseapp "github.com/muhammadheryan/marketplace/application/purchase"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	listingrepo "github.com/muhammadheryan/marketplace/repository/listing"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

// ClosePublisher schedules the durable delayed close message. The in-process
// timer is authoritative; the message is a restart backstop.
type ClosePublisher interface {
	PublishAuctionClose(msg rabbitmq.AuctionCloseMessage) error
}

type AuctionApp interface {
	Open(ctx context.Context, req *model.OpenAuctionRequest) error
	SubmitOffer(ctx context.Context, bidderID uint64, req *model.SubmitOfferRequest) error
	Status(ctx context.Context, storeID, productID string) (*model.AuctionStatus, error)
	Close(ctx context.Context, storeID, productID string) (*model.PurchaseRecord, error)
}

type auctionKey struct {
	storeID   string
	productID string
}

// auctionState is owned exclusively by the coordinator; all access goes through
// the coordinator mutex. The deadline check inside SubmitOffer/Close is the
// single source of truth, not the timer firing.
type auctionState struct {
	listingID     string
	startingPrice float64
	endTime       time.Time
	offers        []model.Offer
	timer         *time.Timer
}

type auctionAppImpl struct {
	mu          sync.Mutex
	auctions    map[auctionKey]*auctionState
	minDuration time.Duration

	listingRepo listingrepo.ListingRepository
	purchaseApp purchaseapp.PurchaseApp
	publisher   ClosePublisher
	notifier    purchaseapp.Notifier
}

// NewAuctionApp returns a coordinator with its own auction map; nothing is
// process-global, so independent instances can coexist.
func NewAuctionApp(minDuration time.Duration, listingRepo listingrepo.ListingRepository, purchaseApp purchaseapp.PurchaseApp, publisher ClosePublisher, notifier purchaseapp.Notifier) AuctionApp {
	return &auctionAppImpl{
		auctions:    make(map[auctionKey]*auctionState),
		minDuration: minDuration,
		listingRepo: listingRepo,
		purchaseApp: purchaseApp,
		publisher:   publisher,
		notifier:    notifier,
	}
}

func (s *auctionAppImpl) Open(ctx context.Context, req *model.OpenAuctionRequest) error {
	delay := time.Until(req.EndTime)
	if delay <= 0 || delay < s.minDuration {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// The listing must exist and belong to the store before the auction opens.
	l, err := s.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil || l.StoreID != req.StoreID {
		return errors.SetCustomError(constant.ErrInvalidReference)
	}

	key := auctionKey{storeID: req.StoreID, productID: req.ProductID}

	s.mu.Lock()
	if _, exists := s.auctions[key]; exists {
		s.mu.Unlock()
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	state := &auctionState{
		listingID:     req.ListingID,
		startingPrice: req.StartingPrice,
		endTime:       req.EndTime,
		offers:        make([]model.Offer, 0),
	}
	state.timer = time.AfterFunc(delay, func() {
		if _, err := s.Close(context.Background(), key.storeID, key.productID); err != nil {
			logger.Error("[Open] scheduled close", zap.String("store_id", key.storeID), zap.String("product_id", key.productID), zap.String("error", err.Error()))
		}
	})
	s.auctions[key] = state
	s.mu.Unlock()

	if s.publisher != nil {
		msg := rabbitmq.AuctionCloseMessage{StoreID: req.StoreID, ProductID: req.ProductID, EndsAt: req.EndTime}
		if err := s.publisher.PublishAuctionClose(msg); err != nil {
			logger.Warn("[Open] publish delayed close", zap.String("error", err.Error()))
		}
	}

	logger.Info("[Open] auction opened", zap.String("store_id", req.StoreID), zap.String("product_id", req.ProductID), zap.Time("end_time", req.EndTime))
	return nil
}

func (s *auctionAppImpl) SubmitOffer(ctx context.Context, bidderID uint64, req *model.SubmitOfferRequest) error {
	key := auctionKey{storeID: req.StoreID, productID: req.ProductID}

	s.mu.Lock()
	state, ok := s.auctions[key]
	if !ok || !time.Now().Before(state.endTime) {
		s.mu.Unlock()
		return errors.SetCustomError(constant.ErrAuctionNotActive)
	}

	// Each offer must strictly exceed the running maximum. The first offer only
	// has to be positive; the starting price is a reporting baseline.
	currentMax := 0.0
	for _, offer := range state.offers {
		if offer.Price > currentMax {
			currentMax = offer.Price
		}
	}
	if req.Price <= currentMax {
		s.mu.Unlock()
		return errors.SetCustomError(constant.ErrOfferTooLow)
	}

	state.offers = append(state.offers, model.Offer{
		BidderID:        bidderID,
		Price:           req.Price,
		ShippingAddress: req.ShippingAddress,
		ContactInfo:     req.ContactInfo,
		PaymentDetails:  req.PaymentDetails,
		PlacedAt:        time.Now(),
	})
	competitors := make([]uint64, 0, len(state.offers)-1)
	for _, offer := range state.offers[:len(state.offers)-1] {
		competitors = append(competitors, offer.BidderID)
	}
	s.mu.Unlock()

	for _, competitor := range competitors {
		s.notify(competitor, fmt.Sprintf("You have been outbid on product %s in store %s, current offer: %.2f", req.ProductID, req.StoreID, req.Price))
	}
	return nil
}

func (s *auctionAppImpl) Status(ctx context.Context, storeID, productID string) (*model.AuctionStatus, error) {
	key := auctionKey{storeID: storeID, productID: productID}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.auctions[key]
	if !ok {
		return nil, errors.SetCustomError(constant.ErrAuctionNotActive)
	}

	// The starting price is only the baseline while no offers were placed; once
	// offers exist the maximum offer is reported even when it is lower.
	currentMax := 0.0
	for _, offer := range state.offers {
		if offer.Price > currentMax {
			currentMax = offer.Price
		}
	}
	if len(state.offers) == 0 {
		currentMax = state.startingPrice
	}
	timeLeft := time.Until(state.endTime)
	if timeLeft < 0 {
		timeLeft = 0
	}
	return &model.AuctionStatus{
		StartingPrice:   state.startingPrice,
		CurrentMaxOffer: currentMax,
		TimeLeft:        timeLeft,
	}, nil
}

// Close resolves the auction exactly once: the state is removed whatever the
// outcome, so a second Close fails AuctionNotActive. With no offers there is no
// winner and no purchase. Otherwise one unit is reserved for the maximal offer
// and handed to the purchase executor.
func (s *auctionAppImpl) Close(ctx context.Context, storeID, productID string) (*model.PurchaseRecord, error) {
	key := auctionKey{storeID: storeID, productID: productID}

	s.mu.Lock()
	state, ok := s.auctions[key]
	if !ok {
		s.mu.Unlock()
		return nil, errors.SetCustomError(constant.ErrAuctionNotActive)
	}
	if time.Now().Before(state.endTime) {
		s.mu.Unlock()
		return nil, errors.SetCustomError(constant.ErrAuctionStillOpen)
	}
	delete(s.auctions, key)
	state.timer.Stop()
	offers := state.offers
	s.mu.Unlock()

	if len(offers) == 0 {
		logger.Info("[Close] auction closed with no offers", zap.String("store_id", storeID), zap.String("product_id", productID))
		return nil, nil
	}

	winner := offers[0]
	for _, offer := range offers[1:] {
		if offer.Price > winner.Price {
			winner = offer
		}
	}

	reservation := model.NewStockReservationRequest(storeID, state.listingID, 1)
	if err := s.listingRepo.Reserve(ctx, reservation); err != nil {
		logger.Error("[Close] reserve winning unit", zap.String("store_id", storeID), zap.String("product_id", productID), zap.String("error", err.Error()))
		s.notify(winner.BidderID, "The auction you won could not be completed: stock unavailable")
		return nil, errors.SetCustomError(constant.ErrStockUnavailable)
	}

	rec, err := s.purchaseApp.Execute(ctx, &purchaseapp.ExecuteInput{
		BuyerID: winner.BidderID,
		Lines: []model.PurchaseLine{{
			StoreID:   storeID,
			ListingID: state.listingID,
			ProductID: productID,
			Quantity:  1,
			UnitPrice: winner.Price,
		}},
		ShippingAddress: winner.ShippingAddress,
		ContactInfo:     winner.ContactInfo,
		PaymentDetails:  winner.PaymentDetails,
		Source:          constant.PurchaseSourceAuction,
		StockReserved:   true,
	})
	if err != nil {
		return nil, err
	}

	s.notify(winner.BidderID, fmt.Sprintf("Congratulations! You won the auction in store %s with offer %.2f", storeID, winner.Price))
	for _, offer := range offers {
		if offer.BidderID != winner.BidderID {
			s.notify(offer.BidderID, fmt.Sprintf("You lost the auction in store %s, winning offer: %.2f", storeID, winner.Price))
		}
	}
	return rec, nil
}

func (s *auctionAppImpl) notify(userID uint64, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(userID, message); err != nil {
		logger.Warn("[notify] send notification", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
	}
}
