package purchase

import (
	"context"
	goerrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/marketplace/application/policy"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	listingrepo "github.com/muhammadheryan/marketplace/repository/listing"
	purchaserepo "github.com/muhammadheryan/marketplace/repository/purchase"
	redisrepo "github.com/muhammadheryan/marketplace/repository/redis"
	txrepo "github.com/muhammadheryan/marketplace/repository/tx"
	"github.com/muhammadheryan/marketplace/thirdparty/payment"
	"github.com/muhammadheryan/marketplace/thirdparty/shipment"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

// Notifier is the best-effort notification sink. A notify failure never rolls
// back a purchase.
type Notifier interface {
	Notify(userID uint64, message string) error
}

// ExecuteInput describes one purchase for the executor. Direct checkout builds it
// from the cart; auction close and bid approval build a single-line input with
// stock already reserved.
type ExecuteInput struct {
	BuyerID         uint64
	Lines           []model.PurchaseLine
	ShippingAddress string
	ContactInfo     string
	PaymentDetails  string
	Source          constant.PurchaseSource
	Discount        float64
	// StockReserved marks that the caller already holds the reservation. The
	// executor still restores it when payment or shipment fails.
	StockReserved bool
}

type PurchaseApp interface {
	Checkout(ctx context.Context, userID uint64, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
	Execute(ctx context.Context, input *ExecuteInput) (*model.PurchaseRecord, error)
	ListByBuyer(ctx context.Context, buyerID uint64) ([]model.PurchaseRecord, error)
	ListByStore(ctx context.Context, storeID string) ([]model.PurchaseRecord, error)
}

type purchaseAppImpl struct {
	listingRepo  listingrepo.ListingRepository
	purchaseRepo purchaserepo.PurchaseRepository
	txRepo       txrepo.TxRepository
	redisRepo    redisrepo.Repository
	policy       policy.Evaluator
	payment      payment.Provider
	shipment     shipment.Provider
	notifier     Notifier
}

func NewPurchaseApp(listingRepo listingrepo.ListingRepository, purchaseRepo purchaserepo.PurchaseRepository, txRepo txrepo.TxRepository, redisRepo redisrepo.Repository, policyEval policy.Evaluator, paymentProvider payment.Provider, shipmentProvider shipment.Provider, notifier Notifier) PurchaseApp {
	return &purchaseAppImpl{
		listingRepo:  listingRepo,
		purchaseRepo: purchaseRepo,
		txRepo:       txRepo,
		redisRepo:    redisRepo,
		policy:       policyEval,
		payment:      paymentProvider,
		shipment:     shipmentProvider,
		notifier:     notifier,
	}
}

// Checkout turns the buyer's cart into a purchase: price every line, consult the
// store policy, then run the common reserve-charge-ship-persist pipeline.
func (s *purchaseAppImpl) Checkout(ctx context.Context, userID uint64, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	cart, err := s.redisRepo.GetCart(ctx, userID)
	if err != nil {
		logger.Error("[Checkout] get cart", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if cart.Empty() {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}

	lines, err := s.resolveLines(ctx, cart)
	if err != nil {
		return nil, err
	}

	// Policy runs before any reservation, on the direct path only.
	allowed, discount := s.policy.Evaluate(&policy.CartView{Lines: lines})
	if !allowed {
		logger.Info("[Checkout] purchase blocked by policy", zap.Uint64("user_id", userID))
		return nil, errors.SetCustomError(constant.ErrPurchaseNotAllowed)
	}

	rec, err := s.Execute(ctx, &ExecuteInput{
		BuyerID:         userID,
		Lines:           lines,
		ShippingAddress: req.ShippingAddress,
		ContactInfo:     req.ContactInfo,
		PaymentDetails:  req.PaymentDetails,
		Source:          constant.PurchaseSourceDirect,
		Discount:        discount,
	})
	if err != nil {
		return nil, err
	}

	return &model.CheckoutResponse{
		PurchaseID: rec.ID,
		TotalPrice: rec.TotalPrice,
		TrackingID: rec.TrackingID,
		CreatedAt:  rec.CreatedAt,
	}, nil
}

// Execute is the common tail pipeline: reserve, charge, ship, persist,
// compensate on failure. Every sale path funnels through here.
func (s *purchaseAppImpl) Execute(ctx context.Context, input *ExecuteInput) (*model.PurchaseRecord, error) {
	if len(input.Lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	reservation := reservationFromLines(input.Lines)
	if !input.StockReserved {
		if err := s.listingRepo.Reserve(ctx, reservation); err != nil {
			var ce errors.CustomError
			if goerrors.As(err, &ce) {
				return nil, ce
			}
			logger.Error("[Execute] reserve stock", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	total := 0.0
	for _, line := range input.Lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	total -= input.Discount
	if total < 0 {
		total = 0
	}

	paymentID, err := s.payment.ProcessPayment(input.PaymentDetails, total)
	if err != nil {
		logger.Error("[Execute] process payment", zap.Uint64("buyer_id", input.BuyerID), zap.String("error", err.Error()))
		s.restore(ctx, reservation)
		s.notify(input.BuyerID, "Purchase failed: payment was declined")
		return nil, errors.SetCustomError(constant.ErrPaymentFailed)
	}

	trackingID, err := s.shipment.Ship(input.ShippingAddress, input.ContactInfo, totalItems(input.Lines))
	if err != nil {
		logger.Error("[Execute] ship", zap.Uint64("buyer_id", input.BuyerID), zap.String("error", err.Error()))
		if cancelErr := s.payment.CancelPayment(paymentID); cancelErr != nil {
			logger.Error("[Execute] cancel payment", zap.String("payment_id", paymentID), zap.String("error", cancelErr.Error()))
		}
		s.restore(ctx, reservation)
		s.notify(input.BuyerID, "Purchase failed: shipment could not be arranged")
		return nil, errors.SetCustomError(constant.ErrShipmentFailed)
	}

	rec := &model.PurchaseRecord{
		ID:              uuid.New().String(),
		BuyerID:         input.BuyerID,
		Lines:           input.Lines,
		TotalPrice:      total,
		ShippingAddress: input.ShippingAddress,
		ContactInfo:     input.ContactInfo,
		Source:          input.Source,
		TrackingID:      trackingID,
		CreatedAt:       time.Now(),
	}

	if err := s.persist(ctx, rec); err != nil {
		logger.Error("[Execute] persist purchase", zap.String("error", err.Error()))
		if cancelErr := s.shipment.CancelShipment(trackingID); cancelErr != nil {
			logger.Error("[Execute] cancel shipment", zap.String("tracking_id", trackingID), zap.String("error", cancelErr.Error()))
		}
		if cancelErr := s.payment.CancelPayment(paymentID); cancelErr != nil {
			logger.Error("[Execute] cancel payment", zap.String("payment_id", paymentID), zap.String("error", cancelErr.Error()))
		}
		s.restore(ctx, reservation)
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if input.Source == constant.PurchaseSourceDirect {
		if err := s.redisRepo.ClearCart(ctx, input.BuyerID); err != nil {
			logger.Warn("[Execute] clear cart", zap.Uint64("buyer_id", input.BuyerID), zap.String("error", err.Error()))
		}
	}

	s.notify(input.BuyerID, "Purchase completed, tracking id: "+trackingID)
	return rec, nil
}

func (s *purchaseAppImpl) ListByBuyer(ctx context.Context, buyerID uint64) ([]model.PurchaseRecord, error) {
	records, err := s.purchaseRepo.GetByBuyer(ctx, buyerID)
	if err != nil {
		logger.Error("[ListByBuyer] get purchases", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return records, nil
}

func (s *purchaseAppImpl) ListByStore(ctx context.Context, storeID string) ([]model.PurchaseRecord, error) {
	records, err := s.purchaseRepo.GetByStore(ctx, storeID)
	if err != nil {
		logger.Error("[ListByStore] get purchases", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return records, nil
}

func (s *purchaseAppImpl) resolveLines(ctx context.Context, cart *model.Cart) ([]model.PurchaseLine, error) {
	lines := make([]model.PurchaseLine, 0)
	for storeID, listings := range cart.Stores {
		for listingID, quantity := range listings {
			l, err := s.listingRepo.GetByID(ctx, listingID)
			if err != nil || l.StoreID != storeID || !l.Active {
				return nil, errors.SetCustomError(constant.ErrInvalidReference)
			}
			lines = append(lines, model.PurchaseLine{
				StoreID:   storeID,
				ListingID: listingID,
				ProductID: l.ProductID,
				Quantity:  quantity,
				UnitPrice: l.Price,
			})
		}
	}
	return lines, nil
}

func (s *purchaseAppImpl) persist(ctx context.Context, rec *model.PurchaseRecord) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.purchaseRepo.InsertPurchaseTx(ctx, tx, rec); err != nil {
		return err
	}
	if err := s.txRepo.CommitTx(tx); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *purchaseAppImpl) restore(ctx context.Context, reservation *model.StockReservationRequest) {
	if err := s.listingRepo.Restore(ctx, reservation); err != nil {
		logger.Error("[Execute] restore stock after failure", zap.String("error", err.Error()))
	}
}

func (s *purchaseAppImpl) notify(userID uint64, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(userID, message); err != nil {
		logger.Warn("[Execute] notify", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
	}
}

func reservationFromLines(lines []model.PurchaseLine) *model.StockReservationRequest {
	req := &model.StockReservationRequest{Stores: make(map[string]map[string]int)}
	for _, line := range lines {
		if req.Stores[line.StoreID] == nil {
			req.Stores[line.StoreID] = make(map[string]int)
		}
		req.Stores[line.StoreID][line.ListingID] += line.Quantity
	}
	return req
}

func totalItems(lines []model.PurchaseLine) int {
	total := 0
	for _, line := range lines {
		total += line.Quantity
	}
	return total
}
