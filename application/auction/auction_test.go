package auction_test

import (
	"context"
	goerrors "errors"
	"testing"
	"time"

	appauction "github.com/muhammadheryan/marketplace/application/auction"
	apppurchase "github.com/muhammadheryan/marketplace/application/purchase"
	"github.com/muhammadheryan/marketplace/constant"
	purchaseappmocks "github.com/muhammadheryan/marketplace/mocks/application/purchase"
	"github.com/muhammadheryan/marketplace/model"
	listingrepo "github.com/muhammadheryan/marketplace/repository/listing"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

type fixture struct {
	listingRepo *listingrepo.Memory
	purchaseApp *purchaseappmocks.PurchaseApp
	notifier    *purchaseappmocks.Notifier
	app         appauction.AuctionApp
}

func newFixture(t *testing.T, minDuration time.Duration) *fixture {
	t.Helper()
	f := &fixture{
		listingRepo: listingrepo.NewListingRepository(),
		purchaseApp: purchaseappmocks.NewPurchaseApp(t),
		notifier:    purchaseappmocks.NewNotifier(t),
	}
	f.app = appauction.NewAuctionApp(minDuration, f.listingRepo, f.purchaseApp, nil, f.notifier)
	return f
}

func (f *fixture) seedListing(t *testing.T, storeID string, quantity int) *model.Listing {
	t.Helper()
	l, err := f.listingRepo.Create(context.Background(), &model.CreateListingRequest{
		StoreID:   storeID,
		ProductID: "prod-1",
		Name:      "Painting",
		Price:     100,
		Quantity:  quantity,
	})
	if err != nil {
		t.Fatalf("seed listing: %v", err)
	}
	return l
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !goerrors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func offerReq(storeID, productID string, price float64) *model.SubmitOfferRequest {
	return &model.SubmitOfferRequest{
		StoreID:         storeID,
		ProductID:       productID,
		Price:           price,
		ShippingAddress: "1 Main St",
		ContactInfo:     "bidder@example.com",
		PaymentDetails:  "card-42",
	}
}

func TestOpen_Validation(t *testing.T) {
	f := newFixture(t, time.Minute)
	l := f.seedListing(t, "store-1", 3)

	tests := []struct {
		name    string
		req     *model.OpenAuctionRequest
		errCode constant.ErrorType
	}{
		{
			name: "error: end time in the past",
			req: &model.OpenAuctionRequest{
				StoreID: "store-1", ListingID: l.ID, ProductID: "prod-1",
				StartingPrice: 100, EndTime: time.Now().Add(-time.Minute),
			},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: duration below minimum",
			req: &model.OpenAuctionRequest{
				StoreID: "store-1", ListingID: l.ID, ProductID: "prod-1",
				StartingPrice: 100, EndTime: time.Now().Add(time.Second),
			},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown listing",
			req: &model.OpenAuctionRequest{
				StoreID: "store-1", ListingID: "missing", ProductID: "prod-1",
				StartingPrice: 100, EndTime: time.Now().Add(time.Hour),
			},
			errCode: constant.ErrInvalidReference,
		},
		{
			name: "error: listing belongs to another store",
			req: &model.OpenAuctionRequest{
				StoreID: "store-2", ListingID: l.ID, ProductID: "prod-1",
				StartingPrice: 100, EndTime: time.Now().Add(time.Hour),
			},
			errCode: constant.ErrInvalidReference,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := f.app.Open(context.Background(), tt.req)
			assertErrCode(t, err, tt.errCode)
		})
	}
}

func TestOpen_DuplicateAuction(t *testing.T) {
	f := newFixture(t, time.Minute)
	l := f.seedListing(t, "store-1", 3)

	req := &model.OpenAuctionRequest{
		StoreID: "store-1", ListingID: l.ID, ProductID: "prod-1",
		StartingPrice: 100, EndTime: time.Now().Add(time.Hour),
	}
	if err := f.app.Open(context.Background(), req); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	assertErrCode(t, f.app.Open(context.Background(), req), constant.ErrInvalidRequest)
}

func TestSubmitOffer_MustExceedCurrentMax(t *testing.T) {
	f := newFixture(t, time.Minute)
	l := f.seedListing(t, "store-1", 3)

	err := f.app.Open(context.Background(), &model.OpenAuctionRequest{
		StoreID: "store-1", ListingID: l.ID, ProductID: "prod-1",
		StartingPrice: 100, EndTime: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	// The first offer only has to be positive, even below the starting price.
	if err := f.app.SubmitOffer(context.Background(), 1, offerReq("store-1", "prod-1", 10)); err != nil {
		t.Fatalf("SubmitOffer() error = %v", err)
	}

	assertErrCode(t, f.app.SubmitOffer(context.Background(), 2, offerReq("store-1", "prod-1", 10)), constant.ErrOfferTooLow)
	assertErrCode(t, f.app.SubmitOffer(context.Background(), 2, offerReq("store-1", "prod-1", 5)), constant.ErrOfferTooLow)

	f.notifier.On("Notify", uint64(1), mock.AnythingOfType("string")).Return(nil).Once()
	if err := f.app.SubmitOffer(context.Background(), 2, offerReq("store-1", "prod-1", 15)); err != nil {
		t.Fatalf("SubmitOffer() error = %v", err)
	}

	status, err := f.app.Status(context.Background(), "store-1", "prod-1")
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if status.CurrentMaxOffer != 15 {
		t.Fatalf("current max = %v, want 15", status.CurrentMaxOffer)
	}
}

func TestSubmitOffer_UnknownAuction(t *testing.T) {
	f := newFixture(t, time.Minute)
	assertErrCode(t, f.app.SubmitOffer(context.Background(), 1, offerReq("store-1", "prod-1", 10)), constant.ErrAuctionNotActive)
}

func TestStatus_FallsBackToStartingPrice(t *testing.T) {
	f := newFixture(t, time.Minute)
	l := f.seedListing(t, "store-1", 3)

	err := f.app.Open(context.Background(), &model.OpenAuctionRequest{
		StoreID: "store-1", ListingID: l.ID, ProductID: "prod-1",
		StartingPrice: 100, EndTime: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	status, err := f.app.Status(context.Background(), "store-1", "prod-1")
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if status.CurrentMaxOffer != 100 {
		t.Fatalf("current max = %v, want starting price 100", status.CurrentMaxOffer)
	}
	if status.TimeLeft <= 0 {
		t.Fatalf("time left = %v, want positive", status.TimeLeft)
	}

	// Once an offer exists the maximum offer is reported, even below the
	// starting price.
	if err := f.app.SubmitOffer(context.Background(), 1, offerReq("store-1", "prod-1", 10)); err != nil {
		t.Fatalf("SubmitOffer() error = %v", err)
	}
	status, err = f.app.Status(context.Background(), "store-1", "prod-1")
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if status.CurrentMaxOffer != 10 {
		t.Fatalf("current max = %v, want 10", status.CurrentMaxOffer)
	}

	_, err = f.app.Status(context.Background(), "store-1", "missing")
	assertErrCode(t, err, constant.ErrAuctionNotActive)
}

func TestClose_BeforeEndTime(t *testing.T) {
	f := newFixture(t, time.Minute)
	l := f.seedListing(t, "store-1", 3)

	err := f.app.Open(context.Background(), &model.OpenAuctionRequest{
		StoreID: "store-1", ListingID: l.ID, ProductID: "prod-1",
		StartingPrice: 100, EndTime: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	_, err = f.app.Close(context.Background(), "store-1", "prod-1")
	assertErrCode(t, err, constant.ErrAuctionStillOpen)
}

func TestClose_WinnerPurchase(t *testing.T) {
	f := newFixture(t, time.Millisecond)
	l := f.seedListing(t, "store-1", 3)

	err := f.app.Open(context.Background(), &model.OpenAuctionRequest{
		StoreID: "store-1", ListingID: l.ID, ProductID: "prod-1",
		StartingPrice: 100, EndTime: time.Now().Add(100 * time.Millisecond),
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if err := f.app.SubmitOffer(context.Background(), 1, offerReq("store-1", "prod-1", 120)); err != nil {
		t.Fatalf("SubmitOffer() error = %v", err)
	}
	f.notifier.On("Notify", uint64(1), mock.AnythingOfType("string")).Return(nil).Times(2) // outbid, then lost
	if err := f.app.SubmitOffer(context.Background(), 2, offerReq("store-1", "prod-1", 150)); err != nil {
		t.Fatalf("SubmitOffer() error = %v", err)
	}

	f.purchaseApp.
		On("Execute", mock.Anything, mock.MatchedBy(func(input *apppurchase.ExecuteInput) bool {
			return input.BuyerID == 2 &&
				len(input.Lines) == 1 &&
				input.Lines[0].ListingID == l.ID &&
				input.Lines[0].Quantity == 1 &&
				input.Lines[0].UnitPrice == 150 &&
				input.Source == constant.PurchaseSourceAuction &&
				input.StockReserved
		})).
		Return(&model.PurchaseRecord{ID: "purchase-1", BuyerID: 2}, nil).
		Once()
	f.notifier.On("Notify", uint64(2), mock.AnythingOfType("string")).Return(nil).Once() // winner

	// The scheduled close fires once the deadline passes.
	time.Sleep(300 * time.Millisecond)

	_, err = f.app.Status(context.Background(), "store-1", "prod-1")
	assertErrCode(t, err, constant.ErrAuctionNotActive)

	// Close already resolved the auction; a second resolution is rejected.
	_, err = f.app.Close(context.Background(), "store-1", "prod-1")
	assertErrCode(t, err, constant.ErrAuctionNotActive)

	// One unit was reserved for the winner before the executor took over.
	remaining, err := f.listingRepo.GetByID(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}
	if remaining.QuantityAvailable != 2 {
		t.Fatalf("remaining stock = %d, want 2", remaining.QuantityAvailable)
	}
}

func TestClose_NoOffers(t *testing.T) {
	f := newFixture(t, time.Millisecond)
	l := f.seedListing(t, "store-1", 3)

	err := f.app.Open(context.Background(), &model.OpenAuctionRequest{
		StoreID: "store-1", ListingID: l.ID, ProductID: "prod-1",
		StartingPrice: 100, EndTime: time.Now().Add(50 * time.Millisecond),
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	// Closed without a winner: no purchase, stock untouched, state removed.
	_, err = f.app.Status(context.Background(), "store-1", "prod-1")
	assertErrCode(t, err, constant.ErrAuctionNotActive)

	remaining, err := f.listingRepo.GetByID(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("get listing: %v", err)
	}
	if remaining.QuantityAvailable != 3 {
		t.Fatalf("remaining stock = %d, want 3", remaining.QuantityAvailable)
	}
}

func TestClose_StockUnavailable(t *testing.T) {
	f := newFixture(t, time.Millisecond)
	l := f.seedListing(t, "store-1", 0)

	err := f.app.Open(context.Background(), &model.OpenAuctionRequest{
		StoreID: "store-1", ListingID: l.ID, ProductID: "prod-1",
		StartingPrice: 100, EndTime: time.Now().Add(50 * time.Millisecond),
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if err := f.app.SubmitOffer(context.Background(), 1, offerReq("store-1", "prod-1", 120)); err != nil {
		t.Fatalf("SubmitOffer() error = %v", err)
	}
	f.notifier.On("Notify", uint64(1), mock.AnythingOfType("string")).Return(nil).Once()

	time.Sleep(200 * time.Millisecond)

	// The reservation failed, so the executor never ran and the auction is gone.
	_, err = f.app.Status(context.Background(), "store-1", "prod-1")
	assertErrCode(t, err, constant.ErrAuctionNotActive)
}
