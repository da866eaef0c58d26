package transport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	auctionapp "github.com/muhammadheryan/marketplace/application/auction"
	bidapp "github.com/muhammadheryan/marketplace/application/bid"
	cartapp "github.com/muhammadheryan/marketplace/application/cart"
	listingapp "github.com/muhammadheryan/marketplace/application/listing"
	purchaseapp "github.com/muhammadheryan/marketplace/application/purchase"
	userapp "github.com/muhammadheryan/marketplace/application/user"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
	validatorx "github.com/muhammadheryan/marketplace/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp     userapp.UserApp
	ListingApp  listingapp.ListingApp
	CartApp     cartapp.CartApp
	PurchaseApp purchaseapp.PurchaseApp
	AuctionApp  auctionapp.AuctionApp
	BidApp      bidapp.BidApp
}

func NewTransport(userApp userapp.UserApp, listingApp listingapp.ListingApp, cartApp cartapp.CartApp, purchaseApp purchaseapp.PurchaseApp, auctionApp auctionapp.AuctionApp, bidApp bidapp.BidApp, internalKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:     userApp,
		ListingApp:  listingApp,
		CartApp:     cartApp,
		PurchaseApp: purchaseApp,
		AuctionApp:  auctionApp,
		BidApp:      bidApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)

	mux.HandleFunc("/v1/listings", rh.CreateListing).Methods(http.MethodPost)
	mux.HandleFunc("/v1/listings/{id}", rh.GetListing).Methods(http.MethodGet)
	mux.HandleFunc("/v1/listings/{id}/active", rh.SetListingActive).Methods(http.MethodPatch)
	mux.HandleFunc("/v1/listings/{id}", rh.RemoveListing).Methods(http.MethodDelete)
	mux.HandleFunc("/v1/stores/{storeID}/listings", rh.ListStoreListings).Methods(http.MethodGet)

	mux.HandleFunc("/v1/cart/items", rh.AddCartItem).Methods(http.MethodPost)
	mux.HandleFunc("/v1/cart", rh.ViewCart).Methods(http.MethodGet)
	mux.HandleFunc("/v1/cart", rh.ClearCart).Methods(http.MethodDelete)

	mux.HandleFunc("/v1/checkout", rh.Checkout).Methods(http.MethodPost)
	mux.HandleFunc("/v1/purchases", rh.ListPurchases).Methods(http.MethodGet)
	mux.HandleFunc("/v1/stores/{storeID}/purchases", rh.ListStorePurchases).Methods(http.MethodGet)

	mux.HandleFunc("/v1/auctions", rh.OpenAuction).Methods(http.MethodPost)
	mux.HandleFunc("/v1/auctions/offers", rh.SubmitOffer).Methods(http.MethodPost)
	mux.HandleFunc("/v1/auctions/status", rh.AuctionStatus).Methods(http.MethodGet)

	mux.HandleFunc("/v1/bids", rh.SubmitBid).Methods(http.MethodPost)
	mux.HandleFunc("/v1/bids/approve", rh.ApproveBid).Methods(http.MethodPost)
	mux.HandleFunc("/v1/bids/reject", rh.RejectBid).Methods(http.MethodPost)
	mux.HandleFunc("/v1/bids/counter", rh.ProposeCounterBid).Methods(http.MethodPost)
	mux.HandleFunc("/v1/bids/counter/accept", rh.AcceptCounterOffer).Methods(http.MethodPost)
	mux.HandleFunc("/v1/bids/counter/decline", rh.DeclineCounterOffer).Methods(http.MethodPost)
	mux.HandleFunc("/v1/bids/status", rh.BidStatus).Methods(http.MethodGet)

	// Internal routes, called service-to-service with a static key
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalKey))
	internal.HandleFunc("/v1/auction/close", rh.CloseAuction).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(userApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} transport.Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} transport.Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Invalidate the current session
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.Response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := s.UserApp.Logout(ctx, token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// CreateListing handler
// @Summary Create listing
// @Description Put a product up for sale in a store
// @Tags Listing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateListingRequest true "Create Listing Request"
// @Success 200 {object} model.Listing
// @Failure 400 {object} transport.Response
// @Router /v1/listings [post]
func (s *RestHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ListingApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetListing handler
// @Summary Get listing
// @Tags Listing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} model.Listing
// @Failure 404 {object} transport.Response
// @Router /v1/listings/{id} [get]
func (s *RestHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ListingApp.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SetListingActive handler
// @Summary Activate or deactivate listing
// @Tags Listing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body model.SetListingActiveRequest true "Active flag"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /v1/listings/{id}/active [patch]
func (s *RestHandler) SetListingActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SetListingActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ListingApp.SetActive(ctx, mux.Vars(r)["id"], req.Active); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// RemoveListing handler
// @Summary Remove listing
// @Tags Listing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /v1/listings/{id} [delete]
func (s *RestHandler) RemoveListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.ListingApp.Remove(ctx, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListStoreListings handler
// @Summary List store listings
// @Tags Listing
// @Produce json
// @Security BearerAuth
// @Param storeID path string true "Store ID"
// @Success 200 {array} model.Listing
// @Router /v1/stores/{storeID}/listings [get]
func (s *RestHandler) ListStoreListings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ListingApp.ListByStore(ctx, mux.Vars(r)["storeID"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddCartItem handler
// @Summary Add item to cart
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AddCartItemRequest true "Cart Item"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /v1/cart/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CartApp.AddItem(ctx, userID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ViewCart handler
// @Summary View cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Cart
// @Router /v1/cart [get]
func (s *RestHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.CartApp.View(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ClearCart handler
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.Response
// @Router /v1/cart [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.CartApp.Clear(ctx, userID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// Checkout handler
// @Summary Checkout cart
// @Description Purchase the whole cart: reserve stock, charge, ship
// @Tags Purchase
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CheckoutRequest true "Checkout Request"
// @Success 200 {object} model.CheckoutResponse
// @Failure 400 {object} transport.Response
// @Router /v1/checkout [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PurchaseApp.Checkout(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListPurchases handler
// @Summary List own purchases
// @Tags Purchase
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PurchaseRecord
// @Router /v1/purchases [get]
func (s *RestHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.PurchaseApp.ListByBuyer(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListStorePurchases handler
// @Summary List purchases of a store
// @Tags Purchase
// @Produce json
// @Security BearerAuth
// @Param storeID path string true "Store ID"
// @Success 200 {array} model.PurchaseRecord
// @Router /v1/stores/{storeID}/purchases [get]
func (s *RestHandler) ListStorePurchases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.PurchaseApp.ListByStore(ctx, mux.Vars(r)["storeID"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// OpenAuction handler
// @Summary Open auction
// @Description Start a timed auction for one unit of a listing
// @Tags Auction
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.OpenAuctionRequest true "Open Auction Request"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /v1/auctions [post]
func (s *RestHandler) OpenAuction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.OpenAuctionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AuctionApp.Open(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// SubmitOffer handler
// @Summary Submit auction offer
// @Description Place an offer; it must strictly exceed the current maximum
// @Tags Auction
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SubmitOfferRequest true "Submit Offer Request"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /v1/auctions/offers [post]
func (s *RestHandler) SubmitOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.SubmitOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AuctionApp.SubmitOffer(ctx, userID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// AuctionStatus handler
// @Summary Auction status
// @Tags Auction
// @Produce json
// @Security BearerAuth
// @Param store_id query string true "Store ID"
// @Param product_id query string true "Product ID"
// @Success 200 {object} model.AuctionStatus
// @Failure 404 {object} transport.Response
// @Router /v1/auctions/status [get]
func (s *RestHandler) AuctionStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	storeID := r.URL.Query().Get("store_id")
	productID := r.URL.Query().Get("product_id")
	if storeID == "" || productID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuctionApp.Status(ctx, storeID, productID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CloseAuction handler, hit by the delayed-message consumer as a restart
// backstop. AuctionNotActive here just means the in-process timer won.
func (s *RestHandler) CloseAuction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CloseAuctionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	rec, err := s.AuctionApp.Close(ctx, req.StoreID, req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, rec)
}

// SubmitBid handler
// @Summary Submit bid
// @Description Open a negotiated bid requiring approver sign-off
// @Tags Bid
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SubmitBidRequest true "Submit Bid Request"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /v1/bids [post]
func (s *RestHandler) SubmitBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.SubmitBidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.BidApp.SubmitBid(ctx, userID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ApproveBid handler
// @Summary Approve bid
// @Description Record the caller's approval; the purchase runs once the quorum is complete
// @Tags Bid
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.BidDecisionRequest true "Bid Decision Request"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /v1/bids/approve [post]
func (s *RestHandler) ApproveBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	approverID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.BidDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.BidApp.ApproveBid(ctx, req.StoreID, req.ProductID, req.BidderID, approverID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// RejectBid handler
// @Summary Reject bid
// @Tags Bid
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.BidDecisionRequest true "Bid Decision Request"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /v1/bids/reject [post]
func (s *RestHandler) RejectBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	approverID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.BidDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.BidApp.RejectBid(ctx, req.StoreID, req.ProductID, req.BidderID, approverID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ProposeCounterBid handler
// @Summary Propose counter offer
// @Tags Bid
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CounterBidRequest true "Counter Bid Request"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /v1/bids/counter [post]
func (s *RestHandler) ProposeCounterBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CounterBidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.BidApp.ProposeCounterBid(ctx, req.StoreID, req.ProductID, req.BidderID, req.NewAmount); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// AcceptCounterOffer handler
// @Summary Accept counter offer
// @Tags Bid
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CounterDecisionRequest true "Counter Decision Request"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /v1/bids/counter/accept [post]
func (s *RestHandler) AcceptCounterOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bidderID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CounterDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.BidApp.AcceptCounterOffer(ctx, req.StoreID, req.ProductID, bidderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// DeclineCounterOffer handler
// @Summary Decline counter offer
// @Tags Bid
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CounterDecisionRequest true "Counter Decision Request"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /v1/bids/counter/decline [post]
func (s *RestHandler) DeclineCounterOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bidderID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CounterDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.BidApp.DeclineCounterOffer(ctx, req.StoreID, req.ProductID, bidderID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// BidStatus handler
// @Summary Bid status
// @Tags Bid
// @Produce json
// @Security BearerAuth
// @Param store_id query string true "Store ID"
// @Param product_id query string true "Product ID"
// @Success 200 {object} model.BidStatusResponse
// @Failure 404 {object} transport.Response
// @Router /v1/bids/status [get]
func (s *RestHandler) BidStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bidderID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	storeID := r.URL.Query().Get("store_id")
	productID := r.URL.Query().Get("product_id")
	if storeID == "" || productID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BidApp.GetBidStatus(ctx, storeID, productID, bidderID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
