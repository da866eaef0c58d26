package listing

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/utils/errors"
)

// ListingRepository is the inventory ledger. Reserve and Restore operate on a
// multi-store batch as one atomic unit: either every targeted listing is mutated
// or none is.
type ListingRepository interface {
	Create(ctx context.Context, req *model.CreateListingRequest) (*model.Listing, error)
	GetByID(ctx context.Context, listingID string) (*model.Listing, error)
	ListByStore(ctx context.Context, storeID string) ([]model.Listing, error)
	SetActive(ctx context.Context, listingID string, active bool) error
	Remove(ctx context.Context, listingID string) error
	Reserve(ctx context.Context, req *model.StockReservationRequest) error
	Restore(ctx context.Context, req *model.StockReservationRequest) error
}

// entry pairs a listing with its own lock. Reserve/Restore lock entries in
// listing-id order, which rules out circular waits between overlapping batches.
type entry struct {
	mu      sync.Mutex
	listing model.Listing
}

type Memory struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewListingRepository returns an in-memory ledger instance. Each instance owns
// its own state; nothing is process-global.
func NewListingRepository() *Memory {
	return &Memory{entries: make(map[string]*entry)}
}

func (r *Memory) Create(ctx context.Context, req *model.CreateListingRequest) (*model.Listing, error) {
	l := model.Listing{
		ID:                uuid.New().String(),
		StoreID:           req.StoreID,
		ProductID:         req.ProductID,
		Name:              req.Name,
		Category:          req.Category,
		Description:       req.Description,
		Price:             req.Price,
		QuantityAvailable: req.Quantity,
		Active:            true,
	}

	r.mu.Lock()
	r.entries[l.ID] = &entry{listing: l}
	r.mu.Unlock()

	out := l
	return &out, nil
}

func (r *Memory) GetByID(ctx context.Context, listingID string) (*model.Listing, error) {
	r.mu.RLock()
	e, ok := r.entries[listingID]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	e.mu.Lock()
	out := e.listing
	e.mu.Unlock()
	return &out, nil
}

func (r *Memory) ListByStore(ctx context.Context, storeID string) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Listing, 0)
	for _, e := range r.entries {
		e.mu.Lock()
		if e.listing.StoreID == storeID {
			out = append(out, e.listing)
		}
		e.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Memory) SetActive(ctx context.Context, listingID string, active bool) error {
	r.mu.RLock()
	e, ok := r.entries[listingID]
	r.mu.RUnlock()
	if !ok {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	e.mu.Lock()
	e.listing.Active = active
	e.mu.Unlock()
	return nil
}

func (r *Memory) Remove(ctx context.Context, listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[listingID]; !ok {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	delete(r.entries, listingID)
	return nil
}

// Reserve decrements the available quantity of every listing in the request, or
// none of them. Fails with ErrInvalidReference when a listing is missing or owned
// by a different store, and with ErrInsufficientStock when any listing cannot
// cover its requested quantity.
func (r *Memory) Reserve(ctx context.Context, req *model.StockReservationRequest) error {
	return r.apply(req, false)
}

// Restore is the exact inverse of Reserve.
func (r *Memory) Restore(ctx context.Context, req *model.StockReservationRequest) error {
	return r.apply(req, true)
}

type target struct {
	e        *entry
	quantity int
}

func (r *Memory) apply(req *model.StockReservationRequest, restore bool) error {
	if req == nil || len(req.Stores) == 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// Resolve every (store, listing) pair up front, failing fast before any lock
	// is taken.
	targets := make([]target, 0)
	r.mu.RLock()
	for storeID, listings := range req.Stores {
		for listingID, quantity := range listings {
			if quantity <= 0 {
				r.mu.RUnlock()
				return errors.SetCustomError(constant.ErrInvalidRequest)
			}
			e, ok := r.entries[listingID]
			if !ok || e.listing.StoreID != storeID {
				r.mu.RUnlock()
				return errors.SetCustomError(constant.ErrInvalidReference)
			}
			targets = append(targets, target{e: e, quantity: quantity})
		}
	}
	r.mu.RUnlock()

	// Lock the distinct listings in id order. Every contender locks in the same
	// order, so overlapping batches serialize instead of deadlocking.
	sort.Slice(targets, func(i, j int) bool { return targets[i].e.listing.ID < targets[j].e.listing.ID })
	locked := make([]*entry, 0, len(targets))
	for _, t := range targets {
		if len(locked) > 0 && locked[len(locked)-1] == t.e {
			continue
		}
		locked = append(locked, t.e)
	}
	for _, e := range locked {
		e.mu.Lock()
	}
	defer func() {
		for i := len(locked) - 1; i >= 0; i-- {
			locked[i].mu.Unlock()
		}
	}()

	if !restore {
		// Validate everything before mutating anything.
		for _, t := range targets {
			if t.e.listing.QuantityAvailable < t.quantity {
				return errors.SetCustomError(constant.ErrInsufficientStock)
			}
		}
	}

	for _, t := range targets {
		if restore {
			t.e.listing.QuantityAvailable += t.quantity
		} else {
			t.e.listing.QuantityAvailable -= t.quantity
		}
	}
	return nil
}
