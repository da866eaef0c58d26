package listing_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	listingrepo "github.com/muhammadheryan/marketplace/repository/listing"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
)

func errCode(t *testing.T, err error) string {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	return ce.ErrorCode()
}

func seedListing(t *testing.T, repo listingrepo.ListingRepository, storeID string, quantity int) *model.Listing {
	t.Helper()
	l, err := repo.Create(context.Background(), &model.CreateListingRequest{
		StoreID:   storeID,
		ProductID: "p-" + storeID,
		Name:      "test product",
		Price:     100,
		Quantity:  quantity,
	})
	if err != nil {
		t.Fatalf("seed listing: %v", err)
	}
	return l
}

func TestReserve_InvalidReference(t *testing.T) {
	repo := listingrepo.NewListingRepository()
	l := seedListing(t, repo, "s1", 10)

	tests := []struct {
		name string
		req  *model.StockReservationRequest
	}{
		{
			name: "unknown listing",
			req:  model.NewStockReservationRequest("s1", "missing", 1),
		},
		{
			name: "listing owned by another store",
			req:  model.NewStockReservationRequest("s2", l.ID, 1),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Reserve(context.Background(), tt.req)
			if err == nil {
				t.Fatal("Reserve() expected error, got nil")
			}
			if got, want := errCode(t, err), constant.ErrorTypeCode[constant.ErrInvalidReference]; got != want {
				t.Fatalf("error code = %s, want %s", got, want)
			}
			got, _ := repo.GetByID(context.Background(), l.ID)
			if got.QuantityAvailable != 10 {
				t.Fatalf("quantity = %d, want untouched 10", got.QuantityAvailable)
			}
		})
	}
}

func TestReserve_InsufficientStockIsAllOrNothing(t *testing.T) {
	repo := listingrepo.NewListingRepository()
	a := seedListing(t, repo, "s1", 10)
	b := seedListing(t, repo, "s2", 1)

	req := &model.StockReservationRequest{Stores: map[string]map[string]int{
		"s1": {a.ID: 5},
		"s2": {b.ID: 2},
	}}
	err := repo.Reserve(context.Background(), req)
	if err == nil {
		t.Fatal("Reserve() expected error, got nil")
	}
	if got, want := errCode(t, err), constant.ErrorTypeCode[constant.ErrInsufficientStock]; got != want {
		t.Fatalf("error code = %s, want %s", got, want)
	}

	// The covered listing must not have been decremented.
	gotA, _ := repo.GetByID(context.Background(), a.ID)
	if gotA.QuantityAvailable != 10 {
		t.Fatalf("listing a quantity = %d, want 10", gotA.QuantityAvailable)
	}
}

func TestReserveRestore_Inverse(t *testing.T) {
	repo := listingrepo.NewListingRepository()
	a := seedListing(t, repo, "s1", 10)
	b := seedListing(t, repo, "s1", 7)

	req := &model.StockReservationRequest{Stores: map[string]map[string]int{
		"s1": {a.ID: 3, b.ID: 7},
	}}
	if err := repo.Reserve(context.Background(), req); err != nil {
		t.Fatalf("Reserve() error = %v", err)
	}
	gotB, _ := repo.GetByID(context.Background(), b.ID)
	if gotB.QuantityAvailable != 0 {
		t.Fatalf("listing b quantity = %d, want 0", gotB.QuantityAvailable)
	}

	if err := repo.Restore(context.Background(), req); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	gotA, _ := repo.GetByID(context.Background(), a.ID)
	gotB, _ = repo.GetByID(context.Background(), b.ID)
	if gotA.QuantityAvailable != 10 || gotB.QuantityAvailable != 7 {
		t.Fatalf("quantities = %d/%d, want 10/7", gotA.QuantityAvailable, gotB.QuantityAvailable)
	}
}

func TestReserve_ConcurrentNoOversell(t *testing.T) {
	repo := listingrepo.NewListingRepository()
	l := seedListing(t, repo, "s1", 10)

	const callers = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, insufficient := 0, 0

	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			err := repo.Reserve(context.Background(), model.NewStockReservationRequest("s1", l.ID, 1))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return
			}
			var ce cerr.CustomError
			if errors.As(err, &ce) && ce.ErrorCode() == constant.ErrorTypeCode[constant.ErrInsufficientStock] {
				insufficient++
			}
		}()
	}
	wg.Wait()

	if succeeded != 10 {
		t.Errorf("succeeded = %d, want exactly 10", succeeded)
	}
	if insufficient != 10 {
		t.Errorf("insufficient = %d, want exactly 10", insufficient)
	}
	got, _ := repo.GetByID(context.Background(), l.ID)
	if got.QuantityAvailable != 0 {
		t.Errorf("final quantity = %d, want 0", got.QuantityAvailable)
	}
}

// Two batches touching the same pair of listings, submitted from independent
// goroutines in opposite orders, must both terminate.
func TestReserve_OverlappingBatchesTerminate(t *testing.T) {
	repo := listingrepo.NewListingRepository()
	a := seedListing(t, repo, "s1", 1000)
	b := seedListing(t, repo, "s2", 1000)

	forward := &model.StockReservationRequest{Stores: map[string]map[string]int{
		"s1": {a.ID: 1}, "s2": {b.ID: 1},
	}}
	backward := &model.StockReservationRequest{Stores: map[string]map[string]int{
		"s2": {b.ID: 1}, "s1": {a.ID: 1},
	}}

	const rounds = 500
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			if err := repo.Reserve(context.Background(), forward); err != nil {
				t.Errorf("forward Reserve() error = %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			if err := repo.Reserve(context.Background(), backward); err != nil {
				t.Errorf("backward Reserve() error = %v", err)
				return
			}
		}
	}()
	wg.Wait()

	gotA, _ := repo.GetByID(context.Background(), a.ID)
	gotB, _ := repo.GetByID(context.Background(), b.ID)
	if gotA.QuantityAvailable != 0 || gotB.QuantityAvailable != 0 {
		t.Errorf("quantities = %d/%d, want 0/0", gotA.QuantityAvailable, gotB.QuantityAvailable)
	}
}
