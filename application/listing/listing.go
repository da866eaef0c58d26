package listing

import (
	"context"

	"github.com/muhammadheryan/marketplace/model"
	listingrepo "github.com/muhammadheryan/marketplace/repository/listing"
)

type ListingApp interface {
	Create(ctx context.Context, req *model.CreateListingRequest) (*model.Listing, error)
	Get(ctx context.Context, listingID string) (*model.Listing, error)
	ListByStore(ctx context.Context, storeID string) ([]model.Listing, error)
	SetActive(ctx context.Context, listingID string, active bool) error
	Remove(ctx context.Context, listingID string) error
}

type listingAppImpl struct {
	listingRepo listingrepo.ListingRepository
}

func NewListingApp(listingRepo listingrepo.ListingRepository) ListingApp {
	return &listingAppImpl{listingRepo: listingRepo}
}

func (s *listingAppImpl) Create(ctx context.Context, req *model.CreateListingRequest) (*model.Listing, error) {
	return s.listingRepo.Create(ctx, req)
}

func (s *listingAppImpl) Get(ctx context.Context, listingID string) (*model.Listing, error) {
	return s.listingRepo.GetByID(ctx, listingID)
}

func (s *listingAppImpl) ListByStore(ctx context.Context, storeID string) ([]model.Listing, error) {
	return s.listingRepo.ListByStore(ctx, storeID)
}

func (s *listingAppImpl) SetActive(ctx context.Context, listingID string, active bool) error {
	return s.listingRepo.SetActive(ctx, listingID, active)
}

func (s *listingAppImpl) Remove(ctx context.Context, listingID string) error {
	return s.listingRepo.Remove(ctx, listingID)
}
