package cart

import (
	"context"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	listingrepo "github.com/muhammadheryan/marketplace/repository/listing"
	redisrepo "github.com/muhammadheryan/marketplace/repository/redis"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type CartApp interface {
	AddItem(ctx context.Context, userID uint64, req *model.AddCartItemRequest) error
	View(ctx context.Context, userID uint64) (*model.Cart, error)
	Clear(ctx context.Context, userID uint64) error
}

type cartAppImpl struct {
	listingRepo listingrepo.ListingRepository
	redisRepo   redisrepo.Repository
}

func NewCartApp(listingRepo listingrepo.ListingRepository, redisRepo redisrepo.Repository) CartApp {
	return &cartAppImpl{listingRepo: listingRepo, redisRepo: redisRepo}
}

// AddItem verifies the listing before anything lands in the cart; pricing and
// stock are resolved later, at checkout.
func (s *cartAppImpl) AddItem(ctx context.Context, userID uint64, req *model.AddCartItemRequest) error {
	l, err := s.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil || l.StoreID != req.StoreID || !l.Active {
		return errors.SetCustomError(constant.ErrInvalidReference)
	}

	if err := s.redisRepo.AddCartItem(ctx, userID, req.StoreID, req.ListingID, req.Quantity); err != nil {
		logger.Error("[AddItem] add cart item", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *cartAppImpl) View(ctx context.Context, userID uint64) (*model.Cart, error) {
	cart, err := s.redisRepo.GetCart(ctx, userID)
	if err != nil {
		logger.Error("[View] get cart", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return cart, nil
}

func (s *cartAppImpl) Clear(ctx context.Context, userID uint64) error {
	if err := s.redisRepo.ClearCart(ctx, userID); err != nil {
		logger.Error("[Clear] clear cart", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
