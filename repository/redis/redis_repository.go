package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	redisclient "github.com/muhammadheryan/marketplace/cmd/redis"
	"github.com/muhammadheryan/marketplace/model"
)

// Repository defines methods for interacting with Redis key-values: auth sessions
// and per-buyer shopping carts.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	AddCartItem(ctx context.Context, userID uint64, storeID, listingID string, quantity int) error
	GetCart(ctx context.Context, userID uint64) (*model.Cart, error)
	ClearCart(ctx context.Context, userID uint64) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Set(ctx, key, userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	key := "session:" + sessionID
	val, err := client.Get(ctx, key).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Del(ctx, key).Err()
}

// AddCartItem increments a cart line inside the buyer's cart hash.
// Fields are "storeID|listingID", values are quantities.
func (r *redis) AddCartItem(ctx context.Context, userID uint64, storeID, listingID string, quantity int) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := cartKey(userID)
	field := storeID + "|" + listingID
	return client.HIncrBy(ctx, key, field, int64(quantity)).Err()
}

// GetCart reads the whole cart hash back into store -> listing -> quantity form.
func (r *redis) GetCart(ctx context.Context, userID uint64) (*model.Cart, error) {
	client := redisclient.Get()
	if client == nil {
		return &model.Cart{Stores: map[string]map[string]int{}}, nil
	}
	fields, err := client.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	cart := &model.Cart{Stores: make(map[string]map[string]int)}
	for field, raw := range fields {
		parts := strings.SplitN(field, "|", 2)
		if len(parts) != 2 {
			continue
		}
		quantity, err := strconv.Atoi(raw)
		if err != nil || quantity <= 0 {
			continue
		}
		storeID, listingID := parts[0], parts[1]
		if cart.Stores[storeID] == nil {
			cart.Stores[storeID] = make(map[string]int)
		}
		cart.Stores[storeID][listingID] += quantity
	}
	return cart, nil
}

// ClearCart drops the buyer's cart hash entirely.
func (r *redis) ClearCart(ctx context.Context, userID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, cartKey(userID)).Err()
}

func cartKey(userID uint64) string {
	return fmt.Sprintf("cart:%d", userID)
}
