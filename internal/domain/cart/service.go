// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/your-org/digistore-backend/internal/config"
)

const sessionTTL = 24 * time.Hour

// Service persists per-session carts in Redis. The cart model itself is the
// pure Cart type; this layer only loads, mutates, and stores it.
type Service struct {
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new cart service
func NewService(redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		redisClient: redisClient,
		config:      cfg,
	}
}

// CartResponse represents a session cart with derived totals
type CartResponse struct {
	SessionID string `json:"session_id"`
	Items     []Item `json:"items"`
	Totals    Totals `json:"totals"`
}

// Get retrieves the cart for a session, empty if none exists yet.
func (s *Service) Get(ctx context.Context, sessionID string) (*CartResponse, error) {
	sc, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(sc), nil
}

// Add puts one unit of the product snapshot in the session cart.
func (s *Service) Add(ctx context.Context, sessionID string, snap Snapshot) (*CartResponse, error) {
	sc, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sc.Cart.Add(snap)
	if err := s.save(ctx, sc); err != nil {
		return nil, err
	}
	return s.respond(sc), nil
}

// Remove deletes a line item from the session cart.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) (*CartResponse, error) {
	sc, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sc.Cart.Remove(productID)
	if err := s.save(ctx, sc); err != nil {
		return nil, err
	}
	return s.respond(sc), nil
}

// UpdateQuantity applies a quantity delta to a line item.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (*CartResponse, error) {
	sc, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sc.Cart.UpdateQuantity(productID, delta)
	if err := s.save(ctx, sc); err != nil {
		return nil, err
	}
	return s.respond(sc), nil
}

// Clear empties the session cart.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session ID required")
	}
	return s.redisClient.Del(ctx, cartKey(sessionID)).Err()
}

// Count returns the badge count for a session without building a response.
func (s *Service) Count(ctx context.Context, sessionID string) (int, error) {
	sc, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return sc.Cart.Count(), nil
}

func (s *Service) respond(sc *SessionCart) *CartResponse {
	return &CartResponse{
		SessionID: sc.SessionID,
		Items:     sc.Cart.Items,
		Totals:    sc.Cart.Totals(),
	}
}

func (s *Service) load(ctx context.Context, sessionID string) (*SessionCart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	data, err := s.redisClient.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		now := time.Now().UTC()
		return &SessionCart{
			SessionID: sessionID,
			CreatedAt: now,
			UpdatedAt: now,
			ExpiresAt: now.Add(sessionTTL),
		}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var sc SessionCart
	if err := json.Unmarshal([]byte(data), &sc); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &sc, nil
}

func (s *Service) save(ctx context.Context, sc *SessionCart) error {
	sc.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	return s.redisClient.Set(ctx, cartKey(sc.SessionID), data, sessionTTL).Err()
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}
