package service

import (
	"context"
	"errors"

	"github.com/chiragnagar2708/Outfitz-backend/internal/cart"
	dom "github.com/chiragnagar2708/Outfitz-backend/internal/domain"
	"github.com/chiragnagar2708/Outfitz-backend/internal/repo"

	"github.com/jackc/pgx/v5"
)

var ErrUserNotFound = errors.New("user not found")

// CartService mutates per-user carts. Every mutation is a read-modify-write
// pair against the user row with no transactional isolation: two concurrent
// mutations for the same user can lose an update (last write wins). Kept as
// in the previous backend, documented rather than fixed.
type CartService struct {
	users repo.UserRepo
}

// NewCartService returns a new CartService.
func NewCartService(users repo.UserRepo) *CartService {
	return &CartService{users: users}
}

// AddToCart adds one of the item to the user's cart.
// Returns cart.ErrSlotOutOfRange for item ids outside the slot range.
func (s *CartService) AddToCart(ctx context.Context, userID int64, itemID int) error {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.Cart.Increment(itemID); err != nil {
		return err
	}
	return s.users.UpdateCart(ctx, userID, u.Cart)
}

// RemoveFromCart removes one of the item, flooring the quantity at zero.
func (s *CartService) RemoveFromCart(ctx context.Context, userID int64, itemID int) error {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.Cart.Decrement(itemID); err != nil {
		return err
	}
	return s.users.UpdateCart(ctx, userID, u.Cart)
}

// GetCart returns the user's cart unmodified.
func (s *CartService) GetCart(ctx context.Context, userID int64) (cart.Cart, error) {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.Cart, nil
}

// ClearCart resets every slot to zero.
func (s *CartService) ClearCart(ctx context.Context, userID int64) error {
	if _, err := s.loadUser(ctx, userID); err != nil {
		return err
	}
	return s.users.UpdateCart(ctx, userID, cart.New())
}

func (s *CartService) loadUser(ctx context.Context, userID int64) (dom.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}
