package domain

import (
	"time"

	"github.com/chiragnagar2708/Outfitz-backend/internal/cart"
)

// User is the domain entity for a customer account. The cart lives on the
// user record, not in its own table, matching the persisted layout.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Cart         cart.Cart
	CreatedAt    time.Time
}
