package domain

import (
	"fmt"
	"time"
)

// CartEntry associates a user with a product they intend to order. At most
// one entry exists per (user_id, product_id) pair; entries are created and
// deleted, never mutated.
type CartEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CartItemRequest is the body for cart add and remove. The user id is always
// taken from the authenticated session, never from the body.
type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
}

func (r *CartItemRequest) Validate() error {
	if r.ProductID <= 0 {
		return fmt.Errorf("product_id is required")
	}
	return nil
}
