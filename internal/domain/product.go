package domain

import (
	"fmt"
	"strings"
	"time"
)

// Product is a catalog card: a bakery item with a hosted image.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateProductRequest struct {
	Name        string
	Price       string
	Description string
}

func (r *CreateProductRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(r.Price) == "" {
		return fmt.Errorf("price is required")
	}
	return nil
}
