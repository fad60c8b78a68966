package dto

import (
	"time"

	dom "github.com/chiragnagar2708/Outfitz-backend/internal/domain"
)

// RemoveProductRequest is the JSON body for POST /removeproduct. The name is
// echoed back in the response, matching what storefront clients expect.
type RemoveProductRequest struct {
	ID   int64  `json:"id" binding:"required"`
	Name string `json:"name"`
}

// ProductResponse mirrors the field names of the previously stored documents,
// including "date" for the creation timestamp.
type ProductResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	NewPrice  float64   `json:"new_price"`
	OldPrice  float64   `json:"old_price"`
	Available bool      `json:"available"`
	Date      time.Time `json:"date"`
}

// ProductToResponse converts a domain product to its wire form.
func ProductToResponse(p dom.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Category:  p.Category,
		NewPrice:  p.NewPrice,
		OldPrice:  p.OldPrice,
		Available: p.Available,
		Date:      p.CreatedAt,
	}
}

// ProductsToResponses converts a list, returning an empty (not nil) slice so
// the JSON stays an array.
func ProductsToResponses(list []dom.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ProductToResponse(p))
	}
	return out
}
