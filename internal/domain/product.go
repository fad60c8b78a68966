package domain

import "time"

// Product is a catalog entry. IDs are assigned by the store (max existing
// id + 1), not by the database; see repo.PGProductRepo.
type Product struct {
	ID        int64
	Name      string
	Image     string
	Category  string
	NewPrice  float64
	OldPrice  float64
	Available bool
	CreatedAt time.Time
}
