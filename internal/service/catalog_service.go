package service

import (
	"context"
	"errors"

	"github.com/chiragnagar2708/Outfitz-backend/internal/cache"
	dom "github.com/chiragnagar2708/Outfitz-backend/internal/domain"
	"github.com/chiragnagar2708/Outfitz-backend/internal/repo"
	"github.com/chiragnagar2708/Outfitz-backend/internal/utils"

	"golang.org/x/sync/singleflight"
)

var ErrIDConflict = errors.New("product id already taken")

// View sizes for the storefront sections. The slicing rules ("last 8 of
// all-but-first" etc.) come straight from the previous backend; they are
// index math, not derived business logic.
const (
	newCollectionSize = 8
	relatedSize       = 4
	popularSize       = 4
)

// CatalogService manages products and the storefront views over them.
type CatalogService struct {
	repo  repo.ProductRepo
	cache *cache.ProductCache
	sf    singleflight.Group
}

// NewCatalogService creates a CatalogService. If c is nil, caching is disabled.
func NewCatalogService(r repo.ProductRepo, c *cache.ProductCache) *CatalogService {
	return &CatalogService{repo: r, cache: c}
}

// AddProduct stores a new product. The id is assigned by the store; a lost
// max+1 race surfaces as ErrIDConflict rather than a duplicate row.
func (s *CatalogService) AddProduct(ctx context.Context, name, image, category string, newPrice, oldPrice float64) (dom.Product, error) {
	p, err := s.repo.Create(ctx, dom.Product{
		Name:     name,
		Image:    image,
		Category: category,
		NewPrice: newPrice,
		OldPrice: oldPrice,
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Product{}, ErrIDConflict
		}
		return dom.Product{}, err
	}
	s.invalidateCache(ctx)
	return p, nil
}

// RemoveProduct deletes by id. Deleting an absent id is a no-op, never an error.
func (s *CatalogService) RemoveProduct(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// ListAll returns every product in insertion order, served from cache when warm.
func (s *CatalogService) ListAll(ctx context.Context) ([]dom.Product, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("all", func() (interface{}, error) {
			if list, err := s.cache.GetAll(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetAll(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Product), nil
	}
	return s.repo.List(ctx)
}

// NewCollection returns the last 8 products, skipping the very first record.
func (s *CatalogService) NewCollection(ctx context.Context) ([]dom.Product, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return tailAfterFirst(all, newCollectionSize), nil
}

// RelatedProducts returns the last 4 products, skipping the very first record.
func (s *CatalogService) RelatedProducts(ctx context.Context) ([]dom.Product, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return tailAfterFirst(all, relatedSize), nil
}

// PopularInCategory returns the first 4 products tagged with the category.
func (s *CatalogService) PopularInCategory(ctx context.Context, category string) ([]dom.Product, error) {
	list, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(list) > popularSize {
		list = list[:popularSize]
	}
	return list, nil
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

// tailAfterFirst drops the first record, then keeps the last n of the rest.
func tailAfterFirst(list []dom.Product, n int) []dom.Product {
	if len(list) <= 1 {
		return nil
	}
	rest := list[1:]
	if len(rest) > n {
		rest = rest[len(rest)-n:]
	}
	return rest
}
