package repo

import (
	"context"
	"sync"
	"time"

	"github.com/chiragnagar2708/Outfitz-backend/internal/cart"
	dom "github.com/chiragnagar2708/Outfitz-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

// In-memory implementations of the repos, for tests and local runs without a
// database. They return pgx.ErrNoRows on misses so services map errors the
// same way for both backends.

// MemoryUserRepo is an in-memory UserRepo.
type MemoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]dom.User
}

// NewMemoryUserRepo returns an empty MemoryUserRepo.
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{nextID: 1, users: make(map[int64]dom.User)}
}

func (r *MemoryUserRepo) Create(_ context.Context, name, email, passwordHash string, c cart.Cart) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := dom.User{
		ID:           r.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Cart:         cloneCart(c),
		CreatedAt:    time.Now().UTC(),
	}
	r.users[u.ID] = u
	r.nextID++
	return u, nil
}

func (r *MemoryUserRepo) FindByEmail(_ context.Context, email string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *MemoryUserRepo) FindByID(_ context.Context, id int64) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *MemoryUserRepo) UpdateCart(_ context.Context, id int64, c cart.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.Cart = cloneCart(c)
	r.users[id] = u
	return nil
}

// MemoryProductRepo is an in-memory ProductRepo keeping insertion order.
type MemoryProductRepo struct {
	mu       sync.Mutex
	products []dom.Product
}

// NewMemoryProductRepo returns an empty MemoryProductRepo.
func NewMemoryProductRepo() *MemoryProductRepo {
	return &MemoryProductRepo{}
}

func (r *MemoryProductRepo) Create(_ context.Context, p dom.Product) (dom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var maxID int64
	for _, existing := range r.products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	p.Available = true
	p.CreatedAt = time.Now().UTC()
	r.products = append(r.products, p)
	return p, nil
}

func (r *MemoryProductRepo) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryProductRepo) List(_ context.Context) ([]dom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]dom.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryProductRepo) ListByCategory(_ context.Context, category string) ([]dom.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []dom.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func cloneCart(c cart.Cart) cart.Cart {
	out := make(cart.Cart, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
