package repo

import (
	"context"

	dom "github.com/chiragnagar2708/Outfitz-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductRepo provides catalog persistence. IDs are assigned by the store as
// max(existing)+1, not by a database sequence, to stay compatible with the
// ids the previous backend handed out.
type ProductRepo interface {
	Create(ctx context.Context, p dom.Product) (dom.Product, error)
	DeleteByID(ctx context.Context, id int64) error
	List(ctx context.Context) ([]dom.Product, error)
	ListByCategory(ctx context.Context, category string) ([]dom.Product, error)
}

// PGProductRepo implements ProductRepo with Postgres.
type PGProductRepo struct {
	db *pgxpool.Pool
}

// NewPGProductRepo returns a new PGProductRepo.
func NewPGProductRepo(db *pgxpool.Pool) *PGProductRepo {
	return &PGProductRepo{db: db}
}

// Create assigns id = max(existing)+1 and inserts. The scan and the insert
// are two statements with no isolation between them: two concurrent adds can
// compute the same id, in which case the second insert fails on the primary
// key instead of silently duplicating. Known limitation, kept for id
// compatibility.
func (r *PGProductRepo) Create(ctx context.Context, p dom.Product) (dom.Product, error) {
	var nextID int64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM products`).Scan(&nextID); err != nil {
		return dom.Product{}, err
	}
	query := `
		INSERT INTO products (id, name, image, category, new_price, old_price, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, image, category, new_price, old_price, available, created_at`
	var out dom.Product
	err := r.db.QueryRow(ctx, query, nextID, p.Name, p.Image, p.Category, p.NewPrice, p.OldPrice, true).Scan(
		&out.ID, &out.Name, &out.Image, &out.Category, &out.NewPrice, &out.OldPrice,
		&out.Available, &out.CreatedAt,
	)
	return out, err
}

// DeleteByID removes the product. No-op when nothing matches.
func (r *PGProductRepo) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

// List returns every product in insertion order.
func (r *PGProductRepo) List(ctx context.Context) ([]dom.Product, error) {
	query := `
		SELECT id, name, image, category, new_price, old_price, available, created_at
		FROM products ORDER BY created_at ASC, id ASC`
	return r.queryProducts(ctx, query)
}

// ListByCategory returns products with the given category tag, insertion order.
func (r *PGProductRepo) ListByCategory(ctx context.Context, category string) ([]dom.Product, error) {
	query := `
		SELECT id, name, image, category, new_price, old_price, available, created_at
		FROM products WHERE category = $1 ORDER BY created_at ASC, id ASC`
	return r.queryProducts(ctx, query, category)
}

func (r *PGProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]dom.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Product
	for rows.Next() {
		var p dom.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Category, &p.NewPrice, &p.OldPrice,
			&p.Available, &p.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
