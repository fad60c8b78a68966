package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chiragnagar2708/Outfitz-backend/internal/cart"
	dom "github.com/chiragnagar2708/Outfitz-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence. The cart is part of the user row and is
// always written wholesale, never merged field by field.
type UserRepo interface {
	Create(ctx context.Context, name, email, passwordHash string, c cart.Cart) (dom.User, error)
	FindByEmail(ctx context.Context, email string) (dom.User, error)
	FindByID(ctx context.Context, id int64) (dom.User, error)
	UpdateCart(ctx context.Context, id int64, c cart.Cart) error
}

// PGUserRepo implements UserRepo with Postgres. The cart lives in a JSONB
// column as an object with string keys "0".."299".
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// Create inserts a new user and returns it. Email uniqueness is not enforced
// by the schema; the duplicate check happens in the service before insert.
func (r *PGUserRepo) Create(ctx context.Context, name, email, passwordHash string, c cart.Cart) (dom.User, error) {
	cartJSON, err := json.Marshal(c)
	if err != nil {
		return dom.User{}, fmt.Errorf("marshal cart: %w", err)
	}
	query := `
		INSERT INTO users (name, email, password_hash, cart_data)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, cart_data, created_at`
	return r.scanUser(r.db.QueryRow(ctx, query, name, email, passwordHash, cartJSON))
}

// FindByEmail returns the user with the given email. pgx.ErrNoRows if absent.
func (r *PGUserRepo) FindByEmail(ctx context.Context, email string) (dom.User, error) {
	query := `
		SELECT id, name, email, password_hash, cart_data, created_at
		FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

// FindByID returns the user with the given id. pgx.ErrNoRows if absent.
func (r *PGUserRepo) FindByID(ctx context.Context, id int64) (dom.User, error) {
	query := `
		SELECT id, name, email, password_hash, cart_data, created_at
		FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

// UpdateCart replaces the stored cart wholesale.
func (r *PGUserRepo) UpdateCart(ctx context.Context, id int64, c cart.Cart) error {
	cartJSON, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	_, err = r.db.Exec(ctx, `UPDATE users SET cart_data = $2 WHERE id = $1`, id, cartJSON)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGUserRepo) scanUser(row rowScanner) (dom.User, error) {
	var u dom.User
	var cartJSON []byte
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &cartJSON, &u.CreatedAt); err != nil {
		return dom.User{}, err
	}
	if err := json.Unmarshal(cartJSON, &u.Cart); err != nil {
		return dom.User{}, fmt.Errorf("unmarshal cart: %w", err)
	}
	return u, nil
}
