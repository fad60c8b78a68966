package service

import (
	"context"
	"errors"
	"strings"

	"github.com/chiragnagar2708/Outfitz-backend/internal/cart"
	dom "github.com/chiragnagar2708/Outfitz-backend/internal/domain"
	"github.com/chiragnagar2708/Outfitz-backend/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken       = errors.New("email already registered")
	ErrPasswordTooShort = errors.New("password shorter than 8 characters")
	ErrUnknownEmail     = errors.New("no user with that email")
	ErrWrongPassword    = errors.New("wrong password")
)

const minPasswordLen = 8

// UserService handles signup and login.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// SignUp creates a user with a hashed password and a fresh zero-filled cart.
// The duplicate-email check is a read before the insert; the schema does not
// enforce uniqueness, so a concurrent signup with the same email can slip
// through. Known limitation.
func (s *UserService) SignUp(ctx context.Context, name, email, password string) (dom.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if len(password) < minPasswordLen {
		return dom.User{}, ErrPasswordTooShort
	}
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return dom.User{}, ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	return s.repo.Create(ctx, name, email, string(hash), cart.New())
}

// Login checks credentials and returns the user. Unknown email and wrong
// password are distinct errors; the handlers surface distinct messages, as
// clients of the previous backend expect.
func (s *UserService) Login(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.TrimSpace(email)
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUnknownEmail
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrWrongPassword
	}
	return u, nil
}
