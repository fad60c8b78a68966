package service

import (
	"context"
	"errors"
	"testing"

	"github.com/chiragnagar2708/Outfitz-backend/internal/cart"
	"github.com/chiragnagar2708/Outfitz-backend/internal/repo"

	"golang.org/x/crypto/bcrypt"
)

func TestSignUp_Success(t *testing.T) {
	t.Parallel()

	svc := NewUserService(repo.NewMemoryUserRepo())
	u, err := svc.SignUp(context.Background(), "alice", "a@x.com", "password1")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if u.PasswordHash == "password1" || u.PasswordHash == "" {
		t.Fatalf("password stored in plaintext or empty")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password1")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
	if len(u.Cart) != cart.SlotCount {
		t.Fatalf("cart slots: got %d want %d", len(u.Cart), cart.SlotCount)
	}
	for i, q := range u.Cart {
		if q != 0 {
			t.Fatalf("slot %d not zero: %d", i, q)
		}
	}
}

func TestSignUp_PasswordLength(t *testing.T) {
	t.Parallel()

	svc := NewUserService(repo.NewMemoryUserRepo())
	if _, err := svc.SignUp(context.Background(), "bob", "b@x.com", "1234567"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("7 chars: got %v want ErrPasswordTooShort", err)
	}
	if _, err := svc.SignUp(context.Background(), "bob", "b@x.com", "12345678"); err != nil {
		t.Fatalf("8 chars: %v", err)
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	t.Parallel()

	users := repo.NewMemoryUserRepo()
	svc := NewUserService(users)
	if _, err := svc.SignUp(context.Background(), "alice", "a@x.com", "password1"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.SignUp(context.Background(), "alice2", "a@x.com", "password2"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("got %v want ErrEmailTaken", err)
	}
	// No second user was created.
	if _, err := svc.Login(context.Background(), "a@x.com", "password1"); err != nil {
		t.Fatalf("original user login: %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@x.com", "password2"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("got %v want ErrWrongPassword", err)
	}
}

func TestLogin_Failures(t *testing.T) {
	t.Parallel()

	svc := NewUserService(repo.NewMemoryUserRepo())
	if _, err := svc.SignUp(context.Background(), "alice", "a@x.com", "password1"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@x.com", "password1"); !errors.Is(err, ErrUnknownEmail) {
		t.Fatalf("got %v want ErrUnknownEmail", err)
	}
	if _, err := svc.Login(context.Background(), "a@x.com", "wrongpass"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("got %v want ErrWrongPassword", err)
	}
}
