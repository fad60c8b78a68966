package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret_ecom")
	tok, err := svc.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	got, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got != 42 {
		t.Fatalf("user id: got %d want 42", got)
	}
}

func TestIssue_Deterministic(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret_ecom")
	a, err := svc.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	b, err := svc.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	// No expiry or issued-at claim, so the same user always signs to the
	// same token under the same secret.
	if a != b {
		t.Fatalf("tokens differ:\n%s\n%s", a, b)
	}
}

func TestVerify_Missing(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("k")
	if _, err := svc.Verify(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("got %v want ErrMissingToken", err)
	}
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("k")
	tok, err := svc.Issue(1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("token parts: got %d want 3", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := svc.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v want ErrInvalidToken", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService("right").Issue(1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := NewTokenService("wrong").Verify(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v want ErrInvalidToken", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("k")
	if _, err := svc.Verify("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got %v want ErrInvalidToken", err)
	}
}
