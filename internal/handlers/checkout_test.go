package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/chiragnagar2708/Outfitz-backend/internal/payment"

	"github.com/gin-gonic/gin"
)

type fakePayments struct {
	items []payment.LineItem
	id    string
	err   error
}

func (f *fakePayments) CreateCheckoutSession(_ context.Context, items []payment.LineItem) (string, error) {
	f.items = items
	return f.id, f.err
}

func newCheckoutRouter(t *testing.T, payments payment.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/create-checkout-session", NewCheckoutHandler(payments).CreateSession)
	return r
}

func TestCreateCheckoutSession(t *testing.T) {
	t.Parallel()

	fake := &fakePayments{id: "cs_test_123"}
	r := newCheckoutRouter(t, fake)
	w := postJSON(t, r, "/create-checkout-session",
		`{"products":[{"name":"Shirt","new_price":20,"quantity":2}]}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["id"] != "cs_test_123" {
		t.Fatalf("body: %s", w.Body.String())
	}
	if len(fake.items) != 1 {
		t.Fatalf("items forwarded: got %d want 1", len(fake.items))
	}
	if it := fake.items[0]; it.Name != "Shirt" || it.NewPrice != 20 || it.Quantity != 2 {
		t.Fatalf("forwarded item: %+v", it)
	}
}

func TestCreateCheckoutSession_ProviderFailure(t *testing.T) {
	t.Parallel()

	r := newCheckoutRouter(t, &fakePayments{err: errors.New("provider down")})
	w := postJSON(t, r, "/create-checkout-session", `{"products":[]}`, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d want 500", w.Code)
	}
	// Provider cause stays server-side; the client sees a generic message.
	if body := decodeBody(t, w); body["errors"] != "Server error" {
		t.Fatalf("body: %s", w.Body.String())
	}
}

func TestCreateCheckoutSession_MissingProducts(t *testing.T) {
	t.Parallel()

	r := newCheckoutRouter(t, &fakePayments{id: "cs_x"})
	w := postJSON(t, r, "/create-checkout-session", `{}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400", w.Code)
	}
}
