package handlers

import (
	"net/http"
	"testing"

	"github.com/chiragnagar2708/Outfitz-backend/internal/auth"
	"github.com/chiragnagar2708/Outfitz-backend/internal/repo"
	"github.com/chiragnagar2708/Outfitz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// newCartRouter wires signup plus the protected cart routes the way the app
// does, over in-memory storage.
func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	tokens := auth.NewTokenService("secret_ecom")
	users := repo.NewMemoryUserRepo()
	authHandler := NewAuthHandler(tokens, service.NewUserService(users))
	r.POST("/signup", authHandler.Signup)

	cartHandler := NewCartHandler(service.NewCartService(users))
	protected := r.Group("", auth.RequireToken(tokens))
	protected.POST("/addtocart", cartHandler.Add)
	protected.POST("/removefromcart", cartHandler.Remove)
	protected.POST("/getcart", cartHandler.Get)
	protected.POST("/clear-cart", cartHandler.Clear)
	return r
}

func signupToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := postJSON(t, r, "/signup", `{"username":"alice","email":"a@x.com","password":"password1"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("signup: %d %s", w.Code, w.Body.String())
	}
	tok, _ := decodeBody(t, w)["token"].(string)
	if tok == "" {
		t.Fatalf("no token in signup response")
	}
	return tok
}

func TestCartRoutes_RequireToken(t *testing.T) {
	t.Parallel()

	r := newCartRouter(t)

	w := postJSON(t, r, "/getcart", `{}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: got %d want 401", w.Code)
	}
	if body := decodeBody(t, w); body["errors"] != "Please authenticate using a valid token" {
		t.Fatalf("401 body: %s", w.Body.String())
	}

	w = postJSON(t, r, "/getcart", `{}`, map[string]string{"auth-token": "garbage"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: got %d want 401", w.Code)
	}
}

func TestCartRoutes_Scenario(t *testing.T) {
	t.Parallel()

	r := newCartRouter(t)
	hdr := map[string]string{"auth-token": signupToken(t, r)}

	getSlot := func(slot string) float64 {
		w := postJSON(t, r, "/getcart", `{}`, hdr)
		if w.Code != http.StatusOK {
			t.Fatalf("getcart: %d %s", w.Code, w.Body.String())
		}
		v, _ := decodeBody(t, w)[slot].(float64)
		return v
	}

	if q := getSlot("5"); q != 0 {
		t.Fatalf("fresh slot 5: got %v want 0", q)
	}

	for i := 0; i < 2; i++ {
		w := postJSON(t, r, "/addtocart", `{"itemId":5}`, hdr)
		if w.Code != http.StatusOK {
			t.Fatalf("addtocart: %d %s", w.Code, w.Body.String())
		}
		if body := decodeBody(t, w); body["message"] != "Added" {
			t.Fatalf("addtocart body: %s", w.Body.String())
		}
	}
	if q := getSlot("5"); q != 2 {
		t.Fatalf("slot 5 after two adds: got %v want 2", q)
	}

	w := postJSON(t, r, "/removefromcart", `{"itemId":5}`, hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("removefromcart: %d", w.Code)
	}
	if body := decodeBody(t, w); body["message"] != "Removed" {
		t.Fatalf("removefromcart body: %s", w.Body.String())
	}
	if q := getSlot("5"); q != 1 {
		t.Fatalf("slot 5 after remove: got %v want 1", q)
	}

	w = postJSON(t, r, "/clear-cart", `{}`, hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("clear-cart: %d", w.Code)
	}
	if body := decodeBody(t, w); body["success"] != true {
		t.Fatalf("clear-cart body: %s", w.Body.String())
	}
	if q := getSlot("5"); q != 0 {
		t.Fatalf("slot 5 after clear: got %v want 0", q)
	}
}

func TestCartRoutes_ItemIDValidation(t *testing.T) {
	t.Parallel()

	r := newCartRouter(t)
	hdr := map[string]string{"auth-token": signupToken(t, r)}

	w := postJSON(t, r, "/addtocart", `{"itemId":300}`, hdr)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out of range: got %d want 400", w.Code)
	}

	// Slot 0 is a valid item id, not a missing field.
	w = postJSON(t, r, "/addtocart", `{"itemId":0}`, hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("slot 0: got %d want 200, body %s", w.Code, w.Body.String())
	}

	w = postJSON(t, r, "/addtocart", `{}`, hdr)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing itemId: got %d want 400", w.Code)
	}
}
