package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chiragnagar2708/Outfitz-backend/internal/dto"
	"github.com/chiragnagar2708/Outfitz-backend/internal/repo"
	"github.com/chiragnagar2708/Outfitz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type fakeUploader struct {
	url string
	err error
}

func (f *fakeUploader) UploadImage(context.Context, string, string) (string, error) {
	return f.url, f.err
}

func newProductRouter(t *testing.T, uploader *fakeUploader) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	catalogSvc := service.NewCatalogService(repo.NewMemoryProductRepo(), nil)
	var h *ProductHandler
	if uploader != nil {
		h = NewProductHandler(catalogSvc, uploader)
	} else {
		h = NewProductHandler(catalogSvc, nil)
	}
	r.POST("/addproduct", h.Add)
	r.POST("/removeproduct", h.Remove)
	r.GET("/allproducts", h.All)
	r.GET("/newcollections", h.NewCollections)
	r.GET("/relatedProducts", h.Related)
	r.GET("/popularinwomen", h.PopularInWomen)
	return r
}

func postMultipart(t *testing.T, r *gin.Engine, fields map[string]string, withImage bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if withImage {
		fw, err := mw.CreateFormFile("image", "shirt.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("not-really-a-png")); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/addproduct", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getProducts(t *testing.T, r *gin.Engine, path string) []dto.ProductResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: %d %s", path, w.Code, w.Body.String())
	}
	var out []dto.ProductResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return out
}

var shirtFields = map[string]string{
	"name":      "Shirt",
	"category":  "women",
	"new_price": "20",
	"old_price": "30",
}

func TestAddProduct_EchoesName(t *testing.T) {
	t.Parallel()

	r := newProductRouter(t, nil)
	w := postMultipart(t, r, shirtFields, false)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true || body["name"] != "Shirt" {
		t.Fatalf("body: %s", w.Body.String())
	}

	list := getProducts(t, r, "/allproducts")
	if len(list) != 1 {
		t.Fatalf("list size: got %d want 1", len(list))
	}
	if list[0].ID != 1 || list[0].NewPrice != 20 || list[0].OldPrice != 30 || !list[0].Available {
		t.Fatalf("stored product: %+v", list[0])
	}
}

func TestAddProduct_MissingFields(t *testing.T) {
	t.Parallel()

	r := newProductRouter(t, nil)
	w := postMultipart(t, r, map[string]string{"name": "Shirt"}, false)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400", w.Code)
	}
	if body := decodeBody(t, w); body["errors"] != "Please fill all details" {
		t.Fatalf("body: %s", w.Body.String())
	}
}

func TestAddProduct_StoresUploadedImageURL(t *testing.T) {
	t.Parallel()

	r := newProductRouter(t, &fakeUploader{url: "https://img.example/p/1.png"})
	w := postMultipart(t, r, shirtFields, true)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d %s", w.Code, w.Body.String())
	}
	list := getProducts(t, r, "/allproducts")
	if len(list) != 1 || list[0].Image != "https://img.example/p/1.png" {
		t.Fatalf("stored image: %+v", list)
	}
}

func TestRemoveProduct_ThenListEmpty(t *testing.T) {
	t.Parallel()

	r := newProductRouter(t, nil)
	if w := postMultipart(t, r, shirtFields, false); w.Code != http.StatusOK {
		t.Fatalf("add: %d", w.Code)
	}
	w := postJSON(t, r, "/removeproduct", `{"id":1,"name":"Shirt"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove: %d %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["success"] != true || body["name"] != "Shirt" {
		t.Fatalf("remove body: %s", w.Body.String())
	}
	if list := getProducts(t, r, "/allproducts"); len(list) != 0 {
		t.Fatalf("list after remove: got %d items want 0", len(list))
	}
}
