package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/chiragnagar2708/Outfitz-backend/internal/dto"
	"github.com/chiragnagar2708/Outfitz-backend/internal/service"
	"github.com/chiragnagar2708/Outfitz-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// popularCategory is the category tag the /popularinwomen view filters on.
const popularCategory = "women"

// ProductHandler handles the catalog routes and the storefront views.
type ProductHandler struct {
	catalog  *service.CatalogService
	uploader storage.Uploader
}

// NewProductHandler returns a new ProductHandler. uploader may be nil, in
// which case products are stored without an image URL.
func NewProductHandler(catalog *service.CatalogService, uploader storage.Uploader) *ProductHandler {
	return &ProductHandler{catalog: catalog, uploader: uploader}
}

// Add godoc
// @Summary      Add a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        name       formData  string  true   "Product name"
// @Param        category   formData  string  true   "Category tag"
// @Param        new_price  formData  number  true   "Current price"
// @Param        old_price  formData  number  true   "Original price"
// @Param        image      formData  file    false  "Product image"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /addproduct [post]
func (h *ProductHandler) Add(c *gin.Context) {
	name := c.PostForm("name")
	category := c.PostForm("category")
	newPriceRaw := c.PostForm("new_price")
	oldPriceRaw := c.PostForm("old_price")
	if name == "" || category == "" || newPriceRaw == "" || oldPriceRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": msgMissingFields})
		return
	}
	newPrice, err := strconv.ParseFloat(newPriceRaw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "new_price must be a number"})
		return
	}
	oldPrice, err := strconv.ParseFloat(oldPriceRaw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "old_price must be a number"})
		return
	}

	imageURL, ok := h.relayImage(c)
	if !ok {
		return
	}

	p, err := h.catalog.AddProduct(c.Request.Context(), name, imageURL, category, newPrice, oldPrice)
	if err != nil {
		log.Printf("add product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": msgServerError})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "name": p.Name})
}

// relayImage saves the uploaded file to a local temp path, pushes it to
// object storage and cleans the temp file up best-effort. Returns ok=false
// after writing the error response. No image attached is not an error.
func (h *ProductHandler) relayImage(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil || h.uploader == nil {
		return "", true
	}
	tmpPath := filepath.Join(os.TempDir(),
		strconv.FormatInt(time.Now().UnixMilli(), 10)+"-"+filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		log.Printf("save upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error uploading file"})
		return "", false
	}
	url, err := h.uploader.UploadImage(c.Request.Context(), tmpPath, file.Header.Get("Content-Type"))
	if removeErr := os.Remove(tmpPath); removeErr != nil {
		log.Printf("delete temp upload %s: %v", tmpPath, removeErr)
	}
	if err != nil {
		log.Printf("upload image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error uploading image"})
		return "", false
	}
	return url, true
}

// Remove godoc
// @Summary      Remove a product by id
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RemoveProductRequest  true  "Product id"
// @Success      200   {object}  map[string]interface{}
// @Router       /removeproduct [post]
func (h *ProductHandler) Remove(c *gin.Context) {
	var req dto.RemoveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": msgMissingFields})
		return
	}
	if err := h.catalog.RemoveProduct(c.Request.Context(), req.ID); err != nil {
		log.Printf("remove product %d: %v", req.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": msgServerError})
		return
	}
	// Absent ids are a no-op; the response echoes the submitted name either way.
	c.JSON(http.StatusOK, gin.H{"success": true, "name": req.Name})
}

// All godoc
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /allproducts [get]
func (h *ProductHandler) All(c *gin.Context) {
	list, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": msgServerError})
		return
	}
	c.JSON(http.StatusOK, dto.ProductsToResponses(list))
}

// NewCollections godoc
// @Summary      New collection view
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /newcollections [get]
func (h *ProductHandler) NewCollections(c *gin.Context) {
	list, err := h.catalog.NewCollection(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": msgServerError})
		return
	}
	c.JSON(http.StatusOK, dto.ProductsToResponses(list))
}

// Related godoc
// @Summary      Related products view
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /relatedProducts [get]
func (h *ProductHandler) Related(c *gin.Context) {
	list, err := h.catalog.RelatedProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": msgServerError})
		return
	}
	c.JSON(http.StatusOK, dto.ProductsToResponses(list))
}

// PopularInWomen godoc
// @Summary      Popular in women view
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /popularinwomen [get]
func (h *ProductHandler) PopularInWomen(c *gin.Context) {
	list, err := h.catalog.PopularInCategory(c.Request.Context(), popularCategory)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": msgServerError})
		return
	}
	c.JSON(http.StatusOK, dto.ProductsToResponses(list))
}
