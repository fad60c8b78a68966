package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/chiragnagar2708/Outfitz-backend/internal/auth"
	"github.com/chiragnagar2708/Outfitz-backend/internal/cart"
	"github.com/chiragnagar2708/Outfitz-backend/internal/dto"
	"github.com/chiragnagar2708/Outfitz-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CartHandler handles the authenticated cart routes.
type CartHandler struct {
	carts *service.CartService
}

// NewCartHandler returns a new CartHandler.
func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// Add godoc
// @Summary      Add one of an item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        auth-token  header  string  true  "Bearer token"
// @Param        body  body  dto.CartItemRequest  true  "Item id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /addtocart [post]
func (h *CartHandler) Add(c *gin.Context) {
	itemID, ok := bindItemID(c)
	if !ok {
		return
	}
	if err := h.carts.AddToCart(c.Request.Context(), auth.UserIDFromContext(c), itemID); err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added"})
}

// Remove godoc
// @Summary      Remove one of an item from the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        auth-token  header  string  true  "Bearer token"
// @Param        body  body  dto.CartItemRequest  true  "Item id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /removefromcart [post]
func (h *CartHandler) Remove(c *gin.Context) {
	itemID, ok := bindItemID(c)
	if !ok {
		return
	}
	if err := h.carts.RemoveFromCart(c.Request.Context(), auth.UserIDFromContext(c), itemID); err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed"})
}

// Get godoc
// @Summary      Get the cart slot mapping
// @Tags         cart
// @Produce      json
// @Param        auth-token  header  string  true  "Bearer token"
// @Success      200  {object}  map[string]int
// @Failure      401  {object}  map[string]string
// @Router       /getcart [post]
func (h *CartHandler) Get(c *gin.Context) {
	userCart, err := h.carts.GetCart(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, userCart)
}

// Clear godoc
// @Summary      Reset every cart slot to zero
// @Tags         cart
// @Produce      json
// @Param        auth-token  header  string  true  "Bearer token"
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Router       /clear-cart [post]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.ClearCart(c.Request.Context(), auth.UserIDFromContext(c)); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeCartError(c, err)
			return
		}
		log.Printf("clear cart: %v", err)
		// Legacy shape: this route reports failures under "error", not "errors".
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msgServerError})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func bindItemID(c *gin.Context) (int, bool) {
	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": msgMissingFields})
		return 0, false
	}
	return *req.ItemID, true
}

func writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrSlotOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": "itemId out of range"})
	case errors.Is(err, service.ErrUserNotFound):
		// Token verified but the user is gone; treat like a bad credential.
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Please authenticate using a valid token"})
	default:
		log.Printf("cart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": msgServerError})
	}
}
