package handlers

import (
	"log"
	"net/http"

	"github.com/chiragnagar2708/Outfitz-backend/internal/dto"
	"github.com/chiragnagar2708/Outfitz-backend/internal/payment"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler creates payment-provider checkout sessions.
type CheckoutHandler struct {
	payments payment.Client
}

// NewCheckoutHandler returns a new CheckoutHandler.
func NewCheckoutHandler(payments payment.Client) *CheckoutHandler {
	return &CheckoutHandler{payments: payments}
}

// CreateSession godoc
// @Summary      Create a checkout session
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Products to pay for"
// @Success      200   {object}  dto.CheckoutResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]interface{}
// @Router       /create-checkout-session [post]
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": msgMissingFields})
		return
	}
	items := make([]payment.LineItem, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, payment.LineItem{
			Name:     p.Name,
			NewPrice: p.NewPrice,
			Quantity: p.Quantity,
		})
	}
	sessionID, err := h.payments.CreateCheckoutSession(c.Request.Context(), items)
	if err != nil {
		// Provider cause stays server-side.
		log.Printf("create checkout session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": msgServerError})
		return
	}
	c.JSON(http.StatusOK, dto.CheckoutResponse{ID: sessionID})
}
