package dto

// CheckoutProduct is one line of a checkout request. new_price is in whole
// currency units.
type CheckoutProduct struct {
	Name     string  `json:"name"`
	NewPrice float64 `json:"new_price"`
	Quantity int64   `json:"quantity"`
}

// CheckoutRequest is the JSON body for POST /create-checkout-session.
type CheckoutRequest struct {
	Products []CheckoutProduct `json:"products" binding:"required"`
}

// CheckoutResponse carries the provider session id the frontend redirects with.
type CheckoutResponse struct {
	ID string `json:"id"`
}
