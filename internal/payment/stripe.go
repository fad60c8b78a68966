// Package payment creates Stripe Checkout Sessions for the cart contents the
// frontend submits.
package payment

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/chiragnagar2708/Outfitz-backend/internal/config"
)

// LineItem is one product line in a checkout request. Prices arrive in whole
// currency units and are converted to cents for the provider.
type LineItem struct {
	Name     string
	NewPrice float64
	Quantity int64
}

// Client creates checkout sessions.
type Client interface {
	CreateCheckoutSession(ctx context.Context, items []LineItem) (string, error)
}

// StripeClient implements Client with the Stripe API. The API client is built
// once at startup and passed in; nothing reads the package-global stripe key.
type StripeClient struct {
	api         *client.API
	frontendURL string
}

// NewStripeClient returns a StripeClient for the configured account.
func NewStripeClient(cfg config.StripeConfig) *StripeClient {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &StripeClient{api: api, frontendURL: cfg.FrontendURL}
}

// CreateCheckoutSession creates a card payment session and returns its id.
// The frontend redirects to Stripe with it; success and cancel land back on
// the configured frontend base URL. Single attempt, no retry.
func (c *StripeClient) CreateCheckoutSession(ctx context.Context, items []LineItem) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(int64(item.NewPrice * 100)),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(c.frontendURL + "/success"),
		CancelURL:          stripe.String(c.frontendURL + "/cancel"),
	}
	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", err
	}
	return sess.ID, nil
}
