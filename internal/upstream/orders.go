package upstream

import (
	"context"
	"net/http"

	"signflow/internal/domain"
)

// PaymentPurpose tells the upstream which obligation a checkout link covers.
type PaymentPurpose string

const (
	PaymentPurposeDeposit         PaymentPurpose = "DEPOSIT"
	PaymentPurposeDesignDeposit   PaymentPurpose = "DESIGN_DEPOSIT"
	PaymentPurposeDesignRemaining PaymentPurpose = "DESIGN_REMAINING"
	PaymentPurposeRemaining       PaymentPurpose = "REMAINING"
)

func (c *Client) ListOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	_, err := c.doJSON(ctx, http.MethodGet, c.apiURL("/api/orders/user/%d", userID), nil, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID uint) (*domain.Order, error) {
	var order domain.Order
	_, err := c.doJSON(ctx, http.MethodGet, c.apiURL("/api/orders/%d", orderID), nil, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CancelOrder(ctx context.Context, orderID uint) error {
	_, err := c.doJSON(ctx, http.MethodPatch, c.apiURL("/api/orders/%d/cancel", orderID), nil, nil)
	return err
}

// CreateOrderFromDesignRequest turns a completed design request into a
// production order (the "with construction" choice).
func (c *Client) CreateOrderFromDesignRequest(ctx context.Context, requestID uint) (*domain.Order, error) {
	var order domain.Order
	_, err := c.doJSON(ctx, http.MethodPost, c.apiURL("/api/orders/from-design-request/%d", requestID), nil, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

type paymentLinkRequest struct {
	Purpose PaymentPurpose `json:"purpose"`
}

type paymentLinkResult struct {
	CheckoutURL string `json:"checkoutUrl"`
}

// CreatePaymentLink asks the upstream for a checkout URL. Redirecting the
// customer to it is the UI's business, not ours.
func (c *Client) CreatePaymentLink(ctx context.Context, orderID uint, purpose PaymentPurpose) (string, error) {
	var result paymentLinkResult
	_, err := c.doJSON(ctx, http.MethodPost, c.apiURL("/api/orders/%d/payments", orderID), paymentLinkRequest{Purpose: purpose}, &result)
	if err != nil {
		return "", err
	}
	return result.CheckoutURL, nil
}

type impressionRequest struct {
	Rating   int     `json:"rating"`
	Comment  string  `json:"comment"`
	ImageKey *string `json:"image,omitempty"`
}

func (c *Client) SubmitImpression(ctx context.Context, orderID uint, rating int, comment string, imageKey *string) error {
	body := impressionRequest{Rating: rating, Comment: comment, ImageKey: imageKey}
	_, err := c.doJSON(ctx, http.MethodPost, c.apiURL("/api/orders/%d/impressions", orderID), body, nil)
	return err
}
