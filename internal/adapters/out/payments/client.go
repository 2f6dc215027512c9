// Package payments requests checkout links from the payment provider.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrUnexpectedStatus = errors.New("unexpected payment provider status")

var _ ports.PaymentLinkClient = (*Client)(nil)

type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
	}
}

type linkRequest struct {
	Reference   string          `json:"reference"`
	Customer    string          `json:"customer"`
	AmountEur   decimal.Decimal `json:"amountEur"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
}

type linkResponse struct {
	URL string `json:"url"`
}

// CreatePaymentLink uses the invoice id as the provider-side idempotency
// key, so a retried task gets the same link back.
func (c *Client) CreatePaymentLink(ctx context.Context, req ports.PaymentLinkRequest) (string, error) {
	body, err := json.Marshal(linkRequest{
		Reference:   req.InvoiceID.String(),
		Customer:    req.ClientID.String(),
		AmountEur:   req.AmountEur.Round(2),
		Currency:    "EUR",
		Description: "Transport " + req.ShipmentID.Short(),
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", req.InvoiceID.String())
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errs.NewValueIsInvalidErrorWithCause("paymentLinkRequest", fmt.Errorf("%d: %s", resp.StatusCode, msg))
	default:
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var out linkResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", errs.NewValueIsRequiredError("url")
	}
	return out.URL, nil
}
