package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: "https://api.stripe.com",
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CreatePaymentLink cria o price avulso e o payment link em cima dele.
// A API do Stripe é form-encoded, não JSON.
func (c *Client) CreatePaymentLink(ctx context.Context, input PaymentLinkInput) (string, error) {
	priceID, err := c.createPrice(ctx, input)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("line_items[0][price]", priceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("after_completion[type]", "redirect")
	form.Set("after_completion[redirect][url]", input.RedirectURL)
	for k, v := range input.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	var response paymentLinkResponse
	if err := c.post(ctx, "/v1/payment_links", form, &response); err != nil {
		return "", err
	}
	if response.Error != nil {
		return "", fmt.Errorf("stripe: %s", response.Error.Message)
	}

	return response.URL, nil
}

func (c *Client) createPrice(ctx context.Context, input PaymentLinkInput) (string, error) {
	form := url.Values{}
	form.Set("currency", input.Currency)
	form.Set("unit_amount", strconv.Itoa(input.AmountCents))
	form.Set("product_data[name]", input.ProductName)

	var response priceResponse
	if err := c.post(ctx, "/v1/prices", form, &response); err != nil {
		return "", err
	}
	if response.Error != nil {
		return "", fmt.Errorf("stripe: %s", response.Error.Message)
	}

	return response.ID, nil
}

func (c *Client) post(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro request stripe: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("erro stripe (status %d): %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
