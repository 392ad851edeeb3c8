package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/orders"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared"
	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/infrastructure/config"
)

// maxResponseSize is the maximum allowed response size from the Admin API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// accessTokenHeader carries the private-app token on every request
const accessTokenHeader = "X-Shopify-Access-Token"

// Client talks to the Shopify Admin REST API. It implements
// orders.DataSource; all other packages depend on that interface, never on
// this type directly.
type Client struct {
	baseURL    string
	token      string
	pageLimit  int
	httpClient *http.Client
}

// NewClient creates a new Admin API client from the shop configuration
func NewClient(cfg *config.ShopifyConfig) *Client {
	return &Client{
		baseURL:   cfg.BaseURL(),
		token:     cfg.AccessToken,
		pageLimit: cfg.PageLimit,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// ListOrders fetches orders matching the filter. An empty filter status
// defaults to "any" so fulfilled orders are included; Shopify's own default
// of "open" would silently hide them.
func (c *Client) ListOrders(ctx context.Context, filter orders.ListFilter) ([]orders.Order, error) {
	status := filter.Status
	if status == "" {
		status = "any"
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = c.pageLimit
	}

	query := url.Values{}
	query.Set("status", status)
	query.Set("limit", strconv.Itoa(limit))

	body, err := c.doRequest(ctx, http.MethodGet, "/orders.json?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var resp ordersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("shopify: failed to decode orders response: %w", err)
	}

	result := make([]orders.Order, 0, len(resp.Orders))
	for _, w := range resp.Orders {
		result = append(result, w.toDomain())
	}
	return result, nil
}

// GetOrder fetches a single order by its identifier
func (c *Client) GetOrder(ctx context.Context, id int64) (*orders.Order, error) {
	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/orders/%d.json", id), nil)
	if err != nil {
		return nil, err
	}

	var resp orderResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("shopify: failed to decode order response: %w", err)
	}

	order := resp.Order.toDomain()
	return &order, nil
}

// MarkFulfilled creates a fulfillment covering the whole order, with the
// given tracking metadata
func (c *Client) MarkFulfilled(ctx context.Context, id int64, tracking orders.TrackingInfo) error {
	payload := fulfillmentRequest{
		Fulfillment: wireFulfillment{
			NotifyCustomer:  tracking.Notify,
			TrackingNumber:  tracking.Number,
			TrackingCompany: tracking.Company,
			TrackingURL:     tracking.URL,
		},
	}

	_, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/fulfillments.json", id), payload)
	return err
}

// ListProducts fetches the product catalog summary
func (c *Client) ListProducts(ctx context.Context) ([]orders.Product, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.pageLimit))

	body, err := c.doRequest(ctx, http.MethodGet, "/products.json?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var resp productsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("shopify: failed to decode products response: %w", err)
	}

	result := make([]orders.Product, 0, len(resp.Products))
	for _, w := range resp.Products {
		result = append(result, w.toDomain())
	}
	return result, nil
}

// ListCustomers fetches the customer directory
func (c *Client) ListCustomers(ctx context.Context) ([]orders.Customer, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.pageLimit))

	body, err := c.doRequest(ctx, http.MethodGet, "/customers.json?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var resp customersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("shopify: failed to decode customers response: %w", err)
	}

	result := make([]orders.Customer, 0, len(resp.Customers))
	for _, w := range resp.Customers {
		result = append(result, w.toDomain())
	}
	return result, nil
}

// doRequest performs an HTTP request against the Admin API and returns the
// raw response body. Connectivity failures map to shared.ErrSourceUnreachable;
// API-level failures map to shared.ErrSourceFailed carrying the server's own
// error text so it can be surfaced verbatim.
func (c *Client) doRequest(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("shopify: failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("shopify: failed to create request: %w", err)
	}

	req.Header.Set(accessTokenHeader, c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSourceUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("shopify: failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: HTTP 404", shared.ErrNotFound)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d: %s", shared.ErrSourceFailed, resp.StatusCode, extractErrorMessage(body))
	}

	return body, nil
}

// extractErrorMessage pulls the human-readable message out of Shopify's
// error envelope, falling back to the raw body
func extractErrorMessage(body []byte) string {
	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Errors == nil {
		return string(body)
	}

	switch v := envelope.Errors.(type) {
	case string:
		return v
	default:
		rendered, err := json.Marshal(v)
		if err != nil {
			return string(body)
		}
		return string(rendered)
	}
}

// Ensure Client implements the data source interface
var _ orders.DataSource = (*Client)(nil)
