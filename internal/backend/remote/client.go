// Package remote adalah klien HTTP untuk backend gaya Apps Script:
// satu URL dengan parameter ?path=<nama>, semua respons dibungkus envelope JSON.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"storefront/internal/backend"
	"storefront/internal/order"
	"storefront/internal/product"

	"go.uber.org/zap"
)

// envelope adalah bentuk respons backend. Success nil dianggap sukses (endpoint list lama tidak mengirimnya).
type envelope struct {
	Success  *bool             `json:"success"`
	Message  string            `json:"message"`
	Products []product.Product `json:"products"`
	Product  *product.Product  `json:"product"`
	Order    *order.Order      `json:"order"`
	Orders   []order.Order     `json:"orders"`
	Token    string            `json:"token"`
	Name     string            `json:"name"`
}

func (e *envelope) failed() bool {
	return e.Success != nil && !*e.Success
}

type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = backend.DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

var _ backend.Backend = (*Client)(nil)

func (c *Client) GetProducts(ctx context.Context) ([]product.Product, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "products", "", nil, &env); err != nil {
		return nil, err
	}
	if env.failed() {
		return nil, &backend.RejectedError{Message: env.Message}
	}
	return env.Products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "product", id, nil, &env); err != nil {
		return nil, err
	}
	if env.failed() || env.Product == nil {
		return nil, backend.ErrNotFound
	}
	return env.Product, nil
}

func (c *Client) CreateOrder(ctx context.Context, o *order.Order) error {
	return c.post(ctx, "order", o)
}

func (c *Client) TrackOrder(ctx context.Context, orderID string) (*order.Order, error) {
	return c.getOrder(ctx, "track", orderID)
}

func (c *Client) AdminLogin(ctx context.Context, creds backend.Credentials) (*backend.LoginResult, error) {
	var env envelope
	if err := c.do(ctx, http.MethodPost, "admin/login", "", creds, &env); err != nil {
		return nil, err
	}
	if env.failed() || env.Token == "" {
		msg := env.Message
		if msg == "" {
			msg = "Login gagal"
		}
		return nil, &backend.RejectedError{Message: msg}
	}
	return &backend.LoginResult{Token: env.Token, Name: env.Name}, nil
}

func (c *Client) GetOrders(ctx context.Context) ([]order.Order, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "admin/orders", "", nil, &env); err != nil {
		return nil, err
	}
	if env.failed() {
		return nil, &backend.RejectedError{Message: env.Message}
	}
	return env.Orders, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*order.Order, error) {
	return c.getOrder(ctx, "admin/order", orderID)
}

func (c *Client) UpdateOrderStatus(ctx context.Context, u backend.StatusUpdate) error {
	return c.post(ctx, "admin/update-order-status", u)
}

func (c *Client) CreateProduct(ctx context.Context, p product.Product) error {
	return c.post(ctx, "admin/create-product", p)
}

// Backend lama memakai key product_id untuk edit dan delete.
type productPayload struct {
	ProductID string `json:"product_id"`
	product.Product
}

func (c *Client) EditProduct(ctx context.Context, p product.Product) error {
	return c.post(ctx, "admin/edit-product", productPayload{ProductID: p.ID, Product: p})
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.post(ctx, "admin/delete-product", map[string]string{"product_id": id})
}

// --- Fungsi Helper (Internal) ---

func (c *Client) getOrder(ctx context.Context, path, orderID string) (*order.Order, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, path, orderID, nil, &env); err != nil {
		return nil, err
	}
	if env.failed() || env.Order == nil {
		return nil, backend.ErrNotFound
	}
	return env.Order, nil
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	var env envelope
	if err := c.do(ctx, http.MethodPost, path, "", body, &env); err != nil {
		return err
	}
	if env.Success == nil || !*env.Success {
		return &backend.RejectedError{Message: env.Message}
	}
	return nil
}

func (c *Client) endpoint(path, id string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("path", path)
	if id != "" {
		q.Set("id", id)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) do(ctx context.Context, method, path, id string, body any, out *envelope) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target, err := c.endpoint(path, id)
	if err != nil {
		return fmt.Errorf("%w: url backend tidak valid: %v", backend.ErrUnavailable, err)
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gagal serialize request %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", backend.ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend call failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", backend.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: backend mengembalikan status %d", backend.ErrUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: gagal decode respons backend: %v", backend.ErrUnavailable, err)
	}
	return nil
}
