package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/pkg/errs"

	"github.com/google/uuid"
)

// maxErrorBody caps how much of a rejection body ends up in the error message.
const maxErrorBody = 4 << 10

// RequestIDHeader carries the correlation id of every remote call.
const RequestIDHeader = "X-Request-ID"

// Client implements ports.RemoteStore over the order REST service.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a client for the service rooted at baseURL,
// e.g. "http://localhost:3000/api".
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger.With("component", "rest_client"),
	}
}

// FetchOrders handles GET /Orders.
func (c *Client) FetchOrders(ctx context.Context) ([]order.Order, error) {
	return fetchAll[order.Order](ctx, c, OrdersResource)
}

// FetchProducts handles GET /OrderProducts.
func (c *Client) FetchProducts(ctx context.Context) ([]order.Product, error) {
	return fetchAll[order.Product](ctx, c, ProductsResource)
}

// CreateOrder handles PUT /Orders.
func (c *Client) CreateOrder(ctx context.Context, o order.Order) (order.Order, error) {
	o.ID = 0
	o.Products = nil
	return create(ctx, c, http.MethodPut, OrdersResource.Path(), o)
}

// CreateProduct handles POST /OrderProducts.
func (c *Client) CreateProduct(ctx context.Context, p order.Product) (order.Product, error) {
	p.ID = 0
	return create(ctx, c, http.MethodPost, ProductsResource.Path(), p)
}

// ReplaceOrder handles POST /Orders/{orderId}/replace.
func (c *Client) ReplaceOrder(ctx context.Context, id order.ID, o order.Order) error {
	return c.do(ctx, http.MethodPost, replaceOrderPath(id), o, nil)
}

// DeleteOrder handles DELETE /Orders/{orderId}.
func (c *Client) DeleteOrder(ctx context.Context, id order.ID) error {
	return c.do(ctx, http.MethodDelete, orderPath(id), nil, nil)
}

// DeleteProduct handles DELETE /Orders/{orderId}/products/{productId}.
func (c *Client) DeleteProduct(ctx context.Context, orderID order.ID, productID order.ProductID) error {
	return c.do(ctx, http.MethodDelete, orderProductPath(orderID, productID), nil, nil)
}

func fetchAll[T any](ctx context.Context, c *Client, resource Resource) ([]T, error) {
	var entities []T
	if err := c.do(ctx, http.MethodGet, resource.Path(), nil, &entities); err != nil {
		return nil, err
	}
	if entities == nil {
		entities = []T{}
	}
	return entities, nil
}

// create sends payload and returns the stored entity. Services that answer
// with an empty body get the payload back.
func create[T any](ctx context.Context, c *Client, method, path string, payload T) (T, error) {
	created := payload
	if err := c.do(ctx, method, path, payload, &created); err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url := c.baseURL + path
	requestID := uuid.NewString()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "remote call failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return errs.NewNetworkError(method, url, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewNetworkError(method, url, err)
	}

	c.logger.DebugContext(ctx, "remote call",
		"method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.WarnContext(ctx, "remote call rejected",
			"method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)
		return errs.NewRemoteRejectionError(method, url, resp.StatusCode, rejectionMessage(resp, payload))
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err = json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func rejectionMessage(resp *http.Response, payload []byte) string {
	if len(payload) > maxErrorBody {
		payload = payload[:maxErrorBody]
	}
	if msg := strings.TrimSpace(string(payload)); msg != "" {
		return msg
	}
	return http.StatusText(resp.StatusCode)
}
