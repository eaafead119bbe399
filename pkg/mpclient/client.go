// Package mpclient calls the routes served by mercadopago.New from another
// Go process, e.g. a CLI or a backend-for-frontend.
package mpclient

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"mpbridge/internal/domain/entities"

	"github.com/go-resty/resty/v2"
)

// Client posts to application-hosted Mercado Pago routes.
type Client struct {
	baseURL string
	r       *resty.Client
}

type Option func(*Client)

// WithTimeout sets the request timeout. Default 30s.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.r.SetTimeout(d) }
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.r.SetHeader(key, value) }
}

// WithHTTPClient swaps the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		timeout := c.r.GetClient().Timeout
		c.r = resty.NewWithClient(hc).SetBaseURL(c.baseURL).SetTimeout(timeout)
	}
}

// New returns a client for the routes mounted at baseURL, e.g.
// "https://shop.example/api/mp". A trailing slash is ignored.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	c := &Client{
		baseURL: baseURL,
		r: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

type errorBody struct {
	Error string `json:"error"`
}

// ConfigResponse is the body of the config route.
type ConfigResponse struct {
	PublicKey *string `json:"publicKey"`
}

// Checkout creates a one-time payment. Callers redirect to the returned URL.
func (c *Client) Checkout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutResponse, error) {
	var out entities.CheckoutResponse
	err := c.post(ctx, "/checkout", req, &out, "checkout failed")
	return out, err
}

// Subscribe creates a subscription. Callers redirect to the returned URL.
func (c *Client) Subscribe(ctx context.Context, req entities.SubscribeRequest) (entities.SubscribeResponse, error) {
	var out entities.SubscribeResponse
	err := c.post(ctx, "/subscribe", req, &out, "subscribe failed")
	return out, err
}

// GetConfig returns the public key the server exposes.
func (c *Client) GetConfig(ctx context.Context) (ConfigResponse, error) {
	var (
		out     ConfigResponse
		errResp errorBody
	)
	resp, err := c.r.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errResp).
		Get("/config")
	if err != nil {
		return ConfigResponse{}, err
	}
	if resp.IsError() {
		return ConfigResponse{}, responseError(errResp, "failed to get config")
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, body, result any, fallback string) error {
	var errResp errorBody
	resp, err := c.r.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(result).
		SetError(&errResp).
		Post(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return responseError(errResp, fallback)
	}
	return nil
}

func responseError(body errorBody, fallback string) error {
	if body.Error != "" {
		return errors.New(body.Error)
	}
	return errors.New(fallback)
}
