// Package client is the HTTP consumer side of the inventory API. It maps
// the wire contract back into the error taxonomy the session controller
// acts on: validation errors stay structured, unresolved ids become
// ErrNotFound, and anything transport-shaped becomes a *TransportError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ridloal/inventory-manager/internal/product/domain"
)

var ErrNotFound = errors.New("product not found")

// TransportError marks network and decoding failures, as opposed to a
// response the server actually produced.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type InventoryAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type httpInventoryClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns an InventoryAPI over HTTP. baseURL includes the API prefix,
// e.g. http://localhost:8082/api.
func New(baseURL string) InventoryAPI {
	return &httpInventoryClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *httpInventoryClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	resp, err := c.do(ctx, http.MethodGet, "/product", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus("list products", resp)
	}
	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, &TransportError{Op: "decode product list", Err: err}
	}
	return products, nil
}

func (c *httpInventoryClient) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	resp, err := c.do(ctx, http.MethodGet, "/product/"+id, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeProduct(resp)
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, c.unexpectedStatus("get product", resp)
	}
}

func (c *httpInventoryClient) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	resp, err := c.do(ctx, http.MethodPost, "/product", in)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		return decodeProduct(resp)
	case http.StatusUnprocessableEntity:
		return nil, decodeValidation(resp)
	default:
		return nil, c.unexpectedStatus("create product", resp)
	}
}

func (c *httpInventoryClient) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error) {
	resp, err := c.do(ctx, http.MethodPut, "/product/"+id, in)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeProduct(resp)
	case http.StatusUnprocessableEntity:
		return nil, decodeValidation(resp)
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, c.unexpectedStatus("update product", resp)
	}
}

func (c *httpInventoryClient) DeleteProduct(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/product/"+id, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return c.unexpectedStatus("delete product", resp)
	}
}

func (c *httpInventoryClient) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var payload *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Op: "marshal request", Err: err}
		}
		payload = bytes.NewBuffer(data)
	}

	var req *http.Request
	var err error
	if payload != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.BaseURL+path, nil)
	}
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: method + " " + path, Err: err}
	}
	return resp, nil
}

func (c *httpInventoryClient) unexpectedStatus(op string, resp *http.Response) error {
	// The API never exposes store-level detail, so there is nothing worth
	// parsing out of an unexpected body.
	return &TransportError{Op: op, Err: fmt.Errorf("server returned status %d", resp.StatusCode)}
}

func decodeProduct(resp *http.Response) (*domain.Product, error) {
	var p domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, &TransportError{Op: "decode product", Err: err}
	}
	return &p, nil
}

func decodeValidation(resp *http.Response) error {
	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return &TransportError{Op: "decode validation errors", Err: err}
	}
	return &domain.ValidationError{Fields: body.Errors}
}
