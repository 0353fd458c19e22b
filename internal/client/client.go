// Package client is a typed API client for the storefront. It builds its
// requests from the same contract the server registers its routes from, so a
// contract change breaks the compile instead of an integration.
package client

import (
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/akbusiness/food-store-backend/internal/contract"
	"github.com/akbusiness/food-store-backend/internal/order"
	"github.com/akbusiness/food-store-backend/internal/product"
	"github.com/akbusiness/food-store-backend/internal/user"
)

// APIError is a non-2xx response decoded into the API's uniform error body.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	http *resty.Client
}

// New returns a client for the given base URL. The underlying resty client
// keeps a cookie jar, so a Login call establishes the session for all
// subsequent admin calls.
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(baseURL),
	}
}

func (c *Client) Login(username, password string) (user.User, error) {
	var u user.User
	err := c.do(contract.Login, nil, contract.LoginRequest{Username: username, Password: password}, &u)
	return u, err
}

func (c *Client) Logout() error {
	return c.do(contract.Logout, nil, nil, nil)
}

func (c *Client) CurrentUser() (user.User, error) {
	var u user.User
	err := c.do(contract.CurrentUser, nil, nil, &u)
	return u, err
}

func (c *Client) ListProducts(filter contract.ProductListFilter) ([]product.Product, error) {
	var out []product.Product
	req := c.http.R().SetResult(&out).SetError(&APIError{})
	if filter.Search != "" {
		req.SetQueryParam("search", filter.Search)
	}
	if filter.Category != "" {
		req.SetQueryParam("category", filter.Category)
	}
	resp, err := req.Execute(contract.ProductList.Method, contract.ProductList.Path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, asAPIError(resp)
	}
	return out, nil
}

func (c *Client) GetProduct(id int) (product.Product, error) {
	var p product.Product
	err := c.do(contract.ProductGet, map[string]int{"id": id}, nil, &p)
	return p, err
}

func (c *Client) CreateProduct(req contract.CreateProductRequest) (product.Product, error) {
	var p product.Product
	err := c.do(contract.ProductCreate, nil, req, &p)
	return p, err
}

func (c *Client) UpdateProduct(id int, req contract.UpdateProductRequest) (product.Product, error) {
	var p product.Product
	err := c.do(contract.ProductUpdate, map[string]int{"id": id}, req, &p)
	return p, err
}

func (c *Client) DeleteProduct(id int) error {
	return c.do(contract.ProductDelete, map[string]int{"id": id}, nil, nil)
}

func (c *Client) CreateOrder(req contract.CreateOrderRequest) (order.OrderWithItems, error) {
	var ord order.OrderWithItems
	err := c.do(contract.OrderCreate, nil, req, &ord)
	return ord, err
}

func (c *Client) ListOrders() ([]order.Order, error) {
	var out []order.Order
	err := c.do(contract.OrderList, nil, nil, &out)
	return out, err
}

func (c *Client) GetOrder(id int) (order.OrderDetail, error) {
	var detail order.OrderDetail
	err := c.do(contract.OrderGet, map[string]int{"id": id}, nil, &detail)
	return detail, err
}

func (c *Client) do(route contract.Route, params map[string]int, body, result any) error {
	req := c.http.R().SetError(&APIError{})
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(route.Method, contract.BuildURL(route.Path, params))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return asAPIError(resp)
	}
	return nil
}

func asAPIError(resp *resty.Response) error {
	if apiErr, ok := resp.Error().(*APIError); ok && apiErr.Message != "" {
		apiErr.StatusCode = resp.StatusCode()
		return apiErr
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: resp.Status()}
}
