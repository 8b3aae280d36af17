// Package restapi is the HTTP client for the storefront backend. It only
// knows request/response shapes; everything it returns goes through the
// catalog normalizer before any screen sees it.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/phenrril/modashop/internal/domain"
)

const maxErrorBody = 4096

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) FetchProducts(ctx context.Context) ([]domain.RawProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend productos: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return nil, statusError("productos", res)
	}
	var out []domain.RawProduct
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchProduct(ctx context.Context, id string) (*domain.RawProduct, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("id vacío")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products/"+id, nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend producto: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if res.StatusCode >= 300 {
		return nil, statusError("producto", res)
	}
	var out domain.RawProduct
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

type orderItemReq struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Variant   string  `json:"variant,omitempty"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
}

type orderReq struct {
	ID      string         `json:"id"`
	Email   string         `json:"email"`
	Name    string         `json:"name"`
	Address string         `json:"address,omitempty"`
	Items   []orderItemReq `json:"items"`
	Total   float64        `json:"total"`
}

type orderResp struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

func (c *Client) SubmitOrder(ctx context.Context, o *domain.Order) (string, error) {
	if o == nil {
		return "", errors.New("orden nil")
	}
	body := orderReq{
		ID:      o.ID.String(),
		Email:   o.Email,
		Name:    o.Name,
		Address: o.Address,
		Total:   o.Total,
	}
	for _, it := range o.Items {
		body.Items = append(body.Items, orderItemReq{
			ProductID: it.ProductID,
			Title:     it.Title,
			Variant:   it.Variant,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
		})
	}
	buf, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(buf))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)
	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("backend orden: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return "", statusError("orden", res)
	}
	var out orderResp
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Reference == "" {
		return "", errors.New("respuesta de orden incompleta")
	}
	return out.Reference, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func statusError(op string, res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))
	if msg != "" {
		return fmt.Errorf("%s status %d: %s", op, res.StatusCode, msg)
	}
	return fmt.Errorf("%s status %d", op, res.StatusCode)
}
