// Package api speaks to the remote Bill Calendar HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/billcal-dev/billcal/internal/model"
)

// TokenSource supplies the bearer credential attached to requests.
type TokenSource interface {
	Read() (string, error)
}

// Client is an HTTP client bound to a fixed API base URL. Whenever the token
// source holds a credential, it is sent as a bearer authorization header.
type Client struct {
	baseURL string
	tokens  TokenSource
	httpc   *http.Client
}

// NewClient creates a Client for the given base URL.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpc:   &http.Client{},
	}
}

// Credentials are the login/register request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Register creates an account and returns its bearer token.
func (c *Client) Register(ctx context.Context, creds Credentials) (string, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", creds, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// ListBills returns all bills in server order.
func (c *Client) ListBills(ctx context.Context) ([]model.Bill, error) {
	var bills []model.Bill
	if err := c.do(ctx, http.MethodGet, "/bills", nil, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// NewBill holds the fields of a bill creation request.
type NewBill struct {
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   model.Date      `json:"dueDate"`
	Recurring bool            `json:"recurring"`
}

// CreateBill creates a bill and returns the server's record.
func (c *Client) CreateBill(ctx context.Context, b NewBill) (model.Bill, error) {
	var created model.Bill
	if err := c.do(ctx, http.MethodPost, "/bills", b, &created); err != nil {
		return model.Bill{}, err
	}
	return created, nil
}

// MarkBillPaid flags a bill as paid. The response body is ignored.
func (c *Client) MarkBillPaid(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/bills/"+url.PathEscape(id)+"/paid", nil, nil)
}

// DeleteBill removes a bill by identifier.
func (c *Client) DeleteBill(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/bills/"+url.PathEscape(id), nil, nil)
}

// ListPaychecks returns all paychecks in server order.
func (c *Client) ListPaychecks(ctx context.Context) ([]model.Paycheck, error) {
	var paychecks []model.Paycheck
	if err := c.do(ctx, http.MethodGet, "/paychecks", nil, &paychecks); err != nil {
		return nil, err
	}
	return paychecks, nil
}

// NewPaycheck holds the fields of a paycheck creation request.
type NewPaycheck struct {
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Type      model.PayType   `json:"type"`
	PayPeriod string          `json:"payPeriod"`
	Payday    model.Date      `json:"payday"`
}

// CreatePaycheck creates a paycheck and returns the server's record.
func (c *Client) CreatePaycheck(ctx context.Context, p NewPaycheck) (model.Paycheck, error) {
	var created model.Paycheck
	if err := c.do(ctx, http.MethodPost, "/paychecks", p, &created); err != nil {
		return model.Paycheck{}, err
	}
	return created, nil
}

// DeletePaycheck removes a paycheck by identifier.
func (c *Client) DeletePaycheck(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/paychecks/"+url.PathEscape(id), nil, nil)
}

// do issues one request. No retries, no timeout beyond what ctx carries.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok, err := c.tokens.Read(); err == nil && tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	slog.Debug("api request", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
