// Package client talks to the expense API on behalf of the upipay terminal client.
// It wraps the generated api.ClientWithResponses and turns its responses into
// the domain errors the session understands.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/chris/upi-expense-tracker/pkg/api"
	"github.com/chris/upi-expense-tracker/pkg/models"
	"github.com/google/uuid"
	"github.com/oapi-codegen/oapi-codegen/v2/pkg/securityprovider"
)

const defaultTimeout = 15 * time.Second

// NetworkError reports a call that failed in transport or came back with a
// response the caller cannot act on. The session treats both alike.
type NetworkError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s: server returned %d", e.Op, e.StatusCode)
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Client calls the UPI expense endpoints with a bearer token.
type Client struct {
	api api.ClientWithResponsesInterface
}

// New creates a Client for the API at baseURL.
func New(baseURL, token string, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	bearer, err := securityprovider.NewSecurityProviderBearerToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to set up bearer auth: %w", err)
	}
	c, err := api.NewClientWithResponses(baseURL,
		api.WithHTTPClient(httpClient),
		api.WithRequestEditorFn(bearer.Intercept),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return &Client{api: c}, nil
}

// InitiateExpense creates a pending expense and returns its ID.
func (c *Client) InitiateExpense(ctx context.Context, req api.NewUpiExpense) (string, error) {
	const op = "initiate expense"
	resp, err := c.api.InitiateUpiExpenseWithResponse(ctx, req)
	if err != nil {
		return "", &NetworkError{Op: op, Err: err}
	}
	if resp.JSON201 == nil {
		return "", responseError(op, resp.StatusCode(), resp.JSON400, resp.JSON401, resp.JSON500)
	}
	return resp.JSON201.Data.ExpenseId.String(), nil
}

// ResolveExpense reports the payment outcome for a pending expense.
func (c *Client) ResolveExpense(ctx context.Context, id string, outcome models.ExpenseStatus) (*api.Expense, error) {
	const op = "resolve expense"
	expenseID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	body := api.ExpenseResolution{Status: api.ExpenseResolutionStatus(outcome)}
	resp, err := c.api.ResolveUpiExpenseWithResponse(ctx, expenseID, body)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	if resp.JSON200 == nil {
		return nil, responseError(op, resp.StatusCode(), resp.JSON400, resp.JSON401, resp.JSON404, resp.JSON500)
	}
	return resp.JSON200, nil
}

// GetExpense fetches one expense.
func (c *Client) GetExpense(ctx context.Context, id string) (*api.Expense, error) {
	const op = "get expense"
	expenseID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	resp, err := c.api.GetUpiExpenseWithResponse(ctx, expenseID)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	if resp.JSON200 == nil {
		return nil, responseError(op, resp.StatusCode(), resp.JSON401, resp.JSON404)
	}
	return resp.JSON200, nil
}

// ListExpenses fetches the caller's confirmed expenses.
func (c *Client) ListExpenses(ctx context.Context) (*api.ExpenseLedger, error) {
	const op = "list expenses"
	resp, err := c.api.ListExpensesWithResponse(ctx)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	if resp.JSON200 == nil {
		return nil, responseError(op, resp.StatusCode(), resp.JSON401, resp.JSON500)
	}
	return resp.JSON200, nil
}

func parseID(id string) (uuid.UUID, error) {
	expenseID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid expense ID %q", models.ErrValidation, id)
	}
	return expenseID, nil
}

// responseError maps a response without the expected body to an error. bodies
// are the decoded error payloads of the operation; at most one is set.
func responseError(op string, status int, bodies ...*api.Error) error {
	message := ""
	for _, b := range bodies {
		if b != nil {
			message = b.Message
			break
		}
	}

	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", models.ErrValidation, message)
	}
	if status < http.StatusBadRequest && message == "" {
		message = "unexpected response body"
	}
	return &NetworkError{Op: op, StatusCode: status, Message: message}
}
