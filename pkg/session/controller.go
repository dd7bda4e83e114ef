// Package session drives one UPI payment from the pay tap to the user's
// confirmation. The Controller is the single owner of the session cell; the
// return listener and the terminal UI hold the same *Controller.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/chris/upi-expense-tracker/pkg/api"
	"github.com/chris/upi-expense-tracker/pkg/models"
	"github.com/chris/upi-expense-tracker/pkg/upi"
	"golang.org/x/sync/singleflight"
)

// State is the phase of the payment session.
type State string

const (
	Idle                     State = "IDLE"
	AwaitingServerAck        State = "AWAITING_SERVER_ACK"
	AwaitingReturn           State = "AWAITING_RETURN"
	AwaitingUserConfirmation State = "AWAITING_USER_CONFIRMATION"
	Resolving                State = "RESOLVING"
)

var (
	// ErrSessionBusy is returned when a payment is started while another one is still open.
	ErrSessionBusy = errors.New("a payment is already in progress")
	// ErrNoPendingPayment is returned by Confirm when nothing awaits confirmation.
	ErrNoPendingPayment = errors.New("no payment is awaiting confirmation")
)

// Snapshot is a consistent copy of the session cell.
type Snapshot struct {
	State            State
	PendingExpenseID string
	Confirming       bool
}

// ExpenseAPI is the part of the expense API the session needs.
type ExpenseAPI interface {
	InitiateExpense(ctx context.Context, req api.NewUpiExpense) (string, error)
	ResolveExpense(ctx context.Context, id string, outcome models.ExpenseStatus) (*api.Expense, error)
}

// Persister keeps the pending expense ID across restarts. Load returns an
// empty ID when nothing is stored.
type Persister interface {
	Save(ctx context.Context, pendingExpenseID string) error
	Load(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Redirector hands the payment link to a UPI app.
type Redirector interface {
	Redirect(ctx context.Context, link upi.PayLink) error
}

// InitiateRequest is the expense the server records before the payment.
type InitiateRequest struct {
	Amount      models.Amount
	Category    string
	Description string
}

type observer struct {
	id int
	fn func(Snapshot)
}

// Controller owns the payment session state machine.
type Controller struct {
	api    ExpenseAPI
	store  Persister
	logger *slog.Logger

	mu         sync.Mutex
	state      State
	pendingID  string
	confirming bool
	group      singleflight.Group

	obsMu      sync.Mutex
	nextID     int
	observers  []observer
	onResolved []func(*api.Expense)
}

// Option configures a Controller.
type Option func(*Controller)

// WithPersister stores the pending expense ID so Resume can pick it up later.
func WithPersister(p Persister) Option {
	return func(c *Controller) {
		c.store = p
	}
}

// WithLogger sets the controller's logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// NewController creates an idle Controller.
func NewController(expenseAPI ExpenseAPI, opts ...Option) *Controller {
	c := &Controller{
		api:    expenseAPI,
		store:  nopPersister{},
		logger: slog.Default(),
		state:  Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current session state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{State: c.state, PendingExpenseID: c.pendingID, Confirming: c.confirming}
}

// Initiate records a pending expense on the server. It returns only after the
// server acknowledged it, and the ID is stored in the session by then.
func (c *Controller) Initiate(ctx context.Context, req InitiateRequest) (string, error) {
	c.mu.Lock()
	if c.state != Idle {
		c.mu.Unlock()
		return "", ErrSessionBusy
	}
	c.state = AwaitingServerAck
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	description := req.Description
	id, err := c.api.InitiateExpense(ctx, api.NewUpiExpense{
		Amount:      req.Amount.String(),
		Category:    req.Category,
		Description: &description,
	})
	if err != nil {
		c.mu.Lock()
		c.state = Idle
		snap = c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
		return "", fmt.Errorf("failed to initiate expense: %w", err)
	}

	if err := c.store.Save(ctx, id); err != nil {
		c.logger.Warn("failed to persist pending expense", "pendingExpenseId", id, "error", err)
	}

	c.mu.Lock()
	c.state = AwaitingReturn
	c.pendingID = id
	snap = c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	c.logger.Info("pending expense initiated", "pendingExpenseId", id, "amount", req.Amount.String())
	return id, nil
}

// Pay validates the payment, records the pending expense and only then
// redirects to the UPI app. A failed redirect leaves the session waiting for
// the user to come back.
func (c *Controller) Pay(ctx context.Context, req upi.PaymentRequest, category, description string, r Redirector) (string, error) {
	link, err := upi.BuildPayLink(req)
	if err != nil {
		return "", err
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return "", &upi.ValidationError{Field: "category", Message: "Category is required."}
	}
	description = strings.TrimSpace(description)
	if description == "" {
		description = "UPI to " + link.PayeeVPA
	}

	id, err := c.Initiate(ctx, InitiateRequest{Amount: link.Amount, Category: category, Description: description})
	if err != nil {
		return "", err
	}

	if err := r.Redirect(ctx, link); err != nil {
		return id, fmt.Errorf("failed to open payment app: %w", err)
	}
	return id, nil
}

// OnPossibleReturn moves a session waiting for the user's return to the
// confirmation prompt. It reports whether anything changed.
func (c *Controller) OnPossibleReturn() bool {
	c.mu.Lock()
	if c.state != AwaitingReturn || c.pendingID == "" {
		c.mu.Unlock()
		return false
	}
	c.state = AwaitingUserConfirmation
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return true
}

// Confirm reports the payment outcome. Taps that arrive while a resolve is in
// flight wait for it and get the same result; only one request is sent.
func (c *Controller) Confirm(ctx context.Context, outcome models.ExpenseStatus) (Snapshot, error) {
	if !outcome.IsResolution() {
		return c.Snapshot(), fmt.Errorf("%w: unsupported outcome %q", models.ErrValidation, outcome)
	}

	var ch <-chan singleflight.Result
	c.mu.Lock()
	switch {
	case c.confirming:
		// The key is still registered: the leader clears confirming under c.mu
		// before its function returns.
		ch = c.group.DoChan(c.pendingID, func() (interface{}, error) {
			return c.Snapshot(), nil
		})
	case c.state == AwaitingUserConfirmation && c.pendingID != "":
		id := c.pendingID
		c.state = Resolving
		c.confirming = true
		started := c.snapshotLocked()
		ch = c.group.DoChan(id, func() (interface{}, error) {
			return c.resolve(ctx, id, outcome, started)
		})
	default:
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, ErrNoPendingPayment
	}
	c.mu.Unlock()

	select {
	case res := <-ch:
		snap, _ := res.Val.(Snapshot)
		return snap, res.Err
	case <-ctx.Done():
		return c.Snapshot(), ctx.Err()
	}
}

func (c *Controller) resolve(ctx context.Context, id string, outcome models.ExpenseStatus, started Snapshot) (Snapshot, error) {
	c.notify(started)

	// A tap that gave up waiting must not abort the request the other taps share.
	ctx = context.WithoutCancel(ctx)
	expense, err := c.api.ResolveExpense(ctx, id, outcome)
	finished := err == nil || errors.Is(err, models.ErrNotFound)

	c.mu.Lock()
	if finished {
		c.state = Idle
		c.pendingID = ""
	} else {
		c.state = AwaitingUserConfirmation
	}
	c.confirming = false
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if finished {
		if clearErr := c.store.Clear(ctx); clearErr != nil {
			c.logger.Warn("failed to clear persisted session", "pendingExpenseId", id, "error", clearErr)
		}
	}
	c.notify(snap)

	if err != nil {
		c.logger.Warn("failed to resolve pending expense", "pendingExpenseId", id, "outcome", outcome, "error", err)
		return snap, fmt.Errorf("failed to resolve expense %s: %w", id, err)
	}

	c.logger.Info("pending expense resolved", "pendingExpenseId", id, "status", expense.Status)
	c.obsMu.Lock()
	callbacks := append([]func(*api.Expense){}, c.onResolved...)
	c.obsMu.Unlock()
	for _, fn := range callbacks {
		fn(expense)
	}
	return snap, nil
}

// Dismiss closes the prompt without reporting an outcome. The server record
// stays PENDING until it expires. It is ignored while a resolve is in flight.
func (c *Controller) Dismiss() bool {
	c.mu.Lock()
	if c.confirming || c.state != AwaitingUserConfirmation {
		c.mu.Unlock()
		return false
	}
	id := c.pendingID
	c.state = Idle
	c.pendingID = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if err := c.store.Clear(context.Background()); err != nil {
		c.logger.Warn("failed to clear persisted session", "pendingExpenseId", id, "error", err)
	}
	c.notify(snap)
	return true
}

// Resume restores a pending expense saved by an earlier process and waits for
// the user's return. It does nothing unless the session is idle.
func (c *Controller) Resume(ctx context.Context) (Snapshot, error) {
	id, err := c.store.Load(ctx)
	if err != nil {
		return c.Snapshot(), fmt.Errorf("failed to resume session: %w", err)
	}

	c.mu.Lock()
	if id == "" || c.state != Idle {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	c.state = AwaitingReturn
	c.pendingID = id
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	c.logger.Info("resumed pending expense", "pendingExpenseId", id)
	return snap, nil
}

// OnChange registers fn for every state change. Callbacks run outside the
// session lock. The returned function unsubscribes.
func (c *Controller) OnChange(fn func(Snapshot)) func() {
	c.obsMu.Lock()
	id := c.nextID
	c.nextID++
	c.observers = append(c.observers, observer{id: id, fn: fn})
	c.obsMu.Unlock()

	return func() {
		c.obsMu.Lock()
		defer c.obsMu.Unlock()
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// OnResolved registers fn for successfully resolved expenses.
func (c *Controller) OnResolved(fn func(*api.Expense)) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	c.onResolved = append(c.onResolved, fn)
}

func (c *Controller) notify(s Snapshot) {
	c.obsMu.Lock()
	fns := make([]func(Snapshot), 0, len(c.observers))
	for _, o := range c.observers {
		fns = append(fns, o.fn)
	}
	c.obsMu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

type nopPersister struct{}

func (nopPersister) Save(context.Context, string) error { return nil }

func (nopPersister) Load(context.Context) (string, error) { return "", nil }

func (nopPersister) Clear(context.Context) error { return nil }
