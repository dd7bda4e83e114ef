package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/chris/upi-expense-tracker/pkg/models"
	"github.com/chris/upi-expense-tracker/pkg/session"
)

// terminalPlatform turns terminal events into return signals: a line on
// stdin counts as focus, and the job being resumed in the foreground counts
// as becoming visible.
type terminalPlatform struct {
	mu         sync.Mutex
	focus      []func()
	visibility []func(session.Visibility)
}

var (
	_ session.FocusSource      = (*terminalPlatform)(nil)
	_ session.VisibilitySource = (*terminalPlatform)(nil)
)

func (p *terminalPlatform) OnFocus(fn func()) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.focus = append(p.focus, fn)
	n := len(p.focus) - 1
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.focus[n] = nil
	}
}

func (p *terminalPlatform) OnVisibilityChange(fn func(session.Visibility)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visibility = append(p.visibility, fn)
	n := len(p.visibility) - 1
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.visibility[n] = nil
	}
}

func (p *terminalPlatform) focusGained() {
	p.mu.Lock()
	fns := append([]func(){}, p.focus...)
	p.mu.Unlock()
	for _, fn := range fns {
		if fn != nil {
			fn()
		}
	}
}

func (p *terminalPlatform) becameVisible() {
	p.mu.Lock()
	fns := append([]func(session.Visibility){}, p.visibility...)
	p.mu.Unlock()
	for _, fn := range fns {
		if fn != nil {
			fn(session.Visible)
		}
	}
}

// watchForeground reports resumeSignals as visibility changes until stop is called.
func (p *terminalPlatform) watchForeground() (stop func()) {
	if len(resumeSignals) == 0 {
		return func() {}
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, resumeSignals...)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
				p.becameVisible()
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}

// awaitOutcome waits for the user to come back from the UPI app and asks
// how the payment went. It returns once the session is idle again or stdin
// is closed; in the latter case the payment stays open for `upipay resume`.
func (a *app) awaitOutcome(ctx context.Context, c *session.Controller, returned bool) error {
	platform := &terminalPlatform{}
	stopSignals := platform.watchForeground()
	defer stopSignals()
	stopListening := session.Listen(platform, c)
	defer stopListening()

	unsubscribe := c.OnChange(func(s session.Snapshot) {
		if p := session.PromptFor(s); p.Visible && p.ActionsEnabled {
			fmt.Fprintln(a.out, "Did the payment go through? [y]es / [n]o / [d]ismiss")
		}
	})
	defer unsubscribe()

	if returned {
		c.OnPossibleReturn()
	} else {
		fmt.Fprintln(a.out, "Finish the payment in your UPI app, then press Enter here.")
	}

	lines := readLines(a.in)
	for {
		if c.Snapshot().State == session.Idle {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(a.out, "The payment is still open. Run `upipay resume` to finish it.")
				return nil
			}
			switch c.Snapshot().State {
			case session.AwaitingReturn:
				platform.focusGained()
			case session.AwaitingUserConfirmation:
				if err := a.answer(ctx, c, line); err != nil {
					return err
				}
			}
		}
	}
}

func (a *app) answer(ctx context.Context, c *session.Controller, line string) error {
	var outcome models.ExpenseStatus
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		outcome = models.CONFIRMED
	case "n", "no":
		outcome = models.CANCELLED
	case "d", "dismiss":
		if c.Dismiss() {
			fmt.Fprintln(a.out, "Dismissed. The expense was not logged.")
		}
		return nil
	default:
		fmt.Fprintln(a.out, "Please answer y, n or d.")
		return nil
	}

	_, err := c.Confirm(ctx, outcome)
	switch {
	case err == nil:
		fmt.Fprintln(a.out, resolvedMessage(outcome))
	case errors.Is(err, models.ErrNotFound):
		fmt.Fprintln(a.out, "This payment is no longer pending. Nothing was logged.")
	case errors.Is(err, context.Canceled):
		return err
	default:
		// the prompt is shown again by the OnChange subscriber
		fmt.Fprintf(a.out, "Could not save the outcome: %v\n", err)
	}
	return nil
}

func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}
