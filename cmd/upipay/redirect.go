package main

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/chris/upi-expense-tracker/pkg/session"
	"github.com/chris/upi-expense-tracker/pkg/upi"
)

// linkRedirector prints the payment link and, unless disabled, hands it to the
// desktop's URL handler (which forwards upi:// to a linked phone or app).
type linkRedirector struct {
	out  io.Writer
	open bool
}

var _ session.Redirector = (*linkRedirector)(nil)

func (r *linkRedirector) Redirect(ctx context.Context, link upi.PayLink) error {
	fmt.Fprintf(r.out, "Pay %s INR to %s (%s):\n  %s\n", link.Amount, link.PayeeName, link.PayeeVPA, link.URI)
	if !r.open {
		return nil
	}
	return startOpener(openCommand(link.URI))
}

// startOpener runs cmd in the background. The opener outlives the command
// that started it, so it is reaped rather than tied to a context.
func startOpener(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open payment link: %w", err)
	}
	go cmd.Wait()
	return nil
}

func openCommand(uri string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", uri)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", uri)
	default:
		return exec.Command("xdg-open", uri)
	}
}
