package upi

import (
	"errors"
	"net/url"
	"strings"
)

// Payee is what a scanned UPI QR code contributes to the payment form.
type Payee struct {
	VPA  string
	Name string
}

var (
	ErrNotUPIPayload = errors.New("this QR code is not a UPI payment code")
	ErrMissingPayee  = errors.New("this QR code has no UPI ID")
)

// ParseScannedPayload reads pa and pn from the text of a scanned UPI QR code.
// The name is returned as printed; it is sanitized only when a link is built.
func ParseScannedPayload(text string) (Payee, error) {
	u, err := url.Parse(strings.TrimSpace(text))
	if err != nil || !strings.EqualFold(u.Scheme, "upi") || !strings.EqualFold(u.Host, "pay") {
		return Payee{}, ErrNotUPIPayload
	}

	q := u.Query()
	vpa := strings.TrimSpace(q.Get("pa"))
	if vpa == "" {
		return Payee{}, ErrMissingPayee
	}
	return Payee{VPA: vpa, Name: strings.TrimSpace(q.Get("pn"))}, nil
}
