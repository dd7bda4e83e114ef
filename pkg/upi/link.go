// Package upi builds UPI payment deep links and reads scanned UPI QR payloads.
package upi

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/chris/upi-expense-tracker/pkg/models"
)

const (
	// Currency is the only currency code emitted in a pay link.
	Currency = "INR"

	// FallbackPayeeName is used when nothing printable is left of the payee name.
	FallbackPayeeName = "UPI Payment"

	scheme = "upi://pay"
)

var (
	vpaPattern        = regexp.MustCompile(`^[\w.\-]{2,}@[a-zA-Z]{2,10}$`)
	payeeNameDisallow = regexp.MustCompile(`[^a-zA-Z0-9 ]`)
)

// ValidationError reports a payment field the user has to correct.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets callers match any ValidationError with errors.Is(err, models.ErrValidation).
func (e *ValidationError) Unwrap() error {
	return models.ErrValidation
}

// PaymentRequest holds the raw fields of a payment form.
type PaymentRequest struct {
	PayeeVPA  string
	PayeeName string
	Amount    string
}

// PayLink is a validated payment ready for the redirect.
type PayLink struct {
	URI       string
	PayeeVPA  string
	PayeeName string
	Amount    models.Amount
}

// ValidateVPA trims vpa and checks it has the form <local-part>@<handle>.
func ValidateVPA(vpa string) (string, error) {
	vpa = strings.TrimSpace(vpa)
	if vpa == "" {
		return "", &ValidationError{Field: "payeeVpa", Message: "UPI ID is required."}
	}
	if !vpaPattern.MatchString(vpa) {
		return "", &ValidationError{Field: "payeeVpa", Message: "Please enter a valid UPI ID (e.g., name@bank)."}
	}
	return vpa, nil
}

// ParseAmount parses a user-entered amount into a positive two-decimal Amount.
func ParseAmount(raw string) (models.Amount, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.Amount{}, &ValidationError{Field: "amount", Message: "Amount is required."}
	}
	amount, err := models.ParseAmount(raw)
	if err != nil {
		return models.Amount{}, &ValidationError{Field: "amount", Message: "Please enter a valid amount."}
	}
	return amount, nil
}

// SanitizePayeeName returns the display name sent as pn. An empty name falls back
// to the local part of vpa. Anything but ASCII letters, digits and spaces is dropped.
func SanitizePayeeName(name, vpa string) string {
	raw := strings.TrimSpace(name)
	if raw == "" {
		raw, _, _ = strings.Cut(strings.TrimSpace(vpa), "@")
	}
	cleaned := strings.TrimSpace(payeeNameDisallow.ReplaceAllString(raw, ""))
	if cleaned == "" {
		return FallbackPayeeName
	}
	return cleaned
}

// BuildPayLink validates req and renders upi://pay?pa=..&pn=..&am=..&cu=INR.
// No other parameters are emitted; several UPI apps reject links that carry them.
func BuildPayLink(req PaymentRequest) (PayLink, error) {
	vpa, err := ValidateVPA(req.PayeeVPA)
	if err != nil {
		return PayLink{}, err
	}
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return PayLink{}, err
	}
	name := SanitizePayeeName(req.PayeeName, vpa)

	uri := fmt.Sprintf("%s?pa=%s&pn=%s&am=%s&cu=%s",
		scheme, escapeComponent(vpa), escapeComponent(name), amount.String(), Currency)

	return PayLink{URI: uri, PayeeVPA: vpa, PayeeName: name, Amount: amount}, nil
}

// IsValidationError reports whether err is a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// escapeComponent percent-encodes s with %20 for spaces, which is what UPI apps expect.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
