package storage

import (
	"fmt"

	"github.com/chris/upi-expense-tracker/pkg/models"
)

// ErrUnknownCategory is returned when a pending expense references a category the owner does not have.
var ErrUnknownCategory = fmt.Errorf("%w: unknown category", models.ErrValidation)

// ErrInvalidOutcome is returned when a resolve is attempted with anything but CONFIRMED or CANCELLED.
var ErrInvalidOutcome = fmt.Errorf("%w: status must be CONFIRMED or CANCELLED", models.ErrValidation)
