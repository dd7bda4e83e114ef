package expenses

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chris/upi-expense-tracker/pkg/api"
	"github.com/chris/upi-expense-tracker/pkg/models"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, api.Error{Message: message})
}

// writeStoreError maps the storage error taxonomy onto HTTP statuses.
// Validation messages are shown to the user; anything else gets the fallback text.
func writeStoreError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, "Expense not found")
	default:
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
