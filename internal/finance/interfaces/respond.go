package interfaces

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

// respondFinanceError maps service errors onto the wire contract: field
// format problems use the "error" key, everything else the "message" key.
func respondFinanceError(respondJSON func(w http.ResponseWriter, status int, payload interface{}), w http.ResponseWriter, err error) {
	var missingFieldError *financeErrors.MissingFieldError
	var fieldError *financeErrors.FieldError
	var persistenceError *financeErrors.PersistenceError

	switch {
	case errors.As(err, &missingFieldError):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"message": missingFieldError.Msg})
	case errors.As(err, &fieldError):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"error": fieldError.Msg})
	case errors.Is(err, financeErrors.ErrCategoryNotFound):
		respondJSON(w, http.StatusNotFound, map[string]interface{}{"message": financeErrors.ErrCategoryNotFound.Error()})
	case errors.Is(err, financeErrors.ErrExpenseNotFound):
		respondJSON(w, http.StatusNotFound, map[string]interface{}{"message": financeErrors.ErrExpenseNotFound.Error()})
	case errors.Is(err, financeErrors.ErrCategoryInUse):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"message": financeErrors.ErrCategoryInUse.Error()})
	case errors.As(err, &persistenceError):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"message": persistenceError.Error()})
	default:
		log.Printf("Unexpected service error: %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{"message": "Internal server error"})
	}
}

// pathID parses a numeric path segment. Non-numeric ids behave like
// unknown resources.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
