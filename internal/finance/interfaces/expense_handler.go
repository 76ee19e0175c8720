package interfaces

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
)

type ExpenseServiceInterface interface {
	ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error)
	CreateExpense(ctx context.Context, userID string, patch domain.ExpensePatch) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID int64, userID string, patch domain.ExpensePatch) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID int64, userID string) error
}

type ExpenseHandler struct {
	service     ExpenseServiceInterface
	respondJSON func(w http.ResponseWriter, status int, payload interface{})
}

func NewExpenseHandler(
	service ExpenseServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
) *ExpenseHandler {
	if service == nil || respondJSON == nil {
		panic("Service and response function must not be nil")
	}
	return &ExpenseHandler{
		service:     service,
		respondJSON: respondJSON,
	}
}

func (h *ExpenseHandler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	expenses, err := h.service.ListExpenses(r.Context(), userID)
	if err != nil {
		respondFinanceError(h.respondJSON, w, err)
		return
	}

	views := make([]domain.ExpenseDTO, 0, len(expenses))
	for i := range expenses {
		views = append(views, expenses[i].DTO())
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"expenses": views,
	})
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	var patch domain.ExpensePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid request body"})
		return
	}

	if _, err := h.service.CreateExpense(r.Context(), userID, patch); err != nil {
		respondFinanceError(h.respondJSON, w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Expense created",
	})
}

func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	expenseID, ok := pathID(r, "expenseID")
	if !ok {
		h.respondJSON(w, http.StatusNotFound, map[string]interface{}{"message": "Expense not found"})
		return
	}

	var patch domain.ExpensePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid request body"})
		return
	}

	expense, err := h.service.UpdateExpense(r.Context(), expenseID, userID, patch)
	if err != nil {
		respondFinanceError(h.respondJSON, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Expense %d updated", expense.ID),
	})
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	expenseID, ok := pathID(r, "expenseID")
	if !ok {
		h.respondJSON(w, http.StatusNotFound, map[string]interface{}{"message": "Expense not found"})
		return
	}

	if err := h.service.DeleteExpense(r.Context(), expenseID, userID); err != nil {
		respondFinanceError(h.respondJSON, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Expense %d deleted", expenseID),
	})
}
