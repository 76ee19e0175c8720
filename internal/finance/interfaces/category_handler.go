package interfaces

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, userID string, patch domain.CategoryPatch) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, userID string, patch domain.CategoryPatch) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64, userID string) error
}

type CategoryHandler struct {
	service     CategoryServiceInterface
	respondJSON func(w http.ResponseWriter, status int, payload interface{})
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
) *CategoryHandler {
	if service == nil || respondJSON == nil {
		panic("Service and response function must not be nil")
	}
	return &CategoryHandler{
		service:     service,
		respondJSON: respondJSON,
	}
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	categories, err := h.service.ListCategories(r.Context(), userID)
	if err != nil {
		respondFinanceError(h.respondJSON, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	var patch domain.CategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid request body"})
		return
	}

	if _, err := h.service.CreateCategory(r.Context(), userID, patch); err != nil {
		respondFinanceError(h.respondJSON, w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Category created",
	})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	categoryID, ok := pathID(r, "categoryID")
	if !ok {
		h.respondJSON(w, http.StatusNotFound, map[string]interface{}{"message": "Category not found"})
		return
	}

	var patch domain.CategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]interface{}{"message": "Invalid request body"})
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), categoryID, userID, patch)
	if err != nil {
		respondFinanceError(h.respondJSON, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Category %d updated", category.ID),
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	categoryID, ok := pathID(r, "categoryID")
	if !ok {
		h.respondJSON(w, http.StatusNotFound, map[string]interface{}{"message": "Category not found"})
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID, userID); err != nil {
		respondFinanceError(h.respondJSON, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Category %d deleted", categoryID),
	})
}
