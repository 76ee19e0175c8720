package interfaces

import (
	"context"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
)

type MockCategoryService struct {
	Categories []domain.Category
	Category   *domain.Category
	Err        error
}

func (m *MockCategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, userID string, patch domain.CategoryPatch) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Category, nil
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, categoryID int64, userID string, patch domain.CategoryPatch) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Category, nil
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, categoryID int64, userID string) error {
	return m.Err
}
