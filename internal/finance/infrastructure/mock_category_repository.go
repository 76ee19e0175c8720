package infrastructure

import (
	"context"
	"database/sql"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

// MockCategoryRepository is an in-memory stand-in used by service tests.
type MockCategoryRepository struct {
	Categories []domain.Category
	Referenced map[int64]bool
	Err        error
	nextID     int64
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	category.ID = m.nextID
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) FindByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var categories []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, categoryID int64, userID string) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == categoryID && category.UserID == userID {
			found := category
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MockCategoryRepository) ExistsByID(ctx context.Context, categoryID int64, userID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	for _, category := range m.Categories {
		if category.ID == categoryID && category.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID && m.Categories[i].UserID == category.UserID {
			m.Categories[i] = *category
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, categoryID int64, userID string) error {
	if m.Err != nil {
		return m.Err
	}
	if m.Referenced[categoryID] {
		return financeErrors.ErrCategoryInUse
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID && m.Categories[i].UserID == userID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}
