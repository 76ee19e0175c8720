package application

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/infrastructure"
	"github.com/stretchr/testify/assert"
)

func TestCreateCategory_Valid(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	category, err := service.CreateCategory(context.Background(), "user-1", domain.CategoryPatch{
		Name: json.RawMessage(`"Groceries"`),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Groceries", category.Name)
	assert.Equal(t, "user-1", category.UserID)
	assert.NotZero(t, category.ID)
	assert.Len(t, repo.Categories, 1)
}

func TestCreateCategory_MissingName(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	for _, raw := range []string{``, `null`, `""`, `0`, `false`} {
		patch := domain.CategoryPatch{}
		if raw != `` {
			patch.Name = json.RawMessage(raw)
		}
		_, err := service.CreateCategory(context.Background(), "user-1", patch)
		assert.Error(t, err, "expected %q to be rejected", raw)
		assert.True(t, financeErrors.IsMissingFieldError(err))
		assert.Equal(t, "You must include a category", err.Error())
	}
	assert.Empty(t, repo.Categories)
}

func TestCreateCategory_NonTextName(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	_, err := service.CreateCategory(context.Background(), "user-1", domain.CategoryPatch{
		Name: json.RawMessage(`123`),
	})
	assert.True(t, financeErrors.IsFieldError(err))
	assert.Empty(t, repo.Categories)
}

func TestUpdateCategory_Valid(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	created, err := service.CreateCategory(context.Background(), "user-1", domain.CategoryPatch{
		Name: json.RawMessage(`"Groceries"`),
	})
	assert.NoError(t, err)

	updated, err := service.UpdateCategory(context.Background(), created.ID, "user-1", domain.CategoryPatch{
		Name: json.RawMessage(`"Food"`),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Food", updated.Name)
	assert.Equal(t, "Food", repo.Categories[0].Name)
}

func TestUpdateCategory_AbsentNameKeepsStoredValue(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	created, err := service.CreateCategory(context.Background(), "user-1", domain.CategoryPatch{
		Name: json.RawMessage(`"Groceries"`),
	})
	assert.NoError(t, err)

	updated, err := service.UpdateCategory(context.Background(), created.ID, "user-1", domain.CategoryPatch{})
	assert.NoError(t, err)
	assert.Equal(t, "Groceries", updated.Name)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	_, err := service.UpdateCategory(context.Background(), 99, "user-1", domain.CategoryPatch{
		Name: json.RawMessage(`"Food"`),
	})
	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)
}

func TestUpdateCategory_OtherUsersCategoryIsNotFound(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	created, err := service.CreateCategory(context.Background(), "user-1", domain.CategoryPatch{
		Name: json.RawMessage(`"Groceries"`),
	})
	assert.NoError(t, err)

	_, err = service.UpdateCategory(context.Background(), created.ID, "user-2", domain.CategoryPatch{
		Name: json.RawMessage(`"Food"`),
	})
	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)
	assert.Equal(t, "Groceries", repo.Categories[0].Name)
}

func TestDeleteCategory(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	created, err := service.CreateCategory(context.Background(), "user-1", domain.CategoryPatch{
		Name: json.RawMessage(`"Groceries"`),
	})
	assert.NoError(t, err)

	assert.NoError(t, service.DeleteCategory(context.Background(), created.ID, "user-1"))
	assert.Empty(t, repo.Categories)

	err = service.DeleteCategory(context.Background(), created.ID, "user-1")
	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)
}

func TestDeleteCategory_Referenced(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{Referenced: map[int64]bool{}}
	service := NewCategoryService(repo)

	created, err := service.CreateCategory(context.Background(), "user-1", domain.CategoryPatch{
		Name: json.RawMessage(`"Groceries"`),
	})
	assert.NoError(t, err)
	repo.Referenced[created.ID] = true

	err = service.DeleteCategory(context.Background(), created.ID, "user-1")
	assert.ErrorIs(t, err, financeErrors.ErrCategoryInUse)
	assert.Len(t, repo.Categories, 1)
}

func TestListCategories_EmptyIsNotNil(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	categories, err := service.ListCategories(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

func TestListCategories_ScopedToUser(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	_, err := service.CreateCategory(context.Background(), "user-1", domain.CategoryPatch{
		Name: json.RawMessage(`"Groceries"`),
	})
	assert.NoError(t, err)
	_, err = service.CreateCategory(context.Background(), "user-2", domain.CategoryPatch{
		Name: json.RawMessage(`"Travel"`),
	})
	assert.NoError(t, err)

	categories, err := service.ListCategories(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, "Groceries", categories[0].Name)
}
