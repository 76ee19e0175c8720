package application

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/infrastructure"
	"github.com/stretchr/testify/assert"
)

func validExpensePatch() domain.ExpensePatch {
	return domain.ExpensePatch{
		Date:        json.RawMessage(`"2025-05-14"`),
		CategoryID:  json.RawMessage(`1`),
		Amount:      json.RawMessage(`20.5`),
		Description: json.RawMessage(`"Lunch"`),
	}
}

func TestCreateExpense_Valid(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo, &MockCategoryService{Exists: true})

	expense, err := service.CreateExpense(context.Background(), "user-1", validExpensePatch())
	assert.NoError(t, err)
	assert.Equal(t, "user-1", expense.UserID)
	assert.Equal(t, int64(1), expense.CategoryID)
	assert.Equal(t, 20.5, expense.Amount)
	assert.Equal(t, "Lunch", expense.Description)
	assert.Equal(t, "2025-05-14", expense.Date.Format(domain.DateLayout))
	assert.Len(t, repo.Expenses, 1)
}

func TestCreateExpense_RoundsAmount(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo, &MockCategoryService{Exists: true})

	patch := validExpensePatch()
	patch.Amount = json.RawMessage(`20.555`)

	expense, err := service.CreateExpense(context.Background(), "user-1", patch)
	assert.NoError(t, err)
	assert.Equal(t, 20.56, expense.Amount)
}

func TestCreateExpense_MissingFieldOrder(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo, &MockCategoryService{Exists: true})

	// missing both date and category reports the date error
	patch := domain.ExpensePatch{
		Amount:      json.RawMessage(`20.5`),
		Description: json.RawMessage(`"Lunch"`),
	}
	_, err := service.CreateExpense(context.Background(), "user-1", patch)
	assert.Error(t, err)
	assert.Equal(t, "You must include a date", err.Error())
	assert.Empty(t, repo.Expenses)
}

func TestCreateExpense_InvalidDate(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo, &MockCategoryService{Exists: true})

	patch := validExpensePatch()
	patch.Date = json.RawMessage(`"invalid-date"`)

	_, err := service.CreateExpense(context.Background(), "user-1", patch)
	assert.True(t, financeErrors.IsFieldError(err))
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD.", err.Error())
	assert.Empty(t, repo.Expenses)
}

func TestCreateExpense_UnknownCategory(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo, &MockCategoryService{Exists: false})

	_, err := service.CreateExpense(context.Background(), "user-1", validExpensePatch())
	assert.ErrorIs(t, err, financeErrors.ErrCategoryNotFound)
	assert.Empty(t, repo.Expenses)
}

func TestUpdateExpense_PartialUpdate(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo, &MockCategoryService{Exists: true})

	created, err := service.CreateExpense(context.Background(), "user-1", validExpensePatch())
	assert.NoError(t, err)
	before := created.UpdatedAt
	time.Sleep(time.Millisecond)

	updated, err := service.UpdateExpense(context.Background(), created.ID, "user-1", domain.ExpensePatch{
		Amount: json.RawMessage(`100.82`),
	})
	assert.NoError(t, err)
	assert.Equal(t, 100.82, updated.Amount)

	// untouched fields keep their stored values
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, created.CategoryID, updated.CategoryID)
	assert.Equal(t, created.Description, updated.Description)
	assert.True(t, updated.UpdatedAt.After(before))
}

func TestUpdateExpense_FirstFailureWins(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo, &MockCategoryService{Exists: true})

	created, err := service.CreateExpense(context.Background(), "user-1", validExpensePatch())
	assert.NoError(t, err)

	// both categoryId and amount are invalid; categoryId is evaluated first
	_, err = service.UpdateExpense(context.Background(), created.ID, "user-1", domain.ExpensePatch{
		CategoryID: json.RawMessage(`"nope"`),
		Amount:     json.RawMessage(`"invalid_amount"`),
	})
	assert.Equal(t, "Invalid value for categoryId.", err.Error())
}

func TestUpdateExpense_InvalidDateValue(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo, &MockCategoryService{Exists: true})

	created, err := service.CreateExpense(context.Background(), "user-1", validExpensePatch())
	assert.NoError(t, err)

	_, err = service.UpdateExpense(context.Background(), created.ID, "user-1", domain.ExpensePatch{
		Date: json.RawMessage(`1`),
	})
	assert.True(t, financeErrors.IsFieldError(err))
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD.", err.Error())
}

func TestUpdateExpense_NotFound(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo, &MockCategoryService{Exists: true})

	_, err := service.UpdateExpense(context.Background(), 99, "user-1", domain.ExpensePatch{
		Amount: json.RawMessage(`10`),
	})
	assert.ErrorIs(t, err, financeErrors.ErrExpenseNotFound)
}

func TestUpdateExpense_OtherUsersExpenseIsNotFound(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo, &MockCategoryService{Exists: true})

	created, err := service.CreateExpense(context.Background(), "user-1", validExpensePatch())
	assert.NoError(t, err)

	_, err = service.UpdateExpense(context.Background(), created.ID, "user-2", domain.ExpensePatch{
		Amount: json.RawMessage(`10`),
	})
	assert.ErrorIs(t, err, financeErrors.ErrExpenseNotFound)
}

func TestDeleteExpense(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo, &MockCategoryService{Exists: true})

	created, err := service.CreateExpense(context.Background(), "user-1", validExpensePatch())
	assert.NoError(t, err)

	assert.NoError(t, service.DeleteExpense(context.Background(), created.ID, "user-1"))
	assert.Empty(t, repo.Expenses)

	err = service.DeleteExpense(context.Background(), created.ID, "user-1")
	assert.ErrorIs(t, err, financeErrors.ErrExpenseNotFound)
}

func TestListExpenses_EmptyIsNotNil(t *testing.T) {
	repo := &infrastructure.MockExpenseRepository{}
	service := NewExpenseService(repo, &MockCategoryService{Exists: true})

	expenses, err := service.ListExpenses(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.NotNil(t, expenses)
	assert.Empty(t, expenses)
}
