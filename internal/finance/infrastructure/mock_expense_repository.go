package infrastructure

import (
	"context"
	"database/sql"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
)

// MockExpenseRepository is an in-memory stand-in used by service tests.
type MockExpenseRepository struct {
	Expenses []domain.Expense
	Err      error
	nextID   int64
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	expense.ID = m.nextID
	m.Expenses = append(m.Expenses, *expense)
	return nil
}

func (m *MockExpenseRepository) FindByUser(ctx context.Context, userID string) ([]domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var expenses []domain.Expense
	for _, expense := range m.Expenses {
		if expense.UserID == userID {
			expenses = append(expenses, expense)
		}
	}
	return expenses, nil
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, expenseID int64, userID string) (*domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, expense := range m.Expenses {
		if expense.ID == expenseID && expense.UserID == userID {
			found := expense
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense *domain.Expense) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	for i := range m.Expenses {
		if m.Expenses[i].ID == expense.ID && m.Expenses[i].UserID == expense.UserID {
			m.Expenses[i] = *expense
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockExpenseRepository) Delete(ctx context.Context, expenseID int64, userID string) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	for i := range m.Expenses {
		if m.Expenses[i].ID == expenseID && m.Expenses[i].UserID == userID {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
