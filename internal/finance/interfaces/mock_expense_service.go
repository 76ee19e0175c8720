package interfaces

import (
	"context"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
)

type MockExpenseService struct {
	Expenses []domain.Expense
	Expense  *domain.Expense
	Err      error
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Expenses, nil
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, userID string, patch domain.ExpensePatch) (*domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Expense, nil
}

func (m *MockExpenseService) UpdateExpense(ctx context.Context, expenseID int64, userID string, patch domain.ExpensePatch) (*domain.Expense, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Expense, nil
}

func (m *MockExpenseService) DeleteExpense(ctx context.Context, expenseID int64, userID string) error {
	return m.Err
}
