package application

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

type CategoryServiceInterface interface {
	DoesCategoryExist(ctx context.Context, categoryID int64, userID string) (bool, error)
}

type ExpenseService struct {
	repo            domain.ExpenseRepository
	categoryService CategoryServiceInterface
}

func NewExpenseService(repo domain.ExpenseRepository, categoryService CategoryServiceInterface) *ExpenseService {
	return &ExpenseService{repo: repo, categoryService: categoryService}
}

func (s *ExpenseService) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	expenses, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// CreateExpense validates the full payload before touching the store:
// presence in fixed order, then coercion and the category ownership
// check, again in field order. The insert itself is a single statement,
// so the FK constraint backstops any race with a concurrent category
// delete.
func (s *ExpenseService) CreateExpense(ctx context.Context, userID string, patch domain.ExpensePatch) (*domain.Expense, error) {
	if err := patch.RequireCreateFields(); err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(patch.Date)
	if err != nil {
		return nil, err
	}
	categoryID, err := s.resolveCategory(ctx, patch.CategoryID, userID)
	if err != nil {
		return nil, err
	}
	amount, err := domain.ParseAmount(patch.Amount)
	if err != nil {
		return nil, err
	}
	description, err := domain.ParseDescription(patch.Description)
	if err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		UserID:      userID,
		CategoryID:  categoryID,
		Date:        date,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	expense.RoundToTwoDecimalPlaces()
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// UpdateExpense applies only the keys present in the payload, evaluating
// date, categoryId, amount, description in that order and returning the
// first failure. Absent keys keep their stored values.
func (s *ExpenseService) UpdateExpense(ctx context.Context, expenseID int64, userID string, patch domain.ExpensePatch) (*domain.Expense, error) {
	expense, err := s.repo.FindByID(ctx, expenseID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrExpenseNotFound
		}
		return nil, err
	}

	if patch.Date != nil {
		date, err := domain.ParseDate(patch.Date)
		if err != nil {
			return nil, err
		}
		expense.Date = date
	}
	if patch.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, patch.CategoryID, userID)
		if err != nil {
			return nil, err
		}
		expense.CategoryID = categoryID
	}
	if patch.Amount != nil {
		amount, err := domain.ParseAmount(patch.Amount)
		if err != nil {
			return nil, err
		}
		expense.Amount = amount
		expense.RoundToTwoDecimalPlaces()
	}
	if patch.Description != nil {
		description, err := domain.ParseDescription(patch.Description)
		if err != nil {
			return nil, err
		}
		expense.Description = description
	}
	expense.UpdatedAt = time.Now()

	affected, err := s.repo.Update(ctx, expense)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, financeErrors.ErrExpenseNotFound
	}
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID int64, userID string) error {
	affected, err := s.repo.Delete(ctx, expenseID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrExpenseNotFound
	}
	return nil
}

func (s *ExpenseService) resolveCategory(ctx context.Context, raw json.RawMessage, userID string) (int64, error) {
	categoryID, err := domain.ParseCategoryID(raw)
	if err != nil {
		return 0, err
	}
	exists, err := s.categoryService.DoesCategoryExist(ctx, categoryID, userID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, financeErrors.ErrCategoryNotFound
	}
	return categoryID, nil
}
