package infrastructure

import (
	"context"
	"database/sql"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	query := `INSERT INTO expenses (user_id, category_id, date, amount, description, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		expense.UserID, expense.CategoryID, expense.Date, expense.Amount,
		expense.Description, expense.CreatedAt, expense.UpdatedAt,
	).Scan(&expense.ID)
	return wrapConstraintError(err)
}

func (r *ExpenseRepository) FindByUser(ctx context.Context, userID string) ([]domain.Expense, error) {
	query := `SELECT id, user_id, category_id, date, amount, description, created_at, updated_at
              FROM expenses WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(&expense.ID, &expense.UserID, &expense.CategoryID, &expense.Date,
			&expense.Amount, &expense.Description, &expense.CreatedAt, &expense.UpdatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) FindByID(ctx context.Context, expenseID int64, userID string) (*domain.Expense, error) {
	query := `SELECT id, user_id, category_id, date, amount, description, created_at, updated_at
              FROM expenses WHERE id = $1 AND user_id = $2`

	var expense domain.Expense
	err := r.db.QueryRowContext(ctx, query, expenseID, userID).
		Scan(&expense.ID, &expense.UserID, &expense.CategoryID, &expense.Date,
			&expense.Amount, &expense.Description, &expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, expense *domain.Expense) (int64, error) {
	query := `UPDATE expenses
              SET category_id = $1, date = $2, amount = $3, description = $4, updated_at = $5
              WHERE id = $6 AND user_id = $7`

	result, err := r.db.ExecContext(ctx, query,
		expense.CategoryID, expense.Date, expense.Amount, expense.Description,
		expense.UpdatedAt, expense.ID, expense.UserID,
	)
	if err != nil {
		return 0, wrapConstraintError(err)
	}
	return result.RowsAffected()
}

func (r *ExpenseRepository) Delete(ctx context.Context, expenseID int64, userID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, expenseID, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
