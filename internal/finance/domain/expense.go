package domain

import (
	"context"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

type Expense struct {
	ID          int64
	UserID      string
	CategoryID  int64
	Date        time.Time
	Amount      float64
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExpenseDTO is the public view of an expense. The credential-owning user
// is implied by the request path and never serialized.
type ExpenseDTO struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"`
	CategoryID  int64     `json:"categoryId"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e *Expense) DTO() ExpenseDTO {
	return ExpenseDTO{
		ID:          e.ID,
		Date:        e.Date.Format(DateLayout),
		CategoryID:  e.CategoryID,
		Amount:      e.Amount,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (e *Expense) RoundToTwoDecimalPlaces() {
	e.Amount = math.Round(e.Amount*100) / 100
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) error
	FindByUser(ctx context.Context, userID string) ([]Expense, error)
	FindByID(ctx context.Context, expenseID int64, userID string) (*Expense, error)
	Update(ctx context.Context, expense *Expense) (int64, error)
	Delete(ctx context.Context, expenseID int64, userID string) (int64, error)
}
