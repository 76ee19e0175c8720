package domain

import (
	"context"
	"time"
)

type Category struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"Category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByUser(ctx context.Context, userID string) ([]Category, error)
	FindByID(ctx context.Context, categoryID int64, userID string) (*Category, error)
	ExistsByID(ctx context.Context, categoryID int64, userID string) (bool, error)
	Update(ctx context.Context, category *Category) (int64, error)
	Delete(ctx context.Context, categoryID int64, userID string) error
}
