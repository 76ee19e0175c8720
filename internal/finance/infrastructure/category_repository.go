package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO categories (user_id, name, created_at, updated_at)
              VALUES ($1, $2, $3, $4)
              RETURNING id`
	err := r.db.QueryRowContext(ctx, query, category.UserID, category.Name, category.CreatedAt, category.UpdatedAt).
		Scan(&category.ID)
	return wrapConstraintError(err)
}

func (r *CategoryRepository) FindByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	query := `SELECT id, user_id, name, created_at, updated_at
              FROM categories WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, categoryID int64, userID string) (*domain.Category, error) {
	query := `SELECT id, user_id, name, created_at, updated_at
              FROM categories WHERE id = $1 AND user_id = $2`

	var category domain.Category
	err := r.db.QueryRowContext(ctx, query, categoryID, userID).
		Scan(&category.ID, &category.UserID, &category.Name, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ExistsByID(ctx context.Context, categoryID int64, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND user_id = $2)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, categoryID, userID).Scan(&exists)
	return exists, err
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) (int64, error) {
	query := `UPDATE categories SET name = $1, updated_at = $2
              WHERE id = $3 AND user_id = $4`

	result, err := r.db.ExecContext(ctx, query, category.Name, category.UpdatedAt, category.ID, category.UserID)
	if err != nil {
		return 0, wrapConstraintError(err)
	}
	return result.RowsAffected()
}

// Delete refuses to remove a category that expenses still reference. The
// check and the delete run in one transaction; the FK RESTRICT constraint
// backstops a racing insert.
func (r *CategoryRepository) Delete(ctx context.Context, categoryID int64, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer safeRollback(tx)

	var referenced bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM expenses WHERE category_id = $1)`, categoryID).
		Scan(&referenced)
	if err != nil {
		return err
	}
	if referenced {
		return financeErrors.ErrCategoryInUse
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1 AND user_id = $2`, categoryID, userID); err != nil {
		return wrapConstraintError(err)
	}
	return tx.Commit()
}

func safeRollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		log.Printf("Error during transaction rollback: %v", err)
	}
}

// wrapConstraintError converts integrity violations (unique, foreign key,
// not null) into persistence errors whose driver message is surfaced to
// the caller. Everything else passes through unchanged.
func wrapConstraintError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return financeErrors.NewPersistenceError(err)
	}
	return err
}
