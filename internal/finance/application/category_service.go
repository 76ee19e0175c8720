package application

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sebuszqo/ExpenseTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/ExpenseTracker/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) DoesCategoryExist(ctx context.Context, categoryID int64, userID string) (bool, error) {
	return s.repo.ExistsByID(ctx, categoryID, userID)
}

func (s *CategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, userID string, patch domain.CategoryPatch) (*domain.Category, error) {
	if domain.IsMissing(patch.Name) {
		return nil, financeErrors.NewMissingFieldError("category", "You must include a category")
	}
	name, err := domain.ParseCategoryName(patch.Name)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID int64, userID string, patch domain.CategoryPatch) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrCategoryNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		name, err := domain.ParseCategoryName(patch.Name)
		if err != nil {
			return nil, err
		}
		category.Name = name
	}
	category.UpdatedAt = time.Now()

	affected, err := s.repo.Update(ctx, category)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, financeErrors.ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID int64, userID string) error {
	_, err := s.repo.FindByID(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return financeErrors.ErrCategoryNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, categoryID, userID)
}
