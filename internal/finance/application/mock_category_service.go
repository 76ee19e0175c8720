package application

import "context"

type MockCategoryService struct {
	Exists bool
	Err    error
}

func (m *MockCategoryService) DoesCategoryExist(ctx context.Context, categoryID int64, userID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.Exists, nil
}
