package testing

import (
	"context"

	"github.com/google/uuid"

	"github.com/soatbr/registration/internal/module/catalog/domain"
)

// MockProductRepository はテスト用のモックProductRepositoryです
type MockProductRepository struct {
	FindByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindByNameFunc              func(ctx context.Context, name string) (*domain.Product, error)
	ExistsByNameFunc            func(ctx context.Context, name string) (bool, error)
	ListFunc                    func(ctx context.Context) ([]*domain.Product, error)
	ListByCategoryFunc          func(ctx context.Context, category domain.Category) ([]*domain.Product, error)
	ListByStatusFunc            func(ctx context.Context, status domain.Status) ([]*domain.Product, error)
	ListByStatusAndCategoryFunc func(ctx context.Context, status domain.Status, category domain.Category) ([]*domain.Product, error)
	ListAvailableCategoriesFunc func(ctx context.Context) ([]domain.Category, error)
	SaveFunc                    func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteFunc                  func(ctx context.Context, id uuid.UUID) error
	DeleteByCategoryFunc        func(ctx context.Context, category domain.Category) error

	// 呼び出し回数の記録
	SaveCalls             int
	ExistsByNameCalls     int
	DeleteCalls           int
	DeleteByCategoryCalls int
}

var _ domain.ProductRepository = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockProductRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	m.ExistsByNameCalls++
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

func (m *MockProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockProductRepository) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (m *MockProductRepository) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Product, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *MockProductRepository) ListByStatusAndCategory(ctx context.Context, status domain.Status, category domain.Category) ([]*domain.Product, error) {
	if m.ListByStatusAndCategoryFunc != nil {
		return m.ListByStatusAndCategoryFunc(ctx, status, category)
	}
	return nil, nil
}

func (m *MockProductRepository) ListAvailableCategories(ctx context.Context) ([]domain.Category, error) {
	if m.ListAvailableCategoriesFunc != nil {
		return m.ListAvailableCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *MockProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, product)
	}
	return product, nil
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProductRepository) DeleteByCategory(ctx context.Context, category domain.Category) error {
	m.DeleteByCategoryCalls++
	if m.DeleteByCategoryFunc != nil {
		return m.DeleteByCategoryFunc(ctx, category)
	}
	return nil
}
