package testing

import (
	"context"

	"github.com/google/uuid"

	"github.com/soatbr/registration/internal/module/account/domain"
)

// MockAttendantRepository はテスト用のモックAttendantRepositoryです
type MockAttendantRepository struct {
	SaveFunc           func(ctx context.Context, attendant *domain.Attendant) (*domain.Attendant, error)
	FindFirstByCPFFunc func(ctx context.Context, cpf string) (*domain.Attendant, error)
	FindFirstByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Attendant, error)
	FindAllFunc        func(ctx context.Context) ([]*domain.Attendant, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error

	SaveCalls   int
	DeleteCalls int
}

var _ domain.AttendantRepository = (*MockAttendantRepository)(nil)

func (m *MockAttendantRepository) Save(ctx context.Context, attendant *domain.Attendant) (*domain.Attendant, error) {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, attendant)
	}
	return attendant, nil
}

func (m *MockAttendantRepository) FindFirstByCPF(ctx context.Context, cpf string) (*domain.Attendant, error) {
	if m.FindFirstByCPFFunc != nil {
		return m.FindFirstByCPFFunc(ctx, cpf)
	}
	return nil, nil
}

func (m *MockAttendantRepository) FindFirstByID(ctx context.Context, id uuid.UUID) (*domain.Attendant, error) {
	if m.FindFirstByIDFunc != nil {
		return m.FindFirstByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAttendantRepository) FindAll(ctx context.Context) ([]*domain.Attendant, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockAttendantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCustomerRepository はテスト用のモックCustomerRepositoryです
type MockCustomerRepository struct {
	SaveFunc                func(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	FindFirstByCPFFunc      func(ctx context.Context, cpf string) (*domain.Customer, error)
	FindFirstByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	FindAllNotAnonymousFunc func(ctx context.Context) ([]*domain.Customer, error)
	DeleteFunc              func(ctx context.Context, id uuid.UUID) error

	SaveCalls   int
	DeleteCalls int
}

var _ domain.CustomerRepository = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	m.SaveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, customer)
	}
	return customer, nil
}

func (m *MockCustomerRepository) FindFirstByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	if m.FindFirstByCPFFunc != nil {
		return m.FindFirstByCPFFunc(ctx, cpf)
	}
	return nil, nil
}

func (m *MockCustomerRepository) FindFirstByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if m.FindFirstByIDFunc != nil {
		return m.FindFirstByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCustomerRepository) FindAllNotAnonymous(ctx context.Context) ([]*domain.Customer, error) {
	if m.FindAllNotAnonymousFunc != nil {
		return m.FindAllNotAnonymousFunc(ctx)
	}
	return nil, nil
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
