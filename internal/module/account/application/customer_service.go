package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/soatbr/registration/internal/module/account/domain"
)

// CreateCustomerInput は顧客登録の入力DTOです。
// Anonymous=trueの場合、個人情報フィールドは無視されます
type CreateCustomerInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CPF       string `json:"cpf"`
	Anonymous bool   `json:"anonymous"`
}

// CustomerService は顧客管理のユースケースを提供します
type CustomerService struct {
	customerRepo domain.CustomerRepository
	log          *slog.Logger
}

// NewCustomerService は新しいCustomerServiceを作成します
func NewCustomerService(customerRepo domain.CustomerRepository, log *slog.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		log:          log,
	}
}

// Create は顧客を登録します。
// 非匿名顧客のemail/cpfの一意性はストレージ層の一意制約に委ねます
func (s *CustomerService) Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	var customer *domain.Customer
	if input.Anonymous {
		customer = domain.NewAnonymousCustomer()
	} else {
		var err error
		customer, err = domain.NewCustomer(input.Name, input.Email, input.CPF)
		if err != nil {
			return nil, err
		}
	}

	saved, err := s.customerRepo.Save(ctx, customer)
	if err != nil {
		s.log.Error("Failed to save customer",
			"anonymous", input.Anonymous,
			"error", err,
		)
		return nil, err
	}

	s.log.Info("Customer created", "customerID", saved.ID, "anonymous", saved.Anonymous)

	return saved, nil
}

// FindByCPF はCPFで顧客を取得します。
// 入力は検索前に正規化（数字以外を除去）されます。該当なしの場合は(nil, nil)を返します
func (s *CustomerService) FindByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	if cpf == "" {
		return nil, fmt.Errorf("cpf is required")
	}

	customer, err := s.customerRepo.FindFirstByCPF(ctx, domain.StripNonDigits(cpf))
	if err != nil {
		s.log.Error("Failed to find customer by cpf", "error", err)
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return customer, nil
}

// FindByID はIDで顧客を取得します。該当なしの場合は(nil, nil)を返します
func (s *CustomerService) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("customer ID is required")
	}

	customer, err := s.customerRepo.FindFirstByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find customer",
			"customerID", id,
			"error", err,
		)
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return customer, nil
}

// ListNotAnonymous は非匿名の顧客一覧を取得します。
// 絞り込みはストレージ側のクエリで行われ、ユースケースでは再計算しません
func (s *CustomerService) ListNotAnonymous(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.customerRepo.FindAllNotAnonymous(ctx)
	if err != nil {
		s.log.Error("Failed to list customers", "error", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// Delete はIDで顧客を削除します。存在チェックは行いません（冪等）
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("customer ID is required")
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete customer",
			"customerID", id,
			"error", err,
		)
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.log.Info("Customer deleted", "customerID", id)

	return nil
}
