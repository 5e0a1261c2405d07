package testing

import (
	"github.com/google/uuid"

	"github.com/soatbr/registration/internal/module/account/domain"
)

// TestAttendant はテスト用のAttendantを生成します
func TestAttendant(name, email, cpf string) *domain.Attendant {
	attendant, err := domain.BuildAttendant(uuid.New(), name, email, cpf)
	if err != nil {
		panic(err)
	}
	return attendant
}

// TestCustomer はテスト用の非匿名Customerを生成します
func TestCustomer(name, email, cpf string) *domain.Customer {
	customer, err := domain.BuildCustomer(uuid.New(), name, email, cpf, false)
	if err != nil {
		panic(err)
	}
	return customer
}

// TestAnonymousCustomer はテスト用の匿名Customerを生成します
func TestAnonymousCustomer() *domain.Customer {
	return domain.NewAnonymousCustomer()
}
