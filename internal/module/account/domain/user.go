package domain

import (
	"github.com/google/uuid"

	"github.com/soatbr/registration/internal/shared/domainerror"
)

// Attendant は店舗スタッフを表します。name/email/cpfは常に必須です
type Attendant struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	CPF   CPF       `json:"cpf"`
}

// BuildAttendant は既存IDからアテンダントを再構築します
func BuildAttendant(id uuid.UUID, name, email, cpf string) (*Attendant, error) {
	verr := domainerror.NewValidationError()
	if id == uuid.Nil {
		verr.Add("id", "O id do atendente é obrigatório")
	}
	if name == "" {
		verr.Add("name", "O nome do atendente é obrigatório")
	}
	if email == "" {
		verr.Add("email", "O email do atendente é obrigatório")
	}

	parsed, err := NewCPF(cpf)
	if err != nil {
		verr.Add("cpf", "O CPF deve conter exatamente 11 dígitos")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	return &Attendant{
		ID:    id,
		Name:  name,
		Email: email,
		CPF:   parsed,
	}, nil
}

// NewAttendant は新しいIDを採番してアテンダントを構築します
func NewAttendant(name, email, cpf string) (*Attendant, error) {
	return BuildAttendant(uuid.New(), name, email, cpf)
}

// Customer は顧客を表します。Anonymousが判別子であり、
// 匿名の場合は個人情報（name/email/cpf）を一切持たず、IDのみで識別されます
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	CPF       *CPF      `json:"cpf,omitempty"`
	Anonymous bool      `json:"anonymous"`
}

// BuildCustomer は既存IDから顧客を再構築します。
// anonymous=trueの場合、個人情報フィールドは無視され空のまま構築されます。
// anonymous=falseの場合、name/email/cpfはすべて必須です
func BuildCustomer(id uuid.UUID, name, email, cpf string, anonymous bool) (*Customer, error) {
	if id == uuid.Nil {
		verr := domainerror.NewValidationError()
		verr.Add("id", "O id do cliente é obrigatório")
		return nil, verr
	}

	if anonymous {
		return &Customer{ID: id, Anonymous: true}, nil
	}

	verr := domainerror.NewValidationError()
	if name == "" {
		verr.Add("name", "O nome do cliente é obrigatório")
	}
	if email == "" {
		verr.Add("email", "O email do cliente é obrigatório")
	}
	parsed, err := NewCPF(cpf)
	if err != nil {
		verr.Add("cpf", "O CPF deve conter exatamente 11 dígitos")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	return &Customer{
		ID:        id,
		Name:      name,
		Email:     email,
		CPF:       &parsed,
		Anonymous: false,
	}, nil
}

// NewCustomer は新しいIDを採番して非匿名の顧客を構築します
func NewCustomer(name, email, cpf string) (*Customer, error) {
	return BuildCustomer(uuid.New(), name, email, cpf, false)
}

// NewAnonymousCustomer は新しいIDを採番して匿名の顧客を構築します
func NewAnonymousCustomer() *Customer {
	return &Customer{ID: uuid.New(), Anonymous: true}
}
