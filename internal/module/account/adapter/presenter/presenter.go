package presenter

import (
	"github.com/soatbr/registration/internal/module/account/domain"
)

// AttendantResponse はクライアント向けのアテンダント表現です
type AttendantResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

// Attendant はドメインのAttendantをレスポンス表現に変換します。
// CPFは正規化形（数字のみ）で公開されます。nilはnilのまま伝播します
func Attendant(attendant *domain.Attendant) *AttendantResponse {
	if attendant == nil {
		return nil
	}
	return &AttendantResponse{
		ID:    attendant.ID.String(),
		Name:  attendant.Name,
		Email: attendant.Email,
		CPF:   attendant.CPF.Normalized(),
	}
}

// Attendants はドメインのAttendantスライスをレスポンス表現に変換します
func Attendants(attendants []*domain.Attendant) []*AttendantResponse {
	responses := make([]*AttendantResponse, 0, len(attendants))
	for _, attendant := range attendants {
		responses = append(responses, Attendant(attendant))
	}
	return responses
}

// CustomerResponse はクライアント向けの顧客表現です。
// 匿名顧客はIDと匿名フラグのみを持ち、個人情報フィールドは出力されません
type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	CPF       string `json:"cpf,omitempty"`
	Anonymous bool   `json:"anonymous"`
}

// Customer はドメインのCustomerをレスポンス表現に変換します。
// nilはnilのまま伝播します
func Customer(customer *domain.Customer) *CustomerResponse {
	if customer == nil {
		return nil
	}
	response := &CustomerResponse{
		ID:        customer.ID.String(),
		Anonymous: customer.Anonymous,
	}
	if !customer.Anonymous {
		response.Name = customer.Name
		response.Email = customer.Email
		if customer.CPF != nil {
			response.CPF = customer.CPF.Normalized()
		}
	}
	return response
}

// Customers はドメインのCustomerスライスをレスポンス表現に変換します
func Customers(customers []*domain.Customer) []*CustomerResponse {
	responses := make([]*CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, Customer(customer))
	}
	return responses
}
