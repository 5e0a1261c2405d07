package pg

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/soatbr/registration/internal/module/account/domain"
	"github.com/soatbr/registration/internal/platform/database"
)

// attendantRecord はattendantテーブルの行を表します
type attendantRecord struct {
	ID    pgtype.UUID
	Name  pgtype.Text
	Email pgtype.Text
	CPF   pgtype.Text
}

// attendantToRecord はドメインのAttendantを行レコードに変換します。
// CPFは正規化済みの11桁で格納されます。nilはnilのまま伝播します
func attendantToRecord(attendant *domain.Attendant) *attendantRecord {
	if attendant == nil {
		return nil
	}
	return &attendantRecord{
		ID:    database.UUIDToPg(attendant.ID),
		Name:  database.StringToText(attendant.Name),
		Email: database.StringToText(attendant.Email),
		CPF:   database.StringToText(attendant.CPF.Normalized()),
	}
}

// recordToAttendant は行レコードをドメインのAttendantに変換します。
// nilはnilのまま伝播します
func recordToAttendant(record *attendantRecord) *domain.Attendant {
	if record == nil {
		return nil
	}
	cpf, _ := domain.NewCPF(database.TextToString(record.CPF))
	return &domain.Attendant{
		ID:    database.PgToUUID(record.ID),
		Name:  database.TextToString(record.Name),
		Email: database.TextToString(record.Email),
		CPF:   cpf,
	}
}

// customerRecord はcustomerテーブルの行を表します。
// 匿名顧客ではname/email/cpfがNULLになります
type customerRecord struct {
	ID        pgtype.UUID
	Name      pgtype.Text
	Email     pgtype.Text
	CPF       pgtype.Text
	Anonymous pgtype.Bool
}

// customerToRecord はドメインのCustomerを行レコードに変換します。
// 匿名の場合、個人情報の列はNULLとして書き込まれます。nilはnilのまま伝播します
func customerToRecord(customer *domain.Customer) *customerRecord {
	if customer == nil {
		return nil
	}
	record := &customerRecord{
		ID:        database.UUIDToPg(customer.ID),
		Anonymous: pgtype.Bool{Bool: customer.Anonymous, Valid: true},
	}
	if !customer.Anonymous {
		record.Name = database.StringToNullableText(customer.Name)
		record.Email = database.StringToNullableText(customer.Email)
		if customer.CPF != nil {
			record.CPF = database.StringToText(customer.CPF.Normalized())
		}
	}
	return record
}

// recordToCustomer は行レコードをドメインのCustomerに変換します。
// nilはnilのまま伝播します
func recordToCustomer(record *customerRecord) *domain.Customer {
	if record == nil {
		return nil
	}
	customer := &domain.Customer{
		ID:        database.PgToUUID(record.ID),
		Anonymous: record.Anonymous.Bool,
	}
	if !customer.Anonymous {
		customer.Name = database.TextToString(record.Name)
		customer.Email = database.TextToString(record.Email)
		if record.CPF.Valid {
			cpf, err := domain.NewCPF(record.CPF.String)
			if err == nil {
				customer.CPF = &cpf
			}
		}
	}
	return customer
}

// recordsToCustomers は行レコードのスライスを変換します
func recordsToCustomers(records []*customerRecord) []*domain.Customer {
	if records == nil {
		return nil
	}
	customers := make([]*domain.Customer, 0, len(records))
	for _, record := range records {
		customers = append(customers, recordToCustomer(record))
	}
	return customers
}
