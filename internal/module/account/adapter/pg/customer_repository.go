package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/soatbr/registration/internal/module/account/domain"
	"github.com/soatbr/registration/internal/platform/database"
)

// CustomerRepository は顧客集約のPostgreSQL実装です
type CustomerRepository struct {
	db *database.DB
}

var _ domain.CustomerRepository = (*CustomerRepository)(nil)

// NewCustomerRepository は新しいCustomerRepositoryを作成します
func NewCustomerRepository(db *database.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, name, email, cpf, anonymous`

func scanCustomer(row pgx.Row) (*customerRecord, error) {
	var record customerRecord
	err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Email,
		&record.CPF,
		&record.Anonymous,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Save は顧客を登録します。
// 非匿名顧客のemail/cpfの一意制約に違反した場合はErrUserAlreadyExistsを返します
func (r *CustomerRepository) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `
		INSERT INTO customer (id, name, email, cpf, anonymous)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + customerColumns

	record := customerToRecord(customer)
	saved, err := scanCustomer(r.db.Pool.QueryRow(ctx, query,
		record.ID,
		record.Name,
		record.Email,
		record.CPF,
		record.Anonymous,
	))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("unique constraint %s: %w", database.ConstraintName(err), domain.ErrUserAlreadyExists)
		}
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	return recordToCustomer(saved), nil
}

// FindFirstByCPF は正規化済みCPFで非匿名の顧客を取得します。
// 該当なしの場合は(nil, nil)を返します
func (r *CustomerRepository) FindFirstByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customer
		WHERE cpf = $1 AND NOT anonymous
	`

	record, err := scanCustomer(r.db.Pool.QueryRow(ctx, query, cpf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return recordToCustomer(record), nil
}

// FindFirstByID はIDで顧客を取得します。該当なしの場合は(nil, nil)を返します
func (r *CustomerRepository) FindFirstByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customer
		WHERE id = $1
	`

	record, err := scanCustomer(r.db.Pool.QueryRow(ctx, query, database.UUIDToPg(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return recordToCustomer(record), nil
}

// FindAllNotAnonymous は非匿名の顧客一覧を取得します
func (r *CustomerRepository) FindAllNotAnonymous(ctx context.Context) ([]*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customer
		WHERE NOT anonymous
		ORDER BY name
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var records []*customerRecord
	for rows.Next() {
		record, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return recordsToCustomers(records), nil
}

// Delete は顧客を削除します（冪等）
func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM customer WHERE id = $1`

	if _, err := r.db.Pool.Exec(ctx, query, database.UUIDToPg(id)); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return nil
}
