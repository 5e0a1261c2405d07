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

// AttendantRepository はアテンダント集約のPostgreSQL実装です
type AttendantRepository struct {
	db *database.DB
}

var _ domain.AttendantRepository = (*AttendantRepository)(nil)

// NewAttendantRepository は新しいAttendantRepositoryを作成します
func NewAttendantRepository(db *database.DB) *AttendantRepository {
	return &AttendantRepository{db: db}
}

const attendantColumns = `id, name, email, cpf`

func scanAttendant(row pgx.Row) (*attendantRecord, error) {
	var record attendantRecord
	err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Email,
		&record.CPF,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Save はアテンダントを登録します。
// email/cpfの一意制約に違反した場合はErrUserAlreadyExistsを返します
func (r *AttendantRepository) Save(ctx context.Context, attendant *domain.Attendant) (*domain.Attendant, error) {
	query := `
		INSERT INTO attendant (id, name, email, cpf)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + attendantColumns

	record := attendantToRecord(attendant)
	saved, err := scanAttendant(r.db.Pool.QueryRow(ctx, query,
		record.ID,
		record.Name,
		record.Email,
		record.CPF,
	))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("unique constraint %s: %w", database.ConstraintName(err), domain.ErrUserAlreadyExists)
		}
		return nil, fmt.Errorf("failed to save attendant: %w", err)
	}

	return recordToAttendant(saved), nil
}

// FindFirstByCPF は正規化済みCPFでアテンダントを取得します。
// 該当なしの場合は(nil, nil)を返します
func (r *AttendantRepository) FindFirstByCPF(ctx context.Context, cpf string) (*domain.Attendant, error) {
	query := `
		SELECT ` + attendantColumns + `
		FROM attendant
		WHERE cpf = $1
	`

	record, err := scanAttendant(r.db.Pool.QueryRow(ctx, query, cpf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendant: %w", err)
	}

	return recordToAttendant(record), nil
}

// FindFirstByID はIDでアテンダントを取得します。該当なしの場合は(nil, nil)を返します
func (r *AttendantRepository) FindFirstByID(ctx context.Context, id uuid.UUID) (*domain.Attendant, error) {
	query := `
		SELECT ` + attendantColumns + `
		FROM attendant
		WHERE id = $1
	`

	record, err := scanAttendant(r.db.Pool.QueryRow(ctx, query, database.UUIDToPg(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendant: %w", err)
	}

	return recordToAttendant(record), nil
}

// FindAll はすべてのアテンダントを取得します
func (r *AttendantRepository) FindAll(ctx context.Context) ([]*domain.Attendant, error) {
	query := `
		SELECT ` + attendantColumns + `
		FROM attendant
		ORDER BY name
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendants: %w", err)
	}
	defer rows.Close()

	var attendants []*domain.Attendant
	for rows.Next() {
		record, err := scanAttendant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendant: %w", err)
		}
		attendants = append(attendants, recordToAttendant(record))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendants: %w", err)
	}

	return attendants, nil
}

// Delete はアテンダントを削除します（冪等）
func (r *AttendantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM attendant WHERE id = $1`

	if _, err := r.db.Pool.Exec(ctx, query, database.UUIDToPg(id)); err != nil {
		return fmt.Errorf("failed to delete attendant: %w", err)
	}

	return nil
}
