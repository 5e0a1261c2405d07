package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/soatbr/registration/internal/module/account/domain"
)

// CreateAttendantInput はアテンダント登録の入力DTOです
type CreateAttendantInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

// AttendantService はアテンダント管理のユースケースを提供します
type AttendantService struct {
	attendantRepo domain.AttendantRepository
	log           *slog.Logger
}

// NewAttendantService は新しいAttendantServiceを作成します
func NewAttendantService(attendantRepo domain.AttendantRepository, log *slog.Logger) *AttendantService {
	return &AttendantService{
		attendantRepo: attendantRepo,
		log:           log,
	}
}

// Create はアテンダントを登録します。
// email/cpfの一意性はプロダクトと異なり事前チェックを行わず、
// ストレージ層の一意制約に委ねます
func (s *AttendantService) Create(ctx context.Context, input CreateAttendantInput) (*domain.Attendant, error) {
	attendant, err := domain.NewAttendant(input.Name, input.Email, input.CPF)
	if err != nil {
		return nil, err
	}

	saved, err := s.attendantRepo.Save(ctx, attendant)
	if err != nil {
		s.log.Error("Failed to save attendant",
			"email", input.Email,
			"error", err,
		)
		return nil, err
	}

	s.log.Info("Attendant created", "attendantID", saved.ID)

	return saved, nil
}

// FindByCPF はCPFでアテンダントを取得します。
// 入力は検索前に正規化（数字以外を除去）されます。該当なしの場合は(nil, nil)を返します
func (s *AttendantService) FindByCPF(ctx context.Context, cpf string) (*domain.Attendant, error) {
	if cpf == "" {
		return nil, fmt.Errorf("cpf is required")
	}

	attendant, err := s.attendantRepo.FindFirstByCPF(ctx, domain.StripNonDigits(cpf))
	if err != nil {
		s.log.Error("Failed to find attendant by cpf", "error", err)
		return nil, fmt.Errorf("failed to find attendant: %w", err)
	}

	return attendant, nil
}

// FindByID はIDでアテンダントを取得します。該当なしの場合は(nil, nil)を返します
func (s *AttendantService) FindByID(ctx context.Context, id uuid.UUID) (*domain.Attendant, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("attendant ID is required")
	}

	attendant, err := s.attendantRepo.FindFirstByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find attendant",
			"attendantID", id,
			"error", err,
		)
		return nil, fmt.Errorf("failed to find attendant: %w", err)
	}

	return attendant, nil
}

// List はアテンダント一覧を取得します
func (s *AttendantService) List(ctx context.Context) ([]*domain.Attendant, error) {
	attendants, err := s.attendantRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list attendants", "error", err)
		return nil, fmt.Errorf("failed to list attendants: %w", err)
	}

	return attendants, nil
}

// Delete はIDでアテンダントを削除します。存在チェックは行いません（冪等）
func (s *AttendantService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("attendant ID is required")
	}

	if err := s.attendantRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete attendant",
			"attendantID", id,
			"error", err,
		)
		return fmt.Errorf("failed to delete attendant: %w", err)
	}

	s.log.Info("Attendant deleted", "attendantID", id)

	return nil
}
