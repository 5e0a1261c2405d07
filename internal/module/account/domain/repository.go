package domain

import (
	"context"

	"github.com/google/uuid"
)

// === Attendant Repository Port ===

// AttendantRepository はアテンダントの永続化ポートです。
// FindFirst系は該当なしの場合に(nil, nil)を返します
type AttendantRepository interface {
	Save(ctx context.Context, attendant *Attendant) (*Attendant, error)
	// FindFirstByCPF は正規化済み（数字のみ11桁）のCPFで検索します
	FindFirstByCPF(ctx context.Context, cpf string) (*Attendant, error)
	FindFirstByID(ctx context.Context, id uuid.UUID) (*Attendant, error)
	FindAll(ctx context.Context) ([]*Attendant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// === Customer Repository Port ===

// CustomerRepository は顧客の永続化ポートです
type CustomerRepository interface {
	Save(ctx context.Context, customer *Customer) (*Customer, error)
	// FindFirstByCPF は正規化済み（数字のみ11桁）のCPFで検索します
	FindFirstByCPF(ctx context.Context, cpf string) (*Customer, error)
	FindFirstByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	// FindAllNotAnonymous は非匿名の顧客のみを返します。絞り込みはストレージ側で行われます
	FindAllNotAnonymous(ctx context.Context) ([]*Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
