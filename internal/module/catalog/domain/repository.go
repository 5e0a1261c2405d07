package domain

import (
	"context"

	"github.com/google/uuid"
)

// === Product Repository Port ===

// ProductRepository はプロダクト集約の永続化ポートです
type ProductRepository interface {
	ProductReader
	ProductWriter
}

// ProductReader はプロダクトの読み取り操作を定義します。
// FindByID / FindByNameは該当なしの場合に(nil, nil)を返し、
// 不在をエラーとするかどうかは呼び出し側が決めます
type ProductReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByName(ctx context.Context, name string) (*Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]*Product, error)
	ListByCategory(ctx context.Context, category Category) ([]*Product, error)
	ListByStatus(ctx context.Context, status Status) ([]*Product, error)
	ListByStatusAndCategory(ctx context.Context, status Status, category Category) ([]*Product, error)
	// ListAvailableCategories はDISPONIVELなプロダクトを1件以上持つカテゴリの集合を返します
	ListAvailableCategories(ctx context.Context) ([]Category, error)
}

// ProductWriter はプロダクトの書き込み操作を定義します
type ProductWriter interface {
	Save(ctx context.Context, product *Product) (*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCategory(ctx context.Context, category Category) error
}
