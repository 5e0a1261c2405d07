package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/soatbr/registration/internal/module/catalog/domain"
	"github.com/soatbr/registration/internal/platform/database"
)

// ProductRepository はプロダクト集約のPostgreSQL実装です
// 集約: Product（ルートのみ）
type ProductRepository struct {
	db *database.DB
}

var _ domain.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository は新しいProductRepositoryを作成します
func NewProductRepository(db *database.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, description, price, category, status, image`

func scanProduct(row pgx.Row) (*productRecord, error) {
	var record productRecord
	err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Description,
		&record.Price,
		&record.Category,
		&record.Status,
		&record.Image,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Save はプロダクトを登録または更新します（IDによるupsert）。
// name一意制約に違反した場合はNameAlreadyRegisteredErrorを返します
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO product (id, name, description, price, category, status, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			category = EXCLUDED.category,
			status = EXCLUDED.status,
			image = EXCLUDED.image,
			updated_at = CURRENT_TIMESTAMP
		RETURNING ` + productColumns

	record := productToRecord(product)
	saved, err := scanProduct(r.db.Pool.QueryRow(ctx, query,
		record.ID,
		record.Name,
		record.Description,
		record.Price,
		record.Category,
		record.Status,
		record.Image,
	))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, domain.NewNameAlreadyRegistered(product.Name)
		}
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	return recordToProduct(saved), nil
}

// FindByID はIDでプロダクトを取得します。該当なしの場合は(nil, nil)を返します
func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM product
		WHERE id = $1
	`

	record, err := scanProduct(r.db.Pool.QueryRow(ctx, query, database.UUIDToPg(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return recordToProduct(record), nil
}

// FindByName は名前でプロダクトを取得します。該当なしの場合は(nil, nil)を返します
func (r *ProductRepository) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM product
		WHERE name = $1
	`

	record, err := scanProduct(r.db.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return recordToProduct(record), nil
}

// ExistsByName は名前のプロダクトが存在するかどうかを返します
func (r *ProductRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM product WHERE name = $1)`

	var exists bool
	if err := r.db.Pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check product name: %w", err)
	}

	return exists, nil
}

func (r *ProductRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var records []*productRecord
	for rows.Next() {
		record, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return recordsToProducts(records), nil
}

// List はすべてのプロダクトを取得します
func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM product
		ORDER BY name
	`
	return r.list(ctx, query)
}

// ListByCategory はカテゴリでプロダクトを絞り込みます
func (r *ProductRepository) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM product
		WHERE category = $1
		ORDER BY name
	`
	return r.list(ctx, query, string(category))
}

// ListByStatus はステータスでプロダクトを絞り込みます
func (r *ProductRepository) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM product
		WHERE status = $1
		ORDER BY name
	`
	return r.list(ctx, query, string(status))
}

// ListByStatusAndCategory はステータスとカテゴリの両方でプロダクトを絞り込みます
func (r *ProductRepository) ListByStatusAndCategory(ctx context.Context, status domain.Status, category domain.Category) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM product
		WHERE status = $1 AND category = $2
		ORDER BY name
	`
	return r.list(ctx, query, string(status), string(category))
}

// ListAvailableCategories はDISPONIVELなプロダクトを1件以上持つカテゴリを
// カテゴリの定義順で返します
func (r *ProductRepository) ListAvailableCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT DISTINCT category
		FROM product
		WHERE status = $1
	`

	rows, err := r.db.Pool.Query(ctx, query, string(domain.StatusDisponivel))
	if err != nil {
		return nil, fmt.Errorf("failed to list available categories: %w", err)
	}
	defer rows.Close()

	found := make(map[domain.Category]bool)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		found[domain.Category(category)] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(found))
	for _, category := range domain.Categories() {
		if found[category] {
			categories = append(categories, category)
		}
	}

	return categories, nil
}

// Delete はプロダクトを削除します（冪等）
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM product WHERE id = $1`

	if _, err := r.db.Pool.Exec(ctx, query, database.UUIDToPg(id)); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// DeleteByCategory はカテゴリに属するプロダクトをまとめて削除します（冪等）
func (r *ProductRepository) DeleteByCategory(ctx context.Context, category domain.Category) error {
	query := `DELETE FROM product WHERE category = $1`

	if _, err := r.db.Pool.Exec(ctx, query, string(category)); err != nil {
		return fmt.Errorf("failed to delete products by category: %w", err)
	}

	return nil
}
