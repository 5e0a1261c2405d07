package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/soatbr/registration/internal/module/catalog/domain"
	"github.com/soatbr/registration/internal/shared/domainerror"
)

// CreateProductInput はプロダクト作成の入力DTOです
type CreateProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    domain.Category `json:"category"`
	Status      domain.Status   `json:"status"`
	Image       string          `json:"image"`
}

// UpdateProductInput はプロダクト更新の入力DTOです。IDは変更されません
type UpdateProductInput struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    domain.Category `json:"category"`
	Status      domain.Status   `json:"status"`
	Image       string          `json:"image"`
}

// ProductService はプロダクト管理のユースケースを提供します
type ProductService struct {
	productRepo domain.ProductRepository
	log         *slog.Logger
}

// NewProductService は新しいProductServiceを作成します
func NewProductService(productRepo domain.ProductRepository, log *slog.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		log:         log,
	}
}

// Create はプロダクトを作成します。
// 名前の一意性チェックと保存は別々の呼び出しであり、同名の同時作成の敗者は
// ストレージ層の一意制約で弾かれます
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	exists, err := s.productRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		s.log.Error("Failed to check product name",
			"name", input.Name,
			"error", err,
		)
		return nil, fmt.Errorf("failed to check product name: %w", err)
	}
	if exists {
		return nil, domain.NewNameAlreadyRegistered(input.Name)
	}

	product, err := domain.NewProduct(
		input.Name,
		input.Description,
		input.Price,
		input.Category,
		input.Status,
		input.Image,
	)
	if err != nil {
		return nil, err
	}

	saved, err := s.productRepo.Save(ctx, product)
	if err != nil {
		s.log.Error("Failed to save product",
			"name", input.Name,
			"error", err,
		)
		return nil, err
	}

	s.log.Info("Product created", "productID", saved.ID, "name", saved.Name)

	return saved, nil
}

// Update はプロダクトの全可変フィールドを入力値で置き換えます。
// 対象が存在しない場合はEntityNotFoundErrorを返します
func (s *ProductService) Update(ctx context.Context, input UpdateProductInput) (*domain.Product, error) {
	existing, err := s.productRepo.FindByID(ctx, input.ID)
	if err != nil {
		s.log.Error("Failed to find product",
			"productID", input.ID,
			"error", err,
		)
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if existing == nil {
		return nil, domainerror.NewEntityNotFound("Produto")
	}

	// IDは常に既存のものを維持する
	product, err := domain.BuildProduct(
		existing.ID,
		input.Name,
		input.Description,
		input.Price,
		input.Category,
		input.Status,
		input.Image,
	)
	if err != nil {
		return nil, err
	}

	saved, err := s.productRepo.Save(ctx, product)
	if err != nil {
		s.log.Error("Failed to save product",
			"productID", product.ID,
			"error", err,
		)
		return nil, err
	}

	s.log.Info("Product updated", "productID", saved.ID)

	return saved, nil
}

// FindByID はIDでプロダクトを取得します。該当なしの場合は(nil, nil)を返します
func (s *ProductService) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("product ID is required")
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find product",
			"productID", id,
			"error", err,
		)
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

// GetAvailable はIDでDISPONIVELなプロダクトを取得します。
// 該当なしの場合はEntityNotFoundError、INDISPONIVELの場合はErrProductNotAvailableを返します
func (s *ProductService) GetAvailable(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domainerror.NewEntityNotFound("Produto")
	}
	if !product.IsAvailable() {
		return nil, domain.ErrProductNotAvailable
	}

	return product, nil
}

// FindByName は名前でプロダクトを取得します。該当なしの場合は(nil, nil)を返します
func (s *ProductService) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}

	product, err := s.productRepo.FindByName(ctx, name)
	if err != nil {
		s.log.Error("Failed to find product by name",
			"name", name,
			"error", err,
		)
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

// List はプロダクト一覧を取得します
func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// ListByCategory はカテゴリでプロダクト一覧を取得します
func (s *ProductService) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error) {
	products, err := s.productRepo.ListByCategory(ctx, category)
	if err != nil {
		s.log.Error("Failed to list products by category",
			"category", category,
			"error", err,
		)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// ListByStatus はステータスでプロダクト一覧を取得します
func (s *ProductService) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Product, error) {
	products, err := s.productRepo.ListByStatus(ctx, status)
	if err != nil {
		s.log.Error("Failed to list products by status",
			"status", status,
			"error", err,
		)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// ListByStatusAndCategory はステータスとカテゴリでプロダクト一覧を取得します
func (s *ProductService) ListByStatusAndCategory(ctx context.Context, status domain.Status, category domain.Category) ([]*domain.Product, error) {
	products, err := s.productRepo.ListByStatusAndCategory(ctx, status, category)
	if err != nil {
		s.log.Error("Failed to list products by status and category",
			"status", status,
			"category", category,
			"error", err,
		)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// ListAvailable はDISPONIVELなプロダクト一覧を取得します
func (s *ProductService) ListAvailable(ctx context.Context) ([]*domain.Product, error) {
	return s.ListByStatus(ctx, domain.StatusDisponivel)
}

// ListAvailableByCategory はカテゴリ内のDISPONIVELなプロダクト一覧を取得します
func (s *ProductService) ListAvailableByCategory(ctx context.Context, category domain.Category) ([]*domain.Product, error) {
	return s.ListByStatusAndCategory(ctx, domain.StatusDisponivel, category)
}

// ListAvailableCategories はDISPONIVELなプロダクトを1件以上持つカテゴリの集合を取得します。
// 固定のカテゴリ全集合（domain.Categories）とは別の操作です
func (s *ProductService) ListAvailableCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.productRepo.ListAvailableCategories(ctx)
	if err != nil {
		s.log.Error("Failed to list available categories", "error", err)
		return nil, fmt.Errorf("failed to list available categories: %w", err)
	}

	return categories, nil
}

// Delete はIDでプロダクトを削除します。存在チェックは行いません（冪等）
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("product ID is required")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete product",
			"productID", id,
			"error", err,
		)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.log.Info("Product deleted", "productID", id)

	return nil
}

// DeleteByCategory はカテゴリに属するプロダクトを一括削除します
func (s *ProductService) DeleteByCategory(ctx context.Context, category domain.Category) error {
	if err := s.productRepo.DeleteByCategory(ctx, category); err != nil {
		s.log.Error("Failed to delete products by category",
			"category", category,
			"error", err,
		)
		return fmt.Errorf("failed to delete products: %w", err)
	}

	s.log.Info("Products deleted by category", "category", category)

	return nil
}
