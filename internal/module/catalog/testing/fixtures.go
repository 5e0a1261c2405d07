package testing

import (
	"github.com/google/uuid"

	"github.com/soatbr/registration/internal/module/catalog/domain"
)

// TestProduct はテスト用のProductを生成します
func TestProduct(name string, category domain.Category, status domain.Status) *domain.Product {
	return &domain.Product{
		ID:          uuid.New(),
		Name:        name,
		Description: "descrição de teste",
		Price:       10.00,
		Category:    category,
		Status:      status,
		Image:       "produto.png",
	}
}
