package presenter

import (
	"github.com/soatbr/registration/internal/module/catalog/domain"
)

// ProductResponse はクライアント向けのプロダクト表現です。
// カテゴリとステータスは文字列ラベルとして公開されます
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	Image       string  `json:"image"`
}

// Product はドメインのProductをレスポンス表現に変換します。
// nilはnilのまま伝播します
func Product(product *domain.Product) *ProductResponse {
	if product == nil {
		return nil
	}
	return &ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    string(product.Category),
		Status:      string(product.Status),
		Image:       product.Image,
	}
}

// Products はドメインのProductスライスをレスポンス表現に変換します。
// nilスライスは空スライスになります
func Products(products []*domain.Product) []*ProductResponse {
	responses := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, Product(product))
	}
	return responses
}

// Categories はカテゴリの一覧を文字列ラベルに変換します
func Categories(categories []domain.Category) []string {
	labels := make([]string, 0, len(categories))
	for _, category := range categories {
		labels = append(labels, string(category))
	}
	return labels
}
