package domain

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/soatbr/registration/internal/shared/domainerror"
)

// Category はプロダクトの分類を表します
type Category string

const (
	CategoryLanche        Category = "LANCHE"
	CategoryAcompanhamento Category = "ACOMPANHAMENTO"
	CategoryBebida        Category = "BEBIDA"
	CategorySobremesa     Category = "SOBREMESA"
)

// Categories は固定のカテゴリ全集合を定義順で返します
func Categories() []Category {
	return []Category{
		CategoryLanche,
		CategoryAcompanhamento,
		CategoryBebida,
		CategorySobremesa,
	}
}

// ParseCategory は文字列をCategoryに解決します
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// IsValid は定義済みカテゴリかどうかを返します
func (c Category) IsValid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

// Status はプロダクトの販売可否を表します
type Status string

const (
	StatusDisponivel   Status = "DISPONIVEL"
	StatusIndisponivel Status = "INDISPONIVEL"
)

// ParseStatus は文字列をStatusに解決します
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDisponivel, StatusIndisponivel:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status: %q", s)
}

// IsValid は定義済みステータスかどうかを返します
func (s Status) IsValid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Product はカタログ上のプロダクトを表します。
// Nameはカタログ全体で一意であり、一意性はユースケースの事前チェックと
// ストレージ層の一意制約の二段構えで守られます
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	Status      Status    `json:"status"`
	Image       string    `json:"image"`
}

// BuildProduct は既存IDからプロダクトを再構築します。
// フィールド検証に失敗した場合はValidationErrorを返します
func BuildProduct(id uuid.UUID, name, description string, price float64, category Category, status Status, image string) (*Product, error) {
	verr := domainerror.NewValidationError()
	if id == uuid.Nil {
		verr.Add("id", "O id do produto é obrigatório")
	}
	if name == "" {
		verr.Add("name", "O nome do produto é obrigatório")
	}
	if price < 0 {
		verr.Add("price", "O preço do produto não pode ser negativo")
	}
	if !category.IsValid() {
		verr.Add("category", "A categoria do produto é inválida")
	}
	if !status.IsValid() {
		verr.Add("status", "O status do produto é inválido")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Status:      status,
		Image:       image,
	}, nil
}

// NewProduct は新しいIDを採番してプロダクトを構築します
func NewProduct(name, description string, price float64, category Category, status Status, image string) (*Product, error) {
	return BuildProduct(uuid.New(), name, description, price, category, status, image)
}

// IsAvailable はステータスがDISPONIVELかどうかを返します
func (p *Product) IsAvailable() bool {
	return p.Status == StatusDisponivel
}
