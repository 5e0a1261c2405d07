package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/soatbr/registration/internal/module/catalog/adapter/presenter"
	"github.com/soatbr/registration/internal/module/catalog/application"
	"github.com/soatbr/registration/internal/module/catalog/domain"
	"github.com/soatbr/registration/internal/shared/domainerror"
)

const expectedCategories = "LANCHE, ACOMPANHAMENTO, BEBIDA, SOBREMESA"

// ProductHandler はプロダクトカタログのHTTPエンドポイントを提供します
type ProductHandler struct {
	service *application.ProductService
	log     *slog.Logger
}

// NewProductHandler は新しいProductHandlerを作成します
func NewProductHandler(service *application.ProductService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{service: service, log: log}
}

// Routes はプロダクト関連のルートをルーターに登録します
func (h *ProductHandler) Routes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/available", h.ListAvailable)
		r.Get("/available/{category}", h.ListAvailableByCategory)
		r.Get("/name/{name}", h.FindByName)
		r.Get("/category/{category}", h.ListByCategory)
		r.Delete("/category/{category}", h.DeleteByCategory)
		r.Get("/{id}", h.FindByID)
		r.Get("/{id}/available", h.GetAvailable)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Get("/available", h.ListAvailableCategories)
	})
}

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domainerror.NewMalformedInput("id", "UUID")
	}
	return id, nil
}

func parseCategory(r *http.Request) (domain.Category, error) {
	category, err := domain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		return "", domainerror.NewMalformedInput("category", expectedCategories)
	}
	return category, nil
}

// Create はプロダクトを登録します
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input application.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		renderError(w, h.log, domainerror.NewMalformedInput("body", "JSON"))
		return
	}

	product, err := h.service.Create(r.Context(), input)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	respondCreated(w, presenter.Product(product))
}

// Update はプロダクトを更新します。パスのIDが更新対象を決めます
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	var input application.UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		renderError(w, h.log, domainerror.NewMalformedInput("body", "JSON"))
		return
	}
	input.ID = id

	product, err := h.service.Update(r.Context(), input)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	respondSuccess(w, presenter.Product(product))
}

// FindByID はIDでプロダクトを取得します
func (h *ProductHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	product, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		renderError(w, h.log, err)
		return
	}
	if product == nil {
		renderError(w, h.log, domainerror.NewEntityNotFound("Produto"))
		return
	}

	respondSuccess(w, presenter.Product(product))
}

// GetAvailable はIDでDISPONIVELなプロダクトを取得します
func (h *ProductHandler) GetAvailable(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	product, err := h.service.GetAvailable(r.Context(), id)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	respondSuccess(w, presenter.Product(product))
}

// FindByName は名前でプロダクトを取得します
func (h *ProductHandler) FindByName(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.FindByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		renderError(w, h.log, err)
		return
	}
	if product == nil {
		renderError(w, h.log, domainerror.NewEntityNotFound("Produto"))
		return
	}

	respondSuccess(w, presenter.Product(product))
}

// List はプロダクト一覧を取得します。
// statusクエリでの絞り込みに対応します
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	rawStatus := r.URL.Query().Get("status")
	if rawStatus == "" {
		products, err := h.service.List(r.Context())
		if err != nil {
			renderError(w, h.log, err)
			return
		}
		respondSuccess(w, presenter.Products(products))
		return
	}

	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		renderError(w, h.log, domainerror.NewMalformedInput("status", "DISPONIVEL, INDISPONIVEL"))
		return
	}

	products, err := h.service.ListByStatus(r.Context(), status)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	respondSuccess(w, presenter.Products(products))
}

// ListByCategory はカテゴリでプロダクト一覧を取得します
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category, err := parseCategory(r)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	products, err := h.service.ListByCategory(r.Context(), category)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	respondSuccess(w, presenter.Products(products))
}

// ListAvailable はDISPONIVELなプロダクト一覧を取得します
func (h *ProductHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListAvailable(r.Context())
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	respondSuccess(w, presenter.Products(products))
}

// ListAvailableByCategory はカテゴリ内のDISPONIVELなプロダクト一覧を取得します
func (h *ProductHandler) ListAvailableByCategory(w http.ResponseWriter, r *http.Request) {
	category, err := parseCategory(r)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	products, err := h.service.ListAvailableByCategory(r.Context(), category)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	respondSuccess(w, presenter.Products(products))
}

// ListCategories は固定のカテゴリ全集合を返します。
// ストレージを参照しないため、ユースケースを介しません
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, presenter.Categories(domain.Categories()))
}

// ListAvailableCategories はDISPONIVELなプロダクトを持つカテゴリを返します
func (h *ProductHandler) ListAvailableCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListAvailableCategories(r.Context())
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	respondSuccess(w, presenter.Categories(categories))
}

// Delete はプロダクトを削除します
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		renderError(w, h.log, err)
		return
	}

	respondNoContent(w)
}

// DeleteByCategory はカテゴリに属するプロダクトを一括削除します
func (h *ProductHandler) DeleteByCategory(w http.ResponseWriter, r *http.Request) {
	category, err := parseCategory(r)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	if err := h.service.DeleteByCategory(r.Context(), category); err != nil {
		renderError(w, h.log, err)
		return
	}

	respondNoContent(w)
}
