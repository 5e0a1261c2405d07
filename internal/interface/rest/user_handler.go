package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/soatbr/registration/internal/module/account/adapter/presenter"
	"github.com/soatbr/registration/internal/module/account/application"
	"github.com/soatbr/registration/internal/shared/domainerror"
)

// AttendantHandler はアテンダント管理のHTTPエンドポイントを提供します
type AttendantHandler struct {
	service *application.AttendantService
	log     *slog.Logger
}

// NewAttendantHandler は新しいAttendantHandlerを作成します
func NewAttendantHandler(service *application.AttendantService, log *slog.Logger) *AttendantHandler {
	return &AttendantHandler{service: service, log: log}
}

// Routes はアテンダント関連のルートをルーターに登録します
func (h *AttendantHandler) Routes(r chi.Router) {
	r.Route("/attendants", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/cpf/{cpf}", h.FindByCPF)
		r.Get("/{id}", h.FindByID)
		r.Delete("/{id}", h.Delete)
	})
}

// Create はアテンダントを登録します
func (h *AttendantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input application.CreateAttendantInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		renderError(w, h.log, domainerror.NewMalformedInput("body", "JSON"))
		return
	}

	attendant, err := h.service.Create(r.Context(), input)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	respondCreated(w, presenter.Attendant(attendant))
}

// FindByCPF はCPFでアテンダントを取得します
func (h *AttendantHandler) FindByCPF(w http.ResponseWriter, r *http.Request) {
	attendant, err := h.service.FindByCPF(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		renderError(w, h.log, err)
		return
	}
	if attendant == nil {
		renderError(w, h.log, domainerror.NewEntityNotFound("Atendente"))
		return
	}

	respondSuccess(w, presenter.Attendant(attendant))
}

// FindByID はIDでアテンダントを取得します
func (h *AttendantHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	attendant, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		renderError(w, h.log, err)
		return
	}
	if attendant == nil {
		renderError(w, h.log, domainerror.NewEntityNotFound("Atendente"))
		return
	}

	respondSuccess(w, presenter.Attendant(attendant))
}

// List はアテンダント一覧を取得します
func (h *AttendantHandler) List(w http.ResponseWriter, r *http.Request) {
	attendants, err := h.service.List(r.Context())
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	respondSuccess(w, presenter.Attendants(attendants))
}

// Delete はアテンダントを削除します
func (h *AttendantHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// CustomerHandler は顧客管理のHTTPエンドポイントを提供します
type CustomerHandler struct {
	service *application.CustomerService
	log     *slog.Logger
}

// NewCustomerHandler は新しいCustomerHandlerを作成します
func NewCustomerHandler(service *application.CustomerService, log *slog.Logger) *CustomerHandler {
	return &CustomerHandler{service: service, log: log}
}

// Routes は顧客関連のルートをルーターに登録します
func (h *CustomerHandler) Routes(r chi.Router) {
	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/cpf/{cpf}", h.FindByCPF)
		r.Get("/{id}", h.FindByID)
		r.Delete("/{id}", h.Delete)
	})
}

// Create は顧客を登録します。anonymous=trueで匿名顧客を作成します
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input application.CreateCustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		renderError(w, h.log, domainerror.NewMalformedInput("body", "JSON"))
		return
	}

	customer, err := h.service.Create(r.Context(), input)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	respondCreated(w, presenter.Customer(customer))
}

// FindByCPF はCPFで非匿名の顧客を取得します
func (h *CustomerHandler) FindByCPF(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.FindByCPF(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		renderError(w, h.log, err)
		return
	}
	if customer == nil {
		renderError(w, h.log, domainerror.NewEntityNotFound("Cliente"))
		return
	}

	respondSuccess(w, presenter.Customer(customer))
}

// FindByID はIDで顧客を取得します
func (h *CustomerHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	customer, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		renderError(w, h.log, err)
		return
	}
	if customer == nil {
		renderError(w, h.log, domainerror.NewEntityNotFound("Cliente"))
		return
	}

	respondSuccess(w, presenter.Customer(customer))
}

// List は非匿名の顧客一覧を取得します
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListNotAnonymous(r.Context())
	if err != nil {
		renderError(w, h.log, err)
		return
	}

	respondSuccess(w, presenter.Customers(customers))
}

// Delete は顧客を削除します
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
