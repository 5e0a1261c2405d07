package rest

import (
	"errors"
	"log/slog"
	"net/http"

	accountdomain "github.com/soatbr/registration/internal/module/account/domain"
	catalogdomain "github.com/soatbr/registration/internal/module/catalog/domain"
	"github.com/soatbr/registration/internal/shared/domainerror"
)

// renderError はユースケースから伝播したエラーをHTTPレスポンスに変換します。
// 分類済みのエラー種別は400、それ以外は詳細を隠して500を返します
func renderError(w http.ResponseWriter, log *slog.Logger, err error) {
	var verr *domainerror.ValidationError
	if errors.As(err, &verr) {
		respondValidationError(w, verr.Fields)
		return
	}

	var nferr *domainerror.EntityNotFoundError
	if errors.As(err, &nferr) {
		respondError(w, http.StatusBadRequest, nferr.Error())
		return
	}

	var mierr *domainerror.MalformedInputError
	if errors.As(err, &mierr) {
		respondError(w, http.StatusBadRequest, mierr.Error())
		return
	}

	var dupErr *catalogdomain.NameAlreadyRegisteredError
	if errors.As(err, &dupErr) {
		respondError(w, http.StatusBadRequest, dupErr.Error())
		return
	}

	if errors.Is(err, catalogdomain.ErrProductNotAvailable) {
		respondError(w, http.StatusBadRequest, catalogdomain.ErrProductNotAvailable.Error())
		return
	}

	if errors.Is(err, accountdomain.ErrUserAlreadyExists) {
		respondError(w, http.StatusBadRequest, accountdomain.ErrUserAlreadyExists.Error())
		return
	}

	log.Error("Unhandled error", "error", err)
	respondError(w, http.StatusInternalServerError, "Internal Server Error")
}
