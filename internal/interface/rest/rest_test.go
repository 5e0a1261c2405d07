package rest_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/soatbr/registration/internal/interface/rest"
	accountapp "github.com/soatbr/registration/internal/module/account/application"
	accounttest "github.com/soatbr/registration/internal/module/account/testing"
	catalogapp "github.com/soatbr/registration/internal/module/catalog/application"
	catalogtest "github.com/soatbr/registration/internal/module/catalog/testing"
)

// testDeps はテスト用のモックリポジトリ一式です
type testDeps struct {
	productRepo   *catalogtest.MockProductRepository
	attendantRepo *accounttest.MockAttendantRepository
	customerRepo  *accounttest.MockCustomerRepository
}

func newTestRouter(t *testing.T) (chi.Router, *testDeps) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	deps := &testDeps{
		productRepo:   &catalogtest.MockProductRepository{},
		attendantRepo: &accounttest.MockAttendantRepository{},
		customerRepo:  &accounttest.MockCustomerRepository{},
	}

	handlers := rest.Handlers{
		Product:   rest.NewProductHandler(catalogapp.NewProductService(deps.productRepo, log), log),
		Attendant: rest.NewAttendantHandler(accountapp.NewAttendantService(deps.attendantRepo, log), log),
		Customer:  rest.NewCustomerHandler(accountapp.NewCustomerService(deps.customerRepo, log), log),
	}

	return rest.NewRouter(handlers, log), deps
}

// decodeBody はレスポンスボディをマップに読み込みます
func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&decoded))
	return decoded
}

func assertClientError(t *testing.T, resp *http.Response, message string) {
	t.Helper()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	require.Equal(t, float64(http.StatusBadRequest), body["status"])
	require.Equal(t, message, body["message"])
}
