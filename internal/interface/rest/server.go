package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handlers はルーターに登録されるハンドラ群です
type Handlers struct {
	Product   *ProductHandler
	Attendant *AttendantHandler
	Customer  *CustomerHandler
}

// NewRouter はミドルウェアと全ルートを組み立てたルーターを返します。
// APIは/apiプレフィックス配下に公開されます
func NewRouter(handlers Handlers, log *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(recovery(log))
	r.Use(requestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondSuccess(w, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		handlers.Product.Routes(api)
		handlers.Attendant.Routes(api)
		handlers.Customer.Routes(api)
	})

	return r
}

// Server はHTTPサーバのライフサイクルを管理します
type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

// NewServer は指定ポートで待ち受けるServerを作成します
func NewServer(port int, handler http.Handler, log *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Run はサーバを起動し、コンテキストのキャンセルでグレースフルに停止します
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.log.Info("Shutting down HTTP server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
