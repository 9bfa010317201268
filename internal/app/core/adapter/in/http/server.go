package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-bank/pkg/config"
)

// Server 包裝 http.Server：路由註冊、中介層掛載與優雅關機
type Server struct {
	handler *Handler
	logger  *zap.Logger
	cfg     config.ServerConfig
	server  *http.Server
}

// NewServer 建立 REST 伺服器
//
// 參數:
//
//	core: 核心業務邏輯層
//	logger: 結構化 Logger
//	cfg: HTTP 伺服器設定
func NewServer(core *usecase.BankUseCase, logger *zap.Logger, cfg config.ServerConfig) *Server {
	s := &Server{
		handler: NewHandler(core),
		logger:  logger,
		cfg:     cfg,
	}
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Router 建立整個 HTTP 處理鏈：
// requestID → logging → recovery → (CORS) → 路由
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))
	r.Use(recoveryMiddleware(s.logger))

	r.HandleFunc("/health", s.handler.Health).Methods(http.MethodGet)
	r.HandleFunc("/accounts", s.handler.ListAccounts).Methods(http.MethodGet)
	r.HandleFunc("/accounts", s.handler.CreateAccount).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{id}/balance", s.handler.GetBalance).Methods(http.MethodGet)
	r.HandleFunc("/accounts/{id}/withdraw", s.handler.Withdraw).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{id}/deposit", s.handler.Deposit).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{id}", s.handler.DeleteAccount).Methods(http.MethodDelete)

	if len(s.cfg.AllowedOrigins) == 0 {
		return r
	}
	return handlers.CORS(
		handlers.AllowedOrigins(s.cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type", requestIDHeader}),
	)(r)
}

// Start 啟動伺服器 (阻塞直到關閉)；正常關機時回傳 nil
func (s *Server) Start() error {
	s.logger.Info("starting http server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown 優雅關機：停止收新請求，等待進行中的請求完成
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
