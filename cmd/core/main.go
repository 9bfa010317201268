package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	http_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/in/http"
	memory_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/mysql"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-bank/pkg/config"
	"github.com/JoeShih716/go-mem-bank/pkg/logger"
	"github.com/JoeShih716/go-mem-bank/pkg/mysql"
)

const configPath = "config/config.yaml"

func main() {
	// 1. 載入設定
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. 初始化 Logger
	zlog, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// 3. 載入初始帳戶
	seed, err := loadSeed(context.Background(), cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to load seed accounts", zap.Error(err))
	}
	zlog.Info("loaded seed accounts", zap.Int("count", len(seed)))

	// 4. 初始化 Store (Driven Adapter)
	var store usecase.Store
	switch cfg.Store.Type {
	case config.StoreTypeMutex:
		mutexStore, err := memory_adapter.NewMutexStore(seed)
		if err != nil {
			zlog.Fatal("failed to init mutex store", zap.Error(err))
		}
		store = mutexStore
	case config.StoreTypeSerial:
		serialStore, err := memory_adapter.NewSerialStore(seed)
		if err != nil {
			zlog.Fatal("failed to init serial store", zap.Error(err))
		}
		defer serialStore.Close()
		store = serialStore
	default:
		zlog.Fatal("invalid store type", zap.String("type", cfg.Store.Type))
	}

	// 5. 初始化 UseCase
	core := usecase.NewBankUseCase(store)

	// 6. 初始化 HTTP Adapter (Driving Adapter) 並啟動
	server := http_adapter.NewServer(core, zlog, cfg.Server)
	go func() {
		if err := server.Start(); err != nil {
			zlog.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zlog.Error("shutdown error", zap.Error(err))
	}
	zlog.Info("server exited")
}

// staticSeedSource 設定檔內列出的初始帳戶
type staticSeedSource struct {
	accounts []config.SeedAccount
}

func (s *staticSeedSource) LoadAllAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		accounts = append(accounts, domain.NewAccount(a.Identifier, a.Balance))
	}
	return accounts, nil
}

var _ usecase.SeedSource = (*staticSeedSource)(nil)

// newSeedSource 依設定選擇初始帳戶來源 (usecase.SeedSource)：
//   - static: 設定檔內列出的帳戶
//   - mysql: 啟動時從 accounts 表唯讀載入 (之後的變更不回寫)
//
// 回傳:
//
//	usecase.SeedSource: 來源實例
//	func(): 來源用完後的清理函式 (如關閉資料庫連線)
//	error: 建立來源失敗的錯誤
func newSeedSource(cfg config.Config, zlog *zap.Logger) (usecase.SeedSource, func(), error) {
	switch cfg.Seed.Source {
	case config.SeedSourceMySQL:
		dbClient, err := mysql.NewClient(cfg.MySQL)
		if err != nil {
			return nil, nil, err
		}
		zlog.Info("connected to mysql for seed loading")
		// 種子載入完就不再需要資料庫連線
		return mysql_adapter.NewSeedSource(dbClient), func() { _ = dbClient.Close() }, nil
	default:
		return &staticSeedSource{accounts: cfg.Seed.Accounts}, func() {}, nil
	}
}

func loadSeed(ctx context.Context, cfg config.Config, zlog *zap.Logger) ([]domain.Account, error) {
	source, cleanup, err := newSeedSource(cfg, zlog)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return source.LoadAllAccounts(ctx)
}
