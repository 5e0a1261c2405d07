package container

import (
	"context"
	"fmt"
	"log/slog"

	accountpg "github.com/soatbr/registration/internal/module/account/adapter/pg"
	accountapp "github.com/soatbr/registration/internal/module/account/application"
	catalogpg "github.com/soatbr/registration/internal/module/catalog/adapter/pg"
	catalogapp "github.com/soatbr/registration/internal/module/catalog/application"
	"github.com/soatbr/registration/internal/platform/config"
	"github.com/soatbr/registration/internal/platform/database"
	"github.com/soatbr/registration/internal/platform/logger"
)

// Container はアプリケーションの依存関係を保持します。
// ユースケースはここで一度だけ組み立てられ、CLIとHTTPの両方から共有されます
type Container struct {
	Logger   *slog.Logger
	Database *database.DB

	ProductService   *catalogapp.ProductService
	AttendantService *accountapp.AttendantService
	CustomerService  *accountapp.CustomerService
}

// New は設定からコンテナを生成します
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(cfg.Log.Level)
	if cfg.Log.Format != "" {
		logCfg.Format = cfg.Log.Format
	}
	log := logger.New(logCfg)

	db, err := database.New(ctx, database.ConnectionParams{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	productRepo := catalogpg.NewProductRepository(db)
	attendantRepo := accountpg.NewAttendantRepository(db)
	customerRepo := accountpg.NewCustomerRepository(db)

	return &Container{
		Logger:           log,
		Database:         db,
		ProductService:   catalogapp.NewProductService(productRepo, log),
		AttendantService: accountapp.NewAttendantService(attendantRepo, log),
		CustomerService:  accountapp.NewCustomerService(customerRepo, log),
	}, nil
}

// Close はコンテナが保持するリソースをクリーンアップします
func (c *Container) Close() {
	if c.Database != nil {
		c.Database.Close()
	}
}
