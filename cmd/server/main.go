package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pcshop-next/internal/config"
	"github.com/pcshop-next/internal/http/handlers"
	"github.com/pcshop-next/internal/logger"
	"github.com/pcshop-next/internal/models"
	"github.com/pcshop-next/internal/provider"
	"github.com/pcshop-next/internal/router"
)

func main() {
	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if isWeakSecret(cfg.JWT.SecretKey) {
		if cfg.Server.Mode == "release" {
			stdLog.Fatalf("JWT secret is weak or still the default, set a strong random key in production")
		}
		stdLog.Printf("warning: JWT secret is weak or still the default")
	}

	// 初始化数据库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("database migration failed: %v", err)
	}

	// 初始化默认超级用户
	defaultEmail := os.Getenv("PCSHOP_DEFAULT_SUPERUSER_EMAIL")
	defaultPass := os.Getenv("PCSHOP_DEFAULT_SUPERUSER_PASSWORD")
	if cfg.Server.Mode == "release" && defaultPass == "" {
		stdLog.Printf("warning: PCSHOP_DEFAULT_SUPERUSER_PASSWORD not set, skipping default superuser init")
	} else if err := models.InitDefaultSuperuser(defaultEmail, defaultPass); err != nil {
		stdLog.Printf("warning: default superuser init failed: %v", err)
	}

	// 装配依赖并启动服务
	container := provider.NewContainer(cfg)
	h := &handlers.Handler{
		Config:            cfg,
		UserAuthService:   container.UserAuthService,
		ProductService:    container.ProductService,
		ViewService:       container.ViewService,
		EngagementService: container.EngagementService,
		PcBuildService:    container.PcBuildService,
		CatalogService:    container.CatalogService,
		OrderService:      container.OrderService,
	}
	engine := router.New(cfg, h, container.UserRepo, container.AuthzService)

	server := &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler: engine,
	}

	go func() {
		logger.Infow("server_starting", "addr", server.Addr, "mode", cfg.Server.Mode)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			stdLog.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infow("server_shutting_down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		stdLog.Printf("graceful shutdown failed: %v", err)
	}
	logger.Infow("server_stopped")
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
