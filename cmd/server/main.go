package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // 确保在精简镜像中也能识别时区

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/seriesdb/internal/config"
	"github.com/user/seriesdb/internal/handler"
	"github.com/user/seriesdb/internal/logger"
	"github.com/user/seriesdb/internal/middleware"
	"github.com/user/seriesdb/internal/model"
	"github.com/user/seriesdb/internal/repository"
	"github.com/user/seriesdb/internal/router"
	"github.com/user/seriesdb/internal/service"
	"github.com/user/seriesdb/internal/utils"
	"go.uber.org/zap"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	// 初始化数据库
	db, err := repository.InitDB(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("[Main] 数据库连接失败", zap.Error(err))
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	// 初始化仓库
	repos := repository.NewRepositories(db)

	// 初始化缓存
	utils.InitCache(cfg.CacheTTL)
	showCache, err := utils.NewLRUCache[*model.TVShow](cfg.CacheSize, cfg.CacheTTL)
	if err != nil {
		zlog.Fatal("[Main] 初始化剧集缓存失败", zap.Error(err))
	}

	tvShows := service.NewTVShowService(repos.TVShow, showCache, zlog)
	h := handler.NewHandler(cfg, tvShows, zlog, nil)

	// 初始化 Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.Logger(zlog))

	// 静态文件
	r.Static("/static", cfg.StaticDir)

	// 注册路由
	router.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		zlog.Info("[Main] 服务器启动", zap.String("addr", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("[Main] 服务器启动失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("[Main] 正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("[Main] 服务器强制关闭", zap.Error(err))
		return
	}

	zlog.Info("[Main] 服务器已退出")
}
