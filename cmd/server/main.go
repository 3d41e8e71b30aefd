// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"roasthub-go/internal/config"
	"roasthub-go/internal/handler"
	"roasthub-go/internal/middleware"
	"roasthub-go/internal/model"
	"roasthub-go/internal/repository"
	"roasthub-go/internal/service"
	"roasthub-go/pkg/database"
	"roasthub-go/pkg/llm"
	"roasthub-go/pkg/log"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. 加载 .env（可选）并初始化配置
	_ = godotenv.Load()
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()
	log.Info("日志记录器初始化成功")

	// 3. 建立数据库连接（进程级句柄，创建一次后注入复用）
	db, err := database.NewMySQL(cfg.Database.MySQL.DSN)
	if err != nil {
		log.Fatal("MySQL 连接失败", err)
	}
	defer database.Close(db)
	if err := db.AutoMigrate(&model.Tweet{}); err != nil {
		log.Fatal("数据库迁移失败", err)
	}
	log.Info("MySQL database connected successfully")

	// 4. 初始化 Repository 与 Service（依赖注入）
	tweetRepo := repository.NewTweetRepository(db)

	var llmClient llm.Client
	if cfg.LLM.APIKey != "" {
		llmClient = llm.NewClient(cfg.LLM)
		log.Infof("Grok AI 初始化成功 (model=%s)", cfg.LLM.Model)
	} else {
		log.Warnf("未配置 GROK_API_KEY，生成接口将始终返回兜底推文")
	}
	tweetService := service.NewTweetService(llmClient)

	tweetHandler := handler.NewTweetHandler(tweetService, tweetRepo)
	healthHandler := handler.NewHealthHandler(db)

	// 5. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.CORS.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.CORS.FrontendURL)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	// 6. 注册路由
	r.GET("/", healthHandler.Root)
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		tweets := api.Group("/tweets")
		{
			tweets.POST("/generate", tweetHandler.Generate)
			tweets.GET("/history", tweetHandler.History)
		}
	}

	// 7. 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("RoastHub 服务启动于 %s", srv.Addr)
		log.Infof("健康检查: http://localhost:%s/api/health", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}
	log.Info("服务已优雅关闭")
}
