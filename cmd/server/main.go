// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"kokoro-chat-go/internal/config"
	"kokoro-chat-go/internal/handler"
	"kokoro-chat-go/internal/middleware"
	"kokoro-chat-go/internal/model"
	"kokoro-chat-go/internal/repository"
	"kokoro-chat-go/internal/service"
	"kokoro-chat-go/pkg/database"
	"kokoro-chat-go/pkg/log"
	"kokoro-chat-go/pkg/sentiment"
)

func main() {
	// 1. 加载 .env（上游凭证）和 YAML 配置
	_ = godotenv.Load()
	cfg, err := config.Load("./configs/config.yaml")
	if err != nil {
		panic(err)
	}

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()
	log.Info("日志记录器初始化成功")

	// 3. 初始化数据库并幂等建表
	db, err := database.NewMySQL(cfg.Database.MySQL.DSN)
	if err != nil {
		log.Fatal("数据库初始化失败", err)
	}
	if err := db.AutoMigrate(&model.ChatRecord{}, &model.Session{}, &model.SessionChat{}); err != nil {
		log.Fatal("数据库建表失败", err)
	}
	log.Info("MySQL 连接成功，表结构已就绪")

	// 4. 初始化情感分析客户端
	sentimentClient, err := sentiment.NewClient(context.Background(), cfg.Sentiment)
	if err != nil {
		log.Fatal("情感分析客户端初始化失败", err)
	}

	// 5. 初始化 Repository 和 Service (依赖注入)
	chatRepo := repository.NewChatRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	chatService := service.NewChatService(chatRepo)
	sessionService := service.NewSessionService(sessionRepo)
	sentimentService := service.NewSentimentService(sentimentClient, cfg.Sentiment)

	// 6. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery(), cors.Default())

	// 7. 注册路由
	r.POST("/analyze", handler.NewSentimentHandler(sentimentService).Analyze)

	api := r.Group("/api")
	{
		chatHandler := handler.NewChatHandler(chatService)
		api.POST("/chat", chatHandler.SaveChat)
		api.GET("/chats", chatHandler.ListChats)
		api.DELETE("/chats/:chatId", chatHandler.DeleteChat)

		sessionHandler := handler.NewSessionHandler(sessionService)
		api.GET("/sessions", sessionHandler.ListSessions)
		api.POST("/sessions", sessionHandler.CreateSession)
		api.DELETE("/sessions/:sessionId", sessionHandler.DeleteSession)
	}

	// 未匹配的路由交给静态资源处理（前端构建产物）
	r.NoRoute(handler.NewStaticHandler(cfg.Static.Dir, cfg.Static.Index).Serve)

	// 8. 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
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
