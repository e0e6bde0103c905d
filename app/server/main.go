package main

import (
	"fmt"
	"game-harbor/app/server/handlers"
	"game-harbor/app/server/inits"
	"game-harbor/app/server/jwt"
	"game-harbor/app/server/sessions"
	"game-harbor/app/server/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString, cfg.Security.AdminUsername, cfg.Security.AdminPassword)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 初始化上传存储
	store, err := storage.NewLocal(cfg.System.UploadDir)
	if err != nil {
		l.Fatal("error initializing upload storage", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, rdb, sessions.New(rdb, j), store)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定路由
	e.GET("/healthcheck", handlerApp.HealthCheck)

	e.GET("/api/games", handlerApp.GameList)
	e.POST("/api/auth/login", handlerApp.AuthLogin)
	e.POST("/api/auth/register", handlerApp.AuthRegister)
	e.GET("/api/auth/logout", handlerApp.AuthLogout)
	e.GET("/api/auth/me", handlerApp.AuthMe)
	e.POST("/api/admin/upload", handlerApp.GameUpload)
	e.GET("/api/download/:id", handlerApp.GameDownloadAPI)
	e.GET("/download/:id", handlerApp.GameDownloadFile)

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
