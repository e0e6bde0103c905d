package handlers

import (
	"game-harbor/app/server/sessions"
	"game-harbor/app/server/storage"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l     *zap.Logger         // 日志
	db    *gorm.DB            // 数据库
	rdb   *redis.Client       // Redis
	sess  *sessions.Authority // 会话管理，负责签发和销毁登录会话
	store *storage.Local      // 上传文件的存储
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, sess *sessions.Authority, store *storage.Local) *App {
	return &App{
		l:     l,
		db:    db,
		rdb:   rdb,
		sess:  sess,
		store: store,
	}
}
