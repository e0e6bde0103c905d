package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) HealthCheck(c echo.Context) error {
	rctx := c.Request().Context()

	// 数据库
	if sqlDB, err := a.db.DB(); err != nil {
		a.l.Error("failed to get sql db", zap.Error(err))
		return a.er(c, http.StatusServiceUnavailable)
	} else if err := sqlDB.PingContext(rctx); err != nil {
		a.l.Error("failed to ping db", zap.Error(err))
		return a.er(c, http.StatusServiceUnavailable)
	}

	// Redis
	if err := a.rdb.Ping(rctx).Err(); err != nil {
		a.l.Error("failed to ping redis", zap.Error(err))
		return a.er(c, http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
