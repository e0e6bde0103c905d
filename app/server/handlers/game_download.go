package handlers

import (
	"context"
	"errors"
	"fmt"
	"game-harbor/app/server/constants"
	"game-harbor/app/server/models"
	"game-harbor/app/server/types"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"strconv"
)

// recordDownload 原子自增下载计数并返回存储文件名，条目不存在时返回 404
func (a *App) recordDownload(ctx context.Context, id uint) (string, int, error) {
	// 自增计数，顺便确认条目存在。并发下载同一条目时数据库负责串行化
	res := a.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + 1"))
	if res.Error != nil {
		return "", http.StatusInternalServerError, fmt.Errorf("failed to increment downloads: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return "", http.StatusNotFound, fmt.Errorf("game %d not found", id)
	}

	// 查询缓存。条目创建后文件名不再变化，可以放心缓存
	cacheKey := fmt.Sprintf(constants.CacheKeyGameFile, id)
	if filename, err := a.rdb.Get(ctx, cacheKey).Result(); err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to query cache for game file", zap.Uint("id", id), zap.Error(err))
		}
	} else if filename != "" {
		return filename, http.StatusOK, nil
	}

	// 查询数据库
	var game models.Game
	if err := a.db.WithContext(ctx).First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", http.StatusNotFound, fmt.Errorf("game %d not found", id)
		}
		return "", http.StatusInternalServerError, fmt.Errorf("failed to get game: %w", err)
	}

	// 加入缓存，方便下一次查询
	a.rdb.Set(ctx, cacheKey, game.FilePath, constants.CacheExpireGameFile)

	return game.FilePath, http.StatusOK, nil
}

func (a *App) gameIDParam(c echo.Context) (uint, error) {
	idUint64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(idUint64), nil
}

// GameDownloadAPI 只登记一次下载并返回存储文件名，由前端自行拼接地址
func (a *App) GameDownloadAPI(c echo.Context) error {
	id, err := a.gameIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	filename, statusCode, err := a.recordDownload(c.Request().Context(), id)
	if err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to record download", zap.Uint("id", id), zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, &types.GameDownloadResponse{
		File: filename,
	})
}

// GameDownloadFile 登记一次下载并以附件形式送出文件本体
func (a *App) GameDownloadFile(c echo.Context) error {
	id, err := a.gameIDParam(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	filename, statusCode, err := a.recordDownload(c.Request().Context(), id)
	if err != nil {
		if statusCode == http.StatusInternalServerError {
			a.l.Error("failed to record download", zap.Uint("id", id), zap.Error(err))
		}
		return a.er(c, statusCode)
	}

	return c.Attachment(a.store.Path(filename), filename)
}
