package handlers

import (
	"game-harbor/app/server/constants"
	"game-harbor/app/server/models"
	"game-harbor/app/server/types"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) GameList(c echo.Context) error {
	rctx := c.Request().Context()

	var games []models.Game

	// 无搜索词时返回全部，有搜索词时做大小写敏感的子串匹配并限量
	queryBase := a.db.WithContext(rctx).Model(&models.Game{}).Order("created_at DESC")
	if q := c.QueryParam("q"); q != "" {
		pattern := "%" + q + "%"
		queryBase = queryBase.
			Where("title LIKE ? OR description LIKE ?", pattern, pattern).
			Limit(constants.SearchResultLimit)
	}

	if err := queryBase.Find(&games).Error; err != nil {
		a.l.Error("failed to get game list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resGames := []types.GameInfo{}
	for _, game := range games {
		resGames = append(resGames, types.GameInfo{
			ID:          game.ID,
			Title:       game.Title,
			Description: game.Description,
			Avatar:      game.Avatar,
			File:        game.FilePath,
			Downloads:   game.Downloads,
			Date:        game.CreatedAt,
			Uploader:    game.Uploader,
		})
	}

	return c.JSON(http.StatusOK, resGames)
}
