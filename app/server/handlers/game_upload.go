package handlers

import (
	"game-harbor/app/server/constants"
	"game-harbor/app/server/models"
	"game-harbor/app/server/storage"
	"game-harbor/app/server/types"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"mime/multipart"
	"net/http"
	"strings"
	"unicode/utf8"
)

// saveUpload 为上传的文件生成存储文件名并把字节写入存储
func (a *App) saveUpload(file *multipart.FileHeader, category string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := storage.GenerateName(file.Filename, category)
	if err := a.store.Save(name, src); err != nil {
		return "", err
	}

	return name, nil
}

func (a *App) GameUpload(c echo.Context) error {
	// 抓取会话信息（认证），这个接口只对管理员开放
	info, err, _ := a.authUser(c, true)
	if err != nil {
		a.l.Debug("rejected game upload", zap.Error(err))
		return a.erm(c, http.StatusForbidden, "admin only")
	}

	rctx := c.Request().Context()

	// 校验元数据
	title := strings.TrimSpace(c.FormValue("title"))
	description := strings.TrimSpace(c.FormValue("description"))
	if title == "" || description == "" || utf8.RuneCountInString(title) > constants.TitleMaxLength {
		return a.erm(c, http.StatusBadRequest, "invalid title or description")
	}

	// 游戏文件必须存在且扩展名在白名单里
	gameFile, err := c.FormFile("game_file")
	if err != nil || !storage.AcceptsFilename(gameFile.Filename) {
		return a.erm(c, http.StatusBadRequest, "missing or unsupported game file")
	}

	// 保存封面。封面是可选的：没传、扩展名不符或写入失败都只是没有封面，不影响本次上传
	var avatarName *string
	if avatarFile, err := c.FormFile("avatar"); err == nil && storage.AcceptsFilename(avatarFile.Filename) {
		if name, err := a.saveUpload(avatarFile, constants.UploadCategoryAvatar); err != nil {
			a.l.Error("failed to save avatar", zap.String("filename", avatarFile.Filename), zap.Error(err))
		} else {
			avatarName = &name
		}
	}

	// 保存游戏文件。写入失败必须在落库之前中止，不能出现指向不存在文件的记录
	gameName, err := a.saveUpload(gameFile, constants.UploadCategoryGame)
	if err != nil {
		a.l.Error("failed to save game file", zap.String("filename", gameFile.Filename), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 落库
	game := models.Game{
		Title:       title,
		Description: description,
		Avatar:      avatarName,
		FilePath:    gameName,
		Uploader:    info.Username,
	}
	if err := a.db.WithContext(rctx).Create(&game).Error; err != nil {
		a.l.Error("failed to create game", zap.String("title", game.Title), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, &types.GameUploadResponse{
		ID: game.ID,
	})
}
