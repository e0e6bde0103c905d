package handlers

import (
	"game-harbor/app/server/constants"
	"game-harbor/app/server/models"
	"game-harbor/app/server/types"
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"strings"
	"unicode/utf8"
)

func (a *App) AuthRegister(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.AuthRegisterRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	req.Username = strings.TrimSpace(req.Username)

	// 校验长度
	if utf8.RuneCountInString(req.Username) < constants.UsernameMinLength ||
		utf8.RuneCountInString(req.Password) < constants.PasswordMinLength {
		return a.erm(c, http.StatusBadRequest, "username must be at least 4 characters and password at least 5")
	}

	// 用户名查重。并发注册同名用户依赖数据库唯一索引兜底，那种情况会走到下面的创建失败分支
	var counter int64
	if err := a.db.WithContext(rctx).Model(&models.User{}).Where("username = ?", req.Username).Count(&counter).Error; err != nil {
		a.l.Error("failed to count user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if counter > 0 {
		return a.erm(c, http.StatusBadRequest, "username already taken")
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 创建用户，注册入口只能产生普通用户
	user := models.User{
		Username: req.Username,
		Password: passwordHash,
	}

	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		a.l.Error("failed to create user", zap.String("username", user.Username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &types.Confirmation{
		Message: "registration successful",
	})
}
