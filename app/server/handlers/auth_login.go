package handlers

import (
	"errors"
	"game-harbor/app/server/models"
	"game-harbor/app/server/types"
	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"strings"
)

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.AuthLoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	req.Username = strings.TrimSpace(req.Username)

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "username = ?", req.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusUnauthorized, "invalid username or password")
		} else {
			a.l.Error("failed to find user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(req.Password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if !match {
		// 密码不一致
		return a.erm(c, http.StatusUnauthorized, "invalid username or password")
	}

	// 建立会话
	token, err := a.sess.Issue(rctx, &user)
	if err != nil {
		a.l.Error("failed to issue session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 返回
	return c.JSON(http.StatusOK, &types.AuthLoginResponse{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		Token:    token,
	})
}

func (a *App) AuthLogout(c echo.Context) error {
	// 没带令牌或令牌无效都视为已登出，保持幂等
	if token, err := a.bearerToken(c); err == nil {
		a.sess.Revoke(c.Request().Context(), token)
	}

	return c.JSON(http.StatusOK, &types.Confirmation{
		Message: "logged out",
	})
}

func (a *App) AuthMe(c echo.Context) error {
	// 抓取会话信息（认证）
	info, err, statusCode := a.authUser(c, false)
	if err != nil {
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, &types.AuthMeResponse{
		Username: info.Username,
		IsAdmin:  info.IsAdmin,
	})
}
