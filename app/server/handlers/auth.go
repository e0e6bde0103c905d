package handlers

import (
	"fmt"
	"game-harbor/app/server/sessions"
	"github.com/labstack/echo/v4"
	"net/http"
	"strings"
)

// bearerToken 从请求头里提取令牌，没有或格式不对时返回错误
func (a *App) bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing auth token")
	}

	splits := strings.Split(authHeader, " ")
	if len(splits) != 2 {
		return "", fmt.Errorf("invalid auth header: %s", authHeader)
	}

	if strings.ToLower(splits[0]) != "bearer" {
		return "", fmt.Errorf("unknown auth method: %s", splits[0])
	}

	return splits[1], nil
}

func (a *App) authUser(c echo.Context, requireAdminRole bool) (*sessions.Info, error, int) {
	// 提取 token
	token, err := a.bearerToken(c)
	if err != nil {
		return nil, err, http.StatusUnauthorized
	}

	// 验证 token 和服务端会话
	info, err := a.sess.Current(c.Request().Context(), token)
	if err != nil {
		// 会话不存在或已经销毁
		return nil, fmt.Errorf("failed to resolve session: %w", err), http.StatusUnauthorized
	}

	// 验证权限
	if requireAdminRole && !info.IsAdmin {
		return nil, fmt.Errorf("requires admin role"), http.StatusForbidden
	}

	return info, nil, http.StatusOK
}
