package handlers

import (
	"bytes"
	"encoding/json"
	"game-harbor/app/server/jwt"
	"game-harbor/app/server/models"
	"game-harbor/app/server/sessions"
	"game-harbor/app/server/storage"
	"game-harbor/app/server/types"
	"github.com/alexedwards/argon2id"
	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

type testEnv struct {
	e     *echo.Echo
	db    *gorm.DB
	store *storage.Local
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// 临时 sqlite 数据库代替 postgres
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "harbor.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Game{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	j, err := jwt.New("test-signature-secret-key")
	require.NoError(t, err)

	store, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	app := NewApp(zap.NewNop(), db, rdb, sessions.New(rdb, j), store)

	// 与 main.go 相同的路由表
	e := echo.New()
	e.GET("/healthcheck", app.HealthCheck)
	e.GET("/api/games", app.GameList)
	e.POST("/api/auth/login", app.AuthLogin)
	e.POST("/api/auth/register", app.AuthRegister)
	e.GET("/api/auth/logout", app.AuthLogout)
	e.GET("/api/auth/me", app.AuthMe)
	e.POST("/api/admin/upload", app.GameUpload)
	e.GET("/api/download/:id", app.GameDownloadAPI)
	e.GET("/download/:id", app.GameDownloadFile)

	return &testEnv{
		e:     e,
		db:    db,
		store: store,
	}
}

func (env *testEnv) createUser(t *testing.T, username string, password string, isAdmin bool) *models.User {
	t.Helper()

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	require.NoError(t, err)

	user := models.User{
		Username: username,
		IsAdmin:  isAdmin,
		Password: hash,
	}
	require.NoError(t, env.db.Create(&user).Error)

	return &user
}

// request 发送一个请求并返回响应。 token 非空时带上 bearer 认证头
func (env *testEnv) request(method string, target string, body io.Reader, contentType string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) requestJSON(method string, target string, payload any, token string) *httptest.ResponseRecorder {
	bodyBytes, _ := json.Marshal(payload)
	return env.request(method, target, bytes.NewReader(bodyBytes), echo.MIMEApplicationJSON, token)
}

func (env *testEnv) login(t *testing.T, username string, password string) types.AuthLoginResponse {
	t.Helper()

	rec := env.requestJSON(http.MethodPost, "/api/auth/login", &types.AuthLoginRequest{
		Username: username,
		Password: password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res types.AuthLoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

type uploadFile struct {
	field    string
	filename string
	content  []byte
}

// uploadRequest 构造 multipart 上传请求
func (env *testEnv) uploadRequest(t *testing.T, token string, title string, description string, files ...uploadFile) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", title))
	require.NoError(t, w.WriteField("description", description))
	for _, f := range files {
		fw, err := w.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = fw.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return env.request(http.MethodPost, "/api/admin/upload", &buf, w.FormDataContentType(), token)
}
