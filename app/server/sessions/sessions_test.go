package sessions

import (
	"context"
	"game-harbor/app/server/constants"
	"game-harbor/app/server/jwt"
	"game-harbor/app/server/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func newTestAuthority(t *testing.T) (*Authority, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	j, err := jwt.New("test-signature-secret-key")
	require.NoError(t, err)

	return New(rdb, j), mr
}

func testUser() *models.User {
	user := &models.User{
		Username: "admin",
		IsAdmin:  true,
	}
	user.ID = 42
	return user
}

func TestIssueAndCurrent(t *testing.T) {
	a, _ := newTestAuthority(t)
	ctx := context.Background()

	token, err := a.Issue(ctx, testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	info, err := a.Current(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), info.UserID)
	assert.Equal(t, "admin", info.Username)
	assert.True(t, info.IsAdmin)
}

func TestCurrentWithInvalidToken(t *testing.T) {
	a, _ := newTestAuthority(t)

	_, err := a.Current(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRevoke(t *testing.T) {
	a, _ := newTestAuthority(t)
	ctx := context.Background()

	token, err := a.Issue(ctx, testUser())
	require.NoError(t, err)

	a.Revoke(ctx, token)

	_, err = a.Current(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)

	// 重复销毁和销毁无效令牌都不报错
	a.Revoke(ctx, token)
	a.Revoke(ctx, "not-a-token")
}

func TestSessionExpiry(t *testing.T) {
	a, mr := newTestAuthority(t)
	ctx := context.Background()

	token, err := a.Issue(ctx, testUser())
	require.NoError(t, err)

	// 服务端会话记录到期后，令牌本身还没过期也不能再用
	mr.FastForward(constants.SessionDuration + time.Minute)

	_, err = a.Current(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSessionsAreIndependent(t *testing.T) {
	a, _ := newTestAuthority(t)
	ctx := context.Background()

	token1, err := a.Issue(ctx, testUser())
	require.NoError(t, err)
	token2, err := a.Issue(ctx, testUser())
	require.NoError(t, err)

	// 同一用户的两个会话互不影响
	a.Revoke(ctx, token1)

	_, err = a.Current(ctx, token1)
	assert.ErrorIs(t, err, ErrNoSession)

	info, err := a.Current(ctx, token2)
	require.NoError(t, err)
	assert.Equal(t, "admin", info.Username)
}
