package sessions

import (
	"context"
	"errors"
	"fmt"
	"game-harbor/app/server/constants"
	"game-harbor/app/server/jwt"
	"game-harbor/app/server/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"time"
)

// ErrNoSession 表示令牌对应的会话不存在（从未建立、已登出或已过期）
var ErrNoSession = errors.New("no active session")

type Authority struct {
	rdb *redis.Client
	jwt *jwt.JWT
}

// Info 是绑定在会话上的身份信息
type Info struct {
	UserID   uint
	Username string
	IsAdmin  bool
}

func New(rdb *redis.Client, j *jwt.JWT) *Authority {
	return &Authority{
		rdb: rdb,
		jwt: j,
	}
}

// Issue 为校验通过的用户建立新会话并返回签名令牌。
// 会话记录写入 redis ，登出时删除记录即可让令牌立即失效。
func (a *Authority) Issue(ctx context.Context, user *models.User) (string, error) {
	sid := uuid.NewString()
	expires := time.Now().Add(constants.SessionDuration)

	token, err := a.jwt.SignToken(&jwt.User{
		ID:        user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		SessionID: sid,
		Expires:   expires.Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	sessionKey := fmt.Sprintf(constants.CacheKeySession, sid)
	if err := a.rdb.Set(ctx, sessionKey, user.ID, constants.SessionDuration).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Current 解析令牌并确认服务端会话仍然存活
func (a *Authority) Current(ctx context.Context, tokenString string) (*Info, error) {
	// 签名和过期时间由 jwt 库校验
	jwtUser, err := a.jwt.ParseUser(tokenString)
	if err != nil {
		return nil, ErrNoSession
	}

	// 确认会话记录还在
	sessionKey := fmt.Sprintf(constants.CacheKeySession, jwtUser.SessionID)
	if err := a.rdb.Get(ctx, sessionKey).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	return &Info{
		UserID:   jwtUser.ID,
		Username: jwtUser.Username,
		IsAdmin:  jwtUser.IsAdmin,
	}, nil
}

// Revoke 销毁令牌对应的会话。无效令牌或不存在的会话直接视为已登出。
func (a *Authority) Revoke(ctx context.Context, tokenString string) {
	jwtUser, err := a.jwt.ParseUser(tokenString)
	if err != nil {
		return
	}

	a.rdb.Del(ctx, fmt.Sprintf(constants.CacheKeySession, jwtUser.SessionID))
}
