package constants

import "time"

const (
	CacheKeySession  = "harbor:session:%s"   // %s -> session id
	CacheKeyGameFile = "harbor:game:file:%d" // %d -> game id
)

const (
	SessionDuration     = 24 * time.Hour // 会话有效期，登出会提前销毁
	CacheExpireGameFile = 12 * time.Hour // 游戏文件名缓存（记录不可变，过期只是为了兜底）
)
