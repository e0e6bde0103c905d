package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串
		UploadDir             string // 上传文件（游戏本体与封面）的存放目录
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于产生会话令牌，更新会导致旧有会话全部失效
		AdminUsername      string // 初始管理员用户名
		AdminPassword      string // 初始管理员密码，只在首次建库时使用
	}
}
