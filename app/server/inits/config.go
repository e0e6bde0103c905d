package inits

import (
	"fmt"
	"game-harbor/app/server/config"
	"os"
	"strings"
)

func Config() (cfg *config.Config, err error) {
	cfg = &config.Config{}

	// 手动配置映射
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if uploadDir, exist := os.LookupEnv("UPLOAD_DIR"); !exist {
		cfg.System.UploadDir = "./data/uploads" // 默认上传目录
	} else {
		cfg.System.UploadDir = uploadDir
	}

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	if adminUser, exist := os.LookupEnv("ADMIN_USERNAME"); !exist {
		cfg.Security.AdminUsername = "admin"
	} else {
		cfg.Security.AdminUsername = adminUser
	}

	if adminPass, exist := os.LookupEnv("ADMIN_PASSWORD"); !exist {
		return nil, fmt.Errorf("ADMIN_PASSWORD environment variable not set")
	} else {
		cfg.Security.AdminPassword = adminPass
	}

	return cfg, nil
}
