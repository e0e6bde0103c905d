package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	// 基础信息
	Username string `gorm:"column:username;uniqueIndex"` // 用户名，全局唯一，区分大小写
	IsAdmin  bool   `gorm:"column:is_admin"`             // 是否为管理员：管理员可以上传游戏，普通用户只能浏览和下载

	// 登录认证相关
	Password string `gorm:"column:password"` // 密码，使用 argon2id 储存
}
