package models

import "gorm.io/gorm"

type Game struct {
	gorm.Model

	// 游戏基础信息
	Title       string  `gorm:"column:title"`       // 标题，最长 100 字符
	Description string  `gorm:"column:description"` // 简介
	Avatar      *string `gorm:"column:avatar"`      // 封面图的存储文件名， NULL 表示没有封面

	// 游戏文件与统计
	FilePath  string `gorm:"column:file_path"` // 游戏文件的存储文件名
	Downloads uint64 `gorm:"column:downloads"` // 下载次数，只增不减

	// 上传者用户名（创建后不再变化，不做外键关联）
	Uploader string `gorm:"column:uploader"`
}
