package storage

import (
	"fmt"
	"game-harbor/app/server/constants"
	"github.com/google/uuid"
	"path/filepath"
	"strings"
)

// AcceptsFilename 判断文件名是否带有允许上传的扩展名
func AcceptsFilename(filename string) bool {
	ext := extOf(filename)
	if ext == "" {
		return false
	}

	return constants.AllowedUploadExtensions[ext]
}

// GenerateName 产生 <分类>_<随机hex8>.<小写扩展名> 形式的存储文件名。
// 随机部分来自 UUID ，在目录的整个生命周期内碰撞概率可以忽略。
func GenerateName(originalFilename string, category string) string {
	u := uuid.New()
	return fmt.Sprintf("%s_%x.%s", category, u[:4], extOf(originalFilename))
}

func extOf(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ""
	}

	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
