package constants

// 上传文件的分类，用于生成存储文件名的前缀
const (
	UploadCategoryGame   = "game"
	UploadCategoryAvatar = "avatar"
)

// 允许上传的扩展名（小写）。
// 注意：允许可执行格式（ exe / msi ）是站点的刻意策略，这里只是集中定义，方便部署时调整。
var AllowedUploadExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
	"zip":  true,
	"rar":  true,
	"exe":  true,
	"msi":  true,
}

// 各类输入的边界
const (
	UsernameMinLength = 4   // 用户名最短长度
	PasswordMinLength = 5   // 密码最短长度
	TitleMaxLength    = 100 // 游戏标题最长长度
	SearchResultLimit = 50  // 带搜索词时最多返回的条目数
)
