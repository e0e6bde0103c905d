package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local 把上传的字节按生成的存储文件名存放到本地目录
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	// 目录不存在则创建
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	return &Local{dir: dir}, nil
}

// Save 将 r 的全部内容写入 name 对应的文件
func (s *Local) Save(name string, r io.Reader) error {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to create blob file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write blob file: %w", err)
	}

	return nil
}

// Path 返回 name 在磁盘上的完整路径
func (s *Local) Path(name string) string {
	return filepath.Join(s.dir, name)
}
