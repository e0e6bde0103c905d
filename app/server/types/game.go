package types

import "time"

// GameInfo 是目录条目的对外展示，字段名沿用前端已有的约定
type GameInfo struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"desc"`
	Avatar      *string   `json:"avatar"`
	File        string    `json:"file"`
	Downloads   uint64    `json:"downloads"`
	Date        time.Time `json:"date"`
	Uploader    string    `json:"uploader"`
}

type GameUploadResponse struct {
	ID uint `json:"id"`
}

type GameDownloadResponse struct {
	File string `json:"file"`
}
