package entity

import "time"

// VideoProgress представляет факт просмотра видео работником.
// Одна строка на пару (worker_id, video_id); повторная отметка просмотра
// не меняет watched_at.
type VideoProgress struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	WorkerID  uint       `gorm:"not null;uniqueIndex:idx_worker_video" json:"worker_id"`
	VideoID   uint       `gorm:"not null;uniqueIndex:idx_worker_video" json:"video_id"`
	Watched   bool       `gorm:"not null;default:false" json:"watched"`
	WatchedAt *time.Time `json:"watched_at,omitempty"`
}

// TableName определяет имя таблицы для GORM
func (VideoProgress) TableName() string {
	return "video_progress"
}
