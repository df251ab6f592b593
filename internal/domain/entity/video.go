package entity

import "time"

// Video представляет обучающий видеоролик.
// VideoURL хранит непрозрачный ключ файла в хранилище, а не прямую ссылку.
type Video struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SectionName  string    `gorm:"size:100;not null" json:"section_name"`
	VideoTitle   string    `gorm:"size:200;not null" json:"video_title"`
	VideoURL     string    `gorm:"size:1024;not null" json:"video_url"`
	VideoOrder   int       `gorm:"not null" json:"video_order"`
	SectionOrder int       `gorm:"not null" json:"section_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Video) TableName() string {
	return "videos"
}
