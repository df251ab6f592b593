package repository

import (
	"github.com/yourusername/safety-training-api/internal/domain/entity"
)

// VideoRepository определяет методы для работы с каталогом видео
type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id uint) (*entity.Video, error)
	// ListOrdered возвращает каталог в порядке (section_order, video_order)
	ListOrdered() ([]entity.Video, error)
	Count() (int64, error)
	Delete(id uint) error
}
