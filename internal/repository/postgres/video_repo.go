package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
)

// VideoRepo реализует repository.VideoRepository
type VideoRepo struct {
	db *gorm.DB
}

// NewVideoRepo создает новый репозиторий видео
func NewVideoRepo(db *gorm.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

// Create создает новую запись видео
func (r *VideoRepo) Create(video *entity.Video) error {
	return r.db.Create(video).Error
}

// GetByID возвращает видео по ID
func (r *VideoRepo) GetByID(id uint) (*entity.Video, error) {
	var video entity.Video
	err := r.db.First(&video, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// ListOrdered возвращает каталог в порядке (section_order, video_order).
// Строгая уникальность порядка не требуется: при совпадении значений
// порядок стабилен за счёт id (порядок вставки).
func (r *VideoRepo) ListOrdered() ([]entity.Video, error) {
	var videos []entity.Video
	err := r.db.Order("section_order, video_order, id").Find(&videos).Error
	return videos, err
}

// Count возвращает текущее число видео в каталоге
func (r *VideoRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entity.Video{}).Count(&count).Error
	return count, err
}

// Delete удаляет запись видео
func (r *VideoRepo) Delete(id uint) error {
	return r.db.Delete(&entity.Video{}, id).Error
}
