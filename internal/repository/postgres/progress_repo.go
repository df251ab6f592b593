package postgres

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
)

// ProgressRepo реализует repository.ProgressRepository
type ProgressRepo struct {
	db *gorm.DB
}

// NewProgressRepo создает новый репозиторий прогресса просмотра
func NewProgressRepo(db *gorm.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// MarkWatched ставит отметку просмотра видео работником.
// Upsert по уникальной паре (worker_id, video_id): повторная отметка —
// no-op, исходный watched_at сохраняется.
func (r *ProgressRepo) MarkWatched(workerID, videoID uint) error {
	now := time.Now()
	progress := entity.VideoProgress{
		WorkerID:  workerID,
		VideoID:   videoID,
		Watched:   true,
		WatchedAt: &now,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "worker_id"}, {Name: "video_id"}},
		DoNothing: true,
	}).Create(&progress).Error
}

// ListByWorker возвращает весь прогресс просмотра работника
func (r *ProgressRepo) ListByWorker(workerID uint) ([]entity.VideoProgress, error) {
	var progress []entity.VideoProgress
	err := r.db.Where("worker_id = ?", workerID).Find(&progress).Error
	return progress, err
}

// CountWatched возвращает число различных просмотренных видео работника
func (r *ProgressRepo) CountWatched(workerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.VideoProgress{}).
		Where("worker_id = ? AND watched = ?", workerID, true).
		Count(&count).Error
	return count, err
}
