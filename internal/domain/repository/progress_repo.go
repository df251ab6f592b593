package repository

import (
	"github.com/yourusername/safety-training-api/internal/domain/entity"
)

// ProgressRepository определяет методы для учёта просмотра видео
type ProgressRepository interface {
	// MarkWatched ставит отметку просмотра; повторный вызов для той же пары
	// (worker_id, video_id) — no-op, watched_at не перезаписывается.
	MarkWatched(workerID, videoID uint) error
	ListByWorker(workerID uint) ([]entity.VideoProgress, error)
	// CountWatched возвращает число различных просмотренных видео работника
	CountWatched(workerID uint) (int64, error)
}
