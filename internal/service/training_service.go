package service

import (
	"log"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	"github.com/yourusername/safety-training-api/internal/domain/repository"
)

// TrainingService отслеживает прохождение обучения: какие видео
// работник просмотрел и готов ли он к экзамену
type TrainingService struct {
	progressRepo repository.ProgressRepository
	videoRepo    repository.VideoRepository
	workerRepo   repository.WorkerRepository
}

// NewTrainingService создает новый сервис учёта обучения
func NewTrainingService(
	progressRepo repository.ProgressRepository,
	videoRepo repository.VideoRepository,
	workerRepo repository.WorkerRepository,
) *TrainingService {
	return &TrainingService{
		progressRepo: progressRepo,
		videoRepo:    videoRepo,
		workerRepo:   workerRepo,
	}
}

// MarkWatched отмечает видео просмотренным. Повторная отметка — no-op.
func (s *TrainingService) MarkWatched(workerID, videoID uint) error {
	if _, err := s.workerRepo.GetByID(workerID); err != nil {
		return err
	}
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		return err
	}
	if err := s.progressRepo.MarkWatched(workerID, videoID); err != nil {
		return err
	}
	log.Printf("[TrainingService] Работник #%d просмотрел видео #%d", workerID, videoID)
	return nil
}

// ListProgress возвращает отметки просмотра работника
func (s *TrainingService) ListProgress(workerID uint) ([]entity.VideoProgress, error) {
	return s.progressRepo.ListByWorker(workerID)
}

// IsEligibleForExam сообщает, допущен ли работник к экзамену.
// Требуется строгое равенство: просмотрено == всего видео в каталоге.
// Добавление нового видео автоматически отзывает допуск, пока
// работник его не посмотрит; сжатие каталога (включая пустой)
// может дать допуск без новых просмотров.
func (s *TrainingService) IsEligibleForExam(workerID uint) (bool, error) {
	total, err := s.videoRepo.Count()
	if err != nil {
		return false, err
	}
	watched, err := s.progressRepo.CountWatched(workerID)
	if err != nil {
		return false, err
	}
	return watched == total, nil
}
