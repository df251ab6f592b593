package service

import (
	"github.com/yourusername/safety-training-api/internal/domain/repository"
)

// ResultService предоставляет методы для административного отчёта по экзаменам
type ResultService struct {
	resultRepo repository.ResultRepository
}

// NewResultService создает новый сервис результатов
func NewResultService(resultRepo repository.ResultRepository) *ResultService {
	return &ResultService{
		resultRepo: resultRepo,
	}
}

// ResultStatistics сводка по всем попыткам экзамена
type ResultStatistics struct {
	TotalAttempts int     `json:"total_attempts"`
	PassedCount   int     `json:"passed_count"`
	FailedCount   int     `json:"failed_count"`
	PassRate      float64 `json:"pass_rate"`
	AverageScore  float64 `json:"average_score"`
}

// ListAll возвращает все результаты с данными работников, новые первыми
func (s *ResultService) ListAll() ([]repository.WorkerResult, error) {
	return s.resultRepo.ListWithWorkers()
}

// CalculateStatistics считает сводку по всем попыткам
func (s *ResultService) CalculateStatistics() (*ResultStatistics, error) {
	results, err := s.resultRepo.ListWithWorkers()
	if err != nil {
		return nil, err
	}

	stats := &ResultStatistics{
		TotalAttempts: len(results),
	}
	if len(results) == 0 {
		return stats, nil
	}

	scoreSum := 0
	for _, r := range results {
		if r.Passed {
			stats.PassedCount++
		}
		scoreSum += r.Score
	}
	stats.FailedCount = stats.TotalAttempts - stats.PassedCount
	stats.PassRate = float64(stats.PassedCount) / float64(stats.TotalAttempts) * 100
	stats.AverageScore = float64(scoreSum) / float64(stats.TotalAttempts)
	return stats, nil
}
