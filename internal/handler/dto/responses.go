package dto

import (
	"time"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
)

// VerifyCodeResponse данные кода доступа для предзаполнения формы регистрации
type VerifyCodeResponse struct {
	Success        bool   `json:"success"`
	FullName       string `json:"full_name"`
	EmployeeNumber string `json:"employee_number"`
	JobTitle       string `json:"job_title,omitempty"`
}

// NewVerifyCodeResponse строит ответ проверки кода
func NewVerifyCodeResponse(code *entity.AccessCode) *VerifyCodeResponse {
	return &VerifyCodeResponse{
		Success:        true,
		FullName:       code.FullName,
		EmployeeNumber: code.EmployeeNumber,
		JobTitle:       code.JobTitle,
	}
}

// RegisterResponse подтверждение регистрации работника
type RegisterResponse struct {
	Success  bool `json:"success"`
	WorkerID uint `json:"worker_id"`
}

// NewRegisterResponse строит ответ успешной регистрации
func NewRegisterResponse(worker *entity.Worker) *RegisterResponse {
	return &RegisterResponse{
		Success:  true,
		WorkerID: worker.ID,
	}
}

// WorkerResponse публичные данные работника
type WorkerResponse struct {
	Success        bool      `json:"success"`
	ID             uint      `json:"id"`
	FullName       string    `json:"full_name"`
	EmployeeNumber string    `json:"employee_number"`
	AccessCode     string    `json:"access_code"`
	CanRetakeExam  bool      `json:"can_retake_exam"`
	RegisteredAt   time.Time `json:"registered_at"`
}

// NewWorkerResponse строит ответ с данными работника
func NewWorkerResponse(worker *entity.Worker) *WorkerResponse {
	return &WorkerResponse{
		Success:        true,
		ID:             worker.ID,
		FullName:       worker.FullName,
		EmployeeNumber: worker.EmployeeNumber,
		AccessCode:     worker.AccessCode,
		CanRetakeExam:  worker.CanRetakeExam,
		RegisteredAt:   worker.RegisteredAt,
	}
}

// ExamResultResponse итог попытки сдачи экзамена
type ExamResultResponse struct {
	Success    bool    `json:"success"`
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Passed     bool    `json:"passed"`
}

// NewExamResultResponse строит ответ с итогом экзамена
func NewExamResultResponse(result *entity.ExamResult) *ExamResultResponse {
	return &ExamResultResponse{
		Success:    true,
		Score:      result.Score,
		Total:      entity.ExamQuestionCount,
		Percentage: result.Percentage,
		Passed:     result.Passed,
	}
}

// LoginResponse токен и данные администратора
type LoginResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	Username string `json:"username"`
}
