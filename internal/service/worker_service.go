package service

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	"github.com/yourusername/safety-training-api/internal/domain/repository"
	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
)

// WorkerService предоставляет методы для регистрации и управления работниками
type WorkerService struct {
	workerRepo     repository.WorkerRepository
	accessCodeRepo repository.AccessCodeRepository
	db             *gorm.DB
}

// NewWorkerService создает новый сервис работников
func NewWorkerService(
	workerRepo repository.WorkerRepository,
	accessCodeRepo repository.AccessCodeRepository,
	db *gorm.DB,
) *WorkerService {
	return &WorkerService{
		workerRepo:     workerRepo,
		accessCodeRepo: accessCodeRepo,
		db:             db,
	}
}

// Register регистрирует работника по коду доступа. Гашение кода и вставка
// работника выполняются одной транзакцией: либо код погашен и работник
// создан, либо не произошло ничего. Уникальность employee_number
// обеспечивается ограничением БД, а не предварительной проверкой.
func (s *WorkerService) Register(code, fullName, employeeNumber string) (*entity.Worker, error) {
	code = strings.TrimSpace(code)
	fullName = strings.TrimSpace(fullName)
	employeeNumber = strings.TrimSpace(employeeNumber)

	if code == "" || fullName == "" || employeeNumber == "" {
		return nil, apperrors.ErrValidation
	}

	var worker *entity.Worker
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		worker, txErr = s.registerInTx(tx, code, fullName, employeeNumber)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[WorkerService] Зарегистрирован работник #%d (%s)", worker.ID, worker.EmployeeNumber)
	return worker, nil
}

// registerInTx гасит код и создает работника внутри транзакции
func (s *WorkerService) registerInTx(tx *gorm.DB, code, fullName, employeeNumber string) (*entity.Worker, error) {
	// Условный UPDATE: код гасится только если он не использован
	// и выписан на этот табельный номер
	accessCode, err := s.accessCodeRepo.Redeem(tx, code, employeeNumber)
	if err != nil {
		return nil, err
	}

	worker := &entity.Worker{
		FullName:       fullName,
		EmployeeNumber: employeeNumber,
		AccessCode:     accessCode.Code,
	}
	if err := s.workerRepo.Create(tx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

// GetWorker возвращает работника по ID
func (s *WorkerService) GetWorker(id uint) (*entity.Worker, error) {
	return s.workerRepo.GetByID(id)
}

// GetByEmployeeNumber возвращает работника по табельному номеру
func (s *WorkerService) GetByEmployeeNumber(employeeNumber string) (*entity.Worker, error) {
	return s.workerRepo.GetByEmployeeNumber(strings.TrimSpace(employeeNumber))
}

// AllowRetake выдает работнику разрешение на пересдачу экзамена.
// Разрешение одноразовое: его погасит следующая принятая попытка.
func (s *WorkerService) AllowRetake(workerID uint) error {
	if err := s.workerRepo.SetRetakeAllowed(workerID, true); err != nil {
		return err
	}
	log.Printf("[WorkerService] Работнику #%d разрешена пересдача экзамена", workerID)
	return nil
}

// DeleteWorker каскадно удаляет работника вместе с результатами
// экзаменов и прогрессом просмотра
func (s *WorkerService) DeleteWorker(workerID uint) error {
	if err := s.workerRepo.Delete(workerID); err != nil {
		return err
	}
	log.Printf("[WorkerService] Удален работник #%d со всеми связанными данными", workerID)
	return nil
}
