package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/yourusername/safety-training-api/internal/domain/entity"
	apperrors "github.com/yourusername/safety-training-api/internal/pkg/errors"
)

// Код ошибки PostgreSQL "unique_violation"
const pgUniqueViolation = "23505"

// isUniqueViolation проверяет нарушение уникального ограничения
// для pgconn и lib/pq драйверов
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}

// AccessCodeRepo реализует repository.AccessCodeRepository
type AccessCodeRepo struct {
	db *gorm.DB
}

// NewAccessCodeRepo создает новый репозиторий кодов доступа
func NewAccessCodeRepo(db *gorm.DB) *AccessCodeRepo {
	return &AccessCodeRepo{db: db}
}

// Create создает новый код доступа.
// Дубликат значения кода превращается в ErrConflict.
func (r *AccessCodeRepo) Create(code *entity.AccessCode) error {
	if err := r.db.Create(code).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return err
	}
	return nil
}

// GetByID возвращает код доступа по ID
func (r *AccessCodeRepo) GetByID(id uint) (*entity.AccessCode, error) {
	var code entity.AccessCode
	err := r.db.First(&code, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &code, nil
}

// GetUnusedByCode возвращает код доступа только если он ещё не погашен
func (r *AccessCodeRepo) GetUnusedByCode(code string) (*entity.AccessCode, error) {
	var accessCode entity.AccessCode
	err := r.db.Where("code = ? AND used = ?", code, false).First(&accessCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &accessCode, nil
}

// List возвращает все коды доступа, новые первыми
func (r *AccessCodeRepo) List() ([]entity.AccessCode, error) {
	var codes []entity.AccessCode
	err := r.db.Order("created_at DESC").Find(&codes).Error
	return codes, err
}

// Delete удаляет код доступа.
// Каскада на уже зарегистрированных работников нет: погашенный код
// сохранён в записи работника и повторно не проверяется.
func (r *AccessCodeRepo) Delete(id uint) error {
	return r.db.Delete(&entity.AccessCode{}, id).Error
}

// Redeem атомарно гасит код доступа одним условным UPDATE.
// RowsAffected == 0 означает, что кода нет, он выдан под другой табельный
// номер или уже погашен — различать эти случаи наружу не нужно.
// Схема check-and-set закрывает гонку двух конкурентных регистраций,
// которые при раздельных чтении и записи обе увидели бы used=false.
func (r *AccessCodeRepo) Redeem(tx *gorm.DB, code, employeeNumber string) (*entity.AccessCode, error) {
	if tx == nil {
		tx = r.db
	}

	result := tx.Model(&entity.AccessCode{}).
		Where("code = ? AND employee_number = ? AND used = ?", code, employeeNumber, false).
		Update("used", true)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}

	var redeemed entity.AccessCode
	if err := tx.Where("code = ?", code).First(&redeemed).Error; err != nil {
		return nil, err
	}
	return &redeemed, nil
}
