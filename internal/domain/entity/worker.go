package entity

import "time"

// Worker представляет зарегистрированного работника.
// Погашенный код доступа сохраняется в записи для аудита и при удалении
// кода администратором повторно не проверяется.
type Worker struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FullName       string    `gorm:"size:100;not null" json:"full_name"`
	EmployeeNumber string    `gorm:"size:50;not null;uniqueIndex" json:"employee_number"`
	AccessCode     string    `gorm:"size:64;not null" json:"access_code"`
	CanRetakeExam  bool      `gorm:"not null;default:false" json:"can_retake_exam"`
	RegisteredAt   time.Time `gorm:"autoCreateTime" json:"registered_at"`
}

// TableName определяет имя таблицы для GORM
func (Worker) TableName() string {
	return "workers"
}
