package entity

import "time"

// AccessCode представляет одноразовый код доступа к обучению.
// Код выдаётся администратором под конкретного работника (табельный номер
// фиксируется при выдаче) и может быть погашен ровно один раз.
type AccessCode struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Code           string    `gorm:"size:64;not null;uniqueIndex" json:"code"`
	FullName       string    `gorm:"size:100;not null" json:"full_name"`
	EmployeeNumber string    `gorm:"size:50;not null" json:"employee_number"`
	JobTitle       string    `gorm:"size:100;not null" json:"job_title"`
	Used           bool      `gorm:"not null;default:false" json:"used"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (AccessCode) TableName() string {
	return "access_codes"
}

// MatchesEmployee проверяет, выдан ли код под указанный табельный номер
func (a *AccessCode) MatchesEmployee(employeeNumber string) bool {
	return a.EmployeeNumber == employeeNumber
}
