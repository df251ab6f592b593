package entity

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Admin представляет администратора панели управления
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Admin) TableName() string {
	return "admins"
}

// BeforeSave хеширует пароль перед сохранением, только если он не является bcrypt-хешем
func (a *Admin) BeforeSave(tx *gorm.DB) error {
	if len(a.Password) > 0 && !strings.HasPrefix(a.Password, "$2a$") &&
		!strings.HasPrefix(a.Password, "$2b$") && !strings.HasPrefix(a.Password, "$2y$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		a.Password = string(hashedPassword)
	}
	return nil
}

// CheckPassword сверяет пароль с сохранённым хешем
func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) == nil
}
