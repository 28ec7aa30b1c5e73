package model

import "time"

// User: автор. Создаётся регистрацией или через blogctl.
type User struct {
	ID          int64  `gorm:"primaryKey"`
	Login       string `gorm:"uniqueIndex;not null"`
	Password    string `gorm:"not null"` // bcrypt hash
	DisplayName string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
