package model

// Blog принадлежит ровно одному пользователю (уникальный индекс по user_id).
type Blog struct {
	ID     int64  `gorm:"primaryKey"`
	Title  string `gorm:"not null"`
	UserID int64  `gorm:"not null;uniqueIndex"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// BlogInfo: блог вместе с отображаемым именем владельца.
type BlogInfo struct {
	ID          int64
	Title       string
	UserID      int64
	DisplayName string
}
