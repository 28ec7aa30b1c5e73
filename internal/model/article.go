package model

import "time"

// Категории статьи. Хранится строкой и не ограничивается этим списком.
const (
	CategoryDraft     = "draft"
	CategoryPublished = "published"
	CategoryDeleted   = "deleted"
)

// ActionDeletePermanently: значение bulk-действия, удаляющее строку целиком.
const ActionDeletePermanently = "delete-permanently"

// Categories lists the workflow buckets in display order.
var Categories = []string{CategoryDraft, CategoryPublished, CategoryDeleted}

type Article struct {
	ID     int64 `gorm:"primaryKey"`
	BlogID int64 `gorm:"not null;index"` // ссылка на blogs.id
	Blog   *Blog `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Title     string `gorm:"not null"`
	Subtitle  string
	Body      string `gorm:"type:text;not null"`
	BodyPlain string `gorm:"type:text"`
	Category  string `gorm:"not null;default:draft;index"`

	// счётчики ведёт публичная часть сайта
	Views int64 `gorm:"not null;default:0"`
	Likes int64 `gorm:"not null;default:0"`

	DateCreated  time.Time `gorm:"column:date_created;autoCreateTime"`
	DateModified time.Time `gorm:"column:date_modified;autoUpdateTime;index"`
}
