package repo

import (
	"Inkpot/internal/model"
	"context"

	"gorm.io/gorm"
)

// BlogRepository: доступ к блогам.
type BlogRepository interface {
	// GetByUserID возвращает блог пользователя вместе с его display_name.
	// gorm.ErrRecordNotFound, если блога нет.
	GetByUserID(ctx context.Context, userID int64) (*model.BlogInfo, error)
	Create(ctx context.Context, blog *model.Blog) error
	// UpdateSettings меняет название блога и имя автора в одной транзакции.
	UpdateSettings(ctx context.Context, userID int64, title, displayName string) error
}

type blogRepo struct {
	db *gorm.DB
}

// NewBlogRepository создаёт реализацию репозитория для Blog.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepo{db: db}
}

func (r *blogRepo) GetByUserID(ctx context.Context, userID int64) (*model.BlogInfo, error) {
	var info model.BlogInfo
	err := r.db.WithContext(ctx).
		Table("blogs").
		Select("blogs.id, blogs.title, blogs.user_id, users.display_name").
		Joins("JOIN users ON blogs.user_id = users.id").
		Where("users.id = ?", userID).
		Take(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *blogRepo) Create(ctx context.Context, blog *model.Blog) error {
	return r.db.WithContext(ctx).Create(blog).Error
}

func (r *blogRepo) UpdateSettings(ctx context.Context, userID int64, title, displayName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Blog{}).Where("user_id = ?", userID).Update("title", title)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&model.User{}).Where("id = ?", userID).Update("display_name", displayName).Error
	})
}
