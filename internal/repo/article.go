package repo

import (
	"Inkpot/internal/model"
	"context"

	"gorm.io/gorm"
)

// ArticleRepository: доступ к статьям. Все изменения ограничены blog_id владельца.
type ArticleRepository interface {
	// ListByBlog returns the blog's articles, most recently modified first.
	ListByBlog(ctx context.Context, blogID int64) ([]model.Article, error)
	GetByID(ctx context.Context, id int64) (*model.Article, error)
	Create(ctx context.Context, article *model.Article) error
	// Update применяет updates к статье блога; false, если такой статьи в блоге нет.
	Update(ctx context.Context, blogID, id int64, updates map[string]any) (bool, error)
	// SetCategory меняет только category, date_modified не трогает.
	SetCategory(ctx context.Context, blogID, id int64, category string) (bool, error)
	Delete(ctx context.Context, blogID, id int64) (bool, error)
}

type articleRepo struct {
	db *gorm.DB
}

// NewArticleRepository создаёт реализацию репозитория для Article.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepo{db: db}
}

func (r *articleRepo) ListByBlog(ctx context.Context, blogID int64) ([]model.Article, error) {
	var articles []model.Article
	err := r.db.WithContext(ctx).
		Where("blog_id = ?", blogID).
		Order("date_modified DESC").
		Order("id DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepo) GetByID(ctx context.Context, id int64) (*model.Article, error) {
	var a model.Article
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepo) Update(ctx context.Context, blogID, id int64, updates map[string]any) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Article{}).
		Where("id = ? AND blog_id = ?", id, blogID).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *articleRepo) SetCategory(ctx context.Context, blogID, id int64, category string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Article{}).
		Where("id = ? AND blog_id = ?", id, blogID).
		UpdateColumn("category", category)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *articleRepo) Delete(ctx context.Context, blogID, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND blog_id = ?", id, blogID).
		Delete(&model.Article{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
