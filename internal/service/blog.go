package service

import (
	"Inkpot/internal/model"
	"Inkpot/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// BlogService: создание блога и его настройки. Один блог на пользователя.
type BlogService struct {
	repo repo.BlogRepository
}

func NewBlogService(r repo.BlogRepository) *BlogService {
	return &BlogService{repo: r}
}

// GetByUser returns ErrBlogNotFound when the user has no blog yet.
func (s *BlogService) GetByUser(ctx context.Context, userID int64) (*model.BlogInfo, error) {
	info, err := s.repo.GetByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blog of user %d: %w", userID, err)
	}
	return info, nil
}

// Create создаёт блог. ErrBlogExists, если блог уже есть (в том числе при гонке двух запросов).
func (s *BlogService) Create(ctx context.Context, userID int64, title string) (*model.Blog, error) {
	blog := &model.Blog{Title: strings.TrimSpace(title), UserID: userID}
	err := s.repo.Create(ctx, blog)
	if err == nil {
		return blog, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrBlogExists
	}
	// не все драйверы переводят нарушение уникальности в ErrDuplicatedKey
	if _, getErr := s.repo.GetByUserID(ctx, userID); getErr == nil {
		return nil, ErrBlogExists
	}
	return nil, fmt.Errorf("create blog: %w", err)
}

// UpdateSettings меняет название блога и display name автора атомарно.
func (s *BlogService) UpdateSettings(ctx context.Context, userID int64, title, displayName string) error {
	err := s.repo.UpdateSettings(ctx, userID, strings.TrimSpace(title), strings.TrimSpace(displayName))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBlogNotFound
	}
	if err != nil {
		return fmt.Errorf("update settings of user %d: %w", userID, err)
	}
	return nil
}
