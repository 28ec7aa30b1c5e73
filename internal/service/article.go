package service

import (
	"Inkpot/internal/model"
	"Inkpot/internal/repo"
	"Inkpot/internal/textutil"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ArticleService инкапсулирует жизненный цикл статей блога.
type ArticleService struct {
	repo          repo.ArticleRepository
	summaryLength int
	now           func() time.Time
}

func NewArticleService(r repo.ArticleRepository, summaryLength int) *ArticleService {
	return &ArticleService{
		repo:          r,
		summaryLength: summaryLength,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// ArticleInput: поля формы статьи.
type ArticleInput struct {
	Category string
	Title    string
	Subtitle string
	Body     string
}

// CategoryBucket: статьи одной категории, порядок как в ListByBlog.
type CategoryBucket struct {
	Category string
	Articles []model.Article
}

// Summary derives body_plain from a rich-text body.
func (s *ArticleService) Summary(body string) string {
	return textutil.StripAndShorten(body, s.summaryLength)
}

// ListBuckets returns the blog's articles split into draft, published and deleted buckets,
// each ordered by date_modified descending. Articles with any other category are left out.
func (s *ArticleService) ListBuckets(ctx context.Context, blogID int64) ([]CategoryBucket, error) {
	articles, err := s.repo.ListByBlog(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("list articles of blog %d: %w", blogID, err)
	}

	buckets := make([]CategoryBucket, len(model.Categories))
	index := make(map[string]int, len(model.Categories))
	for i, c := range model.Categories {
		buckets[i] = CategoryBucket{Category: c, Articles: []model.Article{}}
		index[c] = i
	}
	for _, a := range articles {
		i, ok := index[a.Category]
		if !ok {
			continue
		}
		// body_plain пересчитываем на чтении: в старых строках он может быть пустым
		a.BodyPlain = s.Summary(a.Body)
		buckets[i].Articles = append(buckets[i].Articles, a)
	}
	return buckets, nil
}

func (s *ArticleService) Get(ctx context.Context, id int64) (*model.Article, error) {
	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article %d: %w", id, err)
	}
	return a, nil
}

func (s *ArticleService) Create(ctx context.Context, blogID int64, in ArticleInput) (*model.Article, error) {
	body := strings.TrimSpace(in.Body)
	a := &model.Article{
		BlogID:    blogID,
		Category:  in.Category,
		Title:     strings.TrimSpace(in.Title),
		Subtitle:  in.Subtitle,
		Body:      body,
		BodyPlain: s.Summary(body),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return a, nil
}

// Update перезаписывает изменяемые поля и date_modified; date_created не трогается.
func (s *ArticleService) Update(ctx context.Context, blogID, id int64, in ArticleInput) error {
	body := strings.TrimSpace(in.Body)
	ok, err := s.repo.Update(ctx, blogID, id, map[string]any{
		"category":      in.Category,
		"title":         strings.TrimSpace(in.Title),
		"subtitle":      in.Subtitle,
		"body":          body,
		"body_plain":    s.Summary(body),
		"date_modified": s.now(),
	})
	if err != nil {
		return fmt.Errorf("update article %d: %w", id, err)
	}
	if !ok {
		return ErrArticleNotFound
	}
	return nil
}

// ApplyAction moves an article to the category named by action, or removes the row
// for model.ActionDeletePermanently. ErrArticleNotFound when the blog has no such article.
func (s *ArticleService) ApplyAction(ctx context.Context, blogID, id int64, action string) error {
	var (
		ok  bool
		err error
	)
	if action == model.ActionDeletePermanently {
		ok, err = s.repo.Delete(ctx, blogID, id)
	} else {
		ok, err = s.repo.SetCategory(ctx, blogID, id, action)
	}
	if err != nil {
		return fmt.Errorf("apply %q to article %d: %w", action, id, err)
	}
	if !ok {
		return ErrArticleNotFound
	}
	return nil
}
