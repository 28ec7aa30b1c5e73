package handlers

import (
	"Inkpot/internal/config"
	"Inkpot/internal/model"
	"Inkpot/internal/service"
	"Inkpot/internal/textutil"
	"Inkpot/internal/validation"
	"Inkpot/internal/view"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Подписи на странице автора, в порядке model.Categories.
var (
	categoryLabels = []string{"Draft", "Published", "Deleted"}
	tableHeaders   = []string{"Title", "Subtitle", "Views", "Likes", "Date created", "Date modified", "Actions"}
)

// Тексты ошибок валидации форм
const (
	msgTitleEmpty = "Title must have at least 1 character"
	msgBodyEmpty  = "Body must have at least 1 character"
	msgNameEmpty  = "Name must have at least 1 character"
)

// AuthorHandler обслуживает /author: список статей, блог, настройки и редактор статей.
type AuthorHandler struct {
	pages
	Users    *service.UserService
	Blogs    *service.BlogService
	Articles *service.ArticleService

	now func() time.Time
}

func NewAuthorHandler(
	users *service.UserService,
	blogs *service.BlogService,
	articles *service.ArticleService,
	renderer *view.Renderer,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *AuthorHandler {
	return &AuthorHandler{
		pages:    pages{Renderer: renderer, Logger: logger, Config: cfg},
		Users:    users,
		Blogs:    blogs,
		Articles: articles,
		now:      time.Now,
	}
}

// Routes монтируется на /author.
func (h *AuthorHandler) Routes(r chi.Router) {
	r.Get("/", guarded(h.Home, h.UserLoggedIn, h.UserHasABlog))
	r.Post("/", guarded(h.BulkAction, h.UserLoggedIn, h.UserHasABlog))

	r.Get("/create-blog", guarded(h.CreateBlogForm, h.UserLoggedIn, h.UserHasNoBlog))
	r.Post("/create-blog", guarded(h.CreateBlog, h.UserLoggedIn, h.UserHasNoBlog))

	r.Get("/settings", guarded(h.SettingsForm, h.UserLoggedIn, h.UserHasABlog))
	r.Post("/settings", guarded(h.Settings, h.UserLoggedIn, h.UserHasABlog))

	r.Get("/article", guarded(h.NewArticleForm, h.UserLoggedIn, h.UserHasABlog))
	r.Post("/article", guarded(h.CreateArticle, h.UserLoggedIn, h.UserHasABlog))
	r.Get("/article/{chosenId}", guarded(h.EditArticleForm, h.UserLoggedIn, h.UserHasABlog, h.ArticleBelongsToBlog))
	r.Post("/article/{chosenId}", guarded(h.EditArticle, h.UserLoggedIn, h.UserHasABlog, h.ArticleBelongsToBlog))

	// всё остальное под /author: на главную автора
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		redirect(w, r, "/author")
	})
}

// articleRow: строка таблицы на главной автора.
type articleRow struct {
	ID          int64
	Title       string
	Subtitle    string
	BodyPlain   string
	Views       int64
	Likes       int64
	Created     template.HTML
	Modified    template.HTML
	ModifiedAgo string
}

type bucketView struct {
	Category string
	Rows     []articleRow
}

type homePage struct {
	Page
	Blog              *model.BlogInfo
	ArticleCategories []string
	TableHeaders      []string
	Buckets           []bucketView
}

// Home lists the blog's articles in draft, published and deleted buckets.
func (h *AuthorHandler) Home(w http.ResponseWriter, r *http.Request, ac *AuthorContext) {
	buckets, err := h.Articles.ListBuckets(r.Context(), ac.Blog.ID)
	if err != nil {
		h.errorPage(w, http.StatusInternalServerError, "A001", err)
		return
	}

	loc := h.Config.Location()
	now := h.now()
	page := homePage{
		Page:              newPage("Home (author)", ac.User),
		Blog:              ac.Blog,
		ArticleCategories: categoryLabels,
		TableHeaders:      tableHeaders,
		Buckets:           make([]bucketView, 0, len(buckets)),
	}
	for _, b := range buckets {
		bv := bucketView{Category: b.Category, Rows: make([]articleRow, 0, len(b.Articles))}
		for _, a := range b.Articles {
			bv.Rows = append(bv.Rows, articleRow{
				ID:          a.ID,
				Title:       a.Title,
				Subtitle:    a.Subtitle,
				BodyPlain:   a.BodyPlain,
				Views:       a.Views,
				Likes:       a.Likes,
				Created:     textutil.LineBreak(textutil.LocalDatetime(a.DateCreated, loc)),
				Modified:    textutil.LineBreak(textutil.LocalDatetime(a.DateModified, loc)),
				ModifiedAgo: textutil.RelativeTime(a.DateModified, now),
			})
		}
		page.Buckets = append(page.Buckets, bv)
	}
	h.render(w, http.StatusOK, view.PageAuthorHome, page)
}

// BulkAction меняет категорию статьи или удаляет её совсем (delete-permanently).
func (h *AuthorHandler) BulkAction(w http.ResponseWriter, r *http.Request, ac *AuthorContext) {
	if err := r.ParseForm(); err != nil {
		h.errorPage(w, http.StatusBadRequest, "A002", err)
		return
	}
	id, err := strconv.ParseInt(r.PostForm.Get("chosenId"), 10, 64)
	if err != nil {
		h.errorPage(w, http.StatusBadRequest, "A002", fmt.Errorf("invalid article id %q", r.PostForm.Get("chosenId")))
		return
	}
	action := r.PostForm.Get("thisReturnsItsValue")
	if action == "" {
		h.errorPage(w, http.StatusBadRequest, "A002", errors.New("no action chosen"))
		return
	}

	err = h.Articles.ApplyAction(r.Context(), ac.Blog.ID, id, action)
	if errors.Is(err, service.ErrArticleNotFound) {
		// чужая или уже удалённая статья: ничего не меняем
		h.Logger.Warnw("bulk action on article outside blog", "article_id", id, "blog_id", ac.Blog.ID, "action", action)
		redirect(w, r, "/author")
		return
	}
	if err != nil {
		h.errorPage(w, http.StatusInternalServerError, "A002", err)
		return
	}
	redirect(w, r, "/author")
}

func (h *AuthorHandler) CreateBlogForm(w http.ResponseWriter, r *http.Request, ac *AuthorContext) {
	h.render(w, http.StatusOK, view.PageCreateBlog, newPage("Create blog", ac.User))
}

func (h *AuthorHandler) CreateBlog(w http.ResponseWriter, r *http.Request, ac *AuthorContext) {
	if err := r.ParseForm(); err != nil {
		h.errorPage(w, http.StatusBadRequest, "A003", err)
		return
	}
	page := newPage("Create blog", ac.User)
	page.Form["createBlogTitle"] = r.PostForm.Get("createBlogTitle")
	page.FormErrors = validation.Validate(r.PostForm, validation.NotEmpty("createBlogTitle", msgTitleEmpty))
	if !page.FormErrors.Empty() {
		h.render(w, http.StatusOK, view.PageCreateBlog, page)
		return
	}

	_, err := h.Blogs.Create(r.Context(), ac.User.ID, r.PostForm.Get("createBlogTitle"))
	if errors.Is(err, service.ErrBlogExists) {
		h.Logger.Warnw("blog already exists", "code", "A003", "user_id", ac.User.ID)
		redirect(w, r, "/author")
		return
	}
	if err != nil {
		h.errorPage(w, http.StatusInternalServerError, "A004", err)
		return
	}
	redirect(w, r, "/author")
}

func (h *AuthorHandler) SettingsForm(w http.ResponseWriter, r *http.Request, ac *AuthorContext) {
	page := newPage("Settings", ac.User)
	page.Form["blogTitle"] = ac.Blog.Title
	page.Form["displayName"] = ac.Blog.DisplayName
	h.render(w, http.StatusOK, view.PageSettings, page)
}

// Settings обновляет название блога и имя автора одной транзакцией.
func (h *AuthorHandler) Settings(w http.ResponseWriter, r *http.Request, ac *AuthorContext) {
	if err := r.ParseForm(); err != nil {
		h.errorPage(w, http.StatusBadRequest, "A005", err)
		return
	}
	page := newPage("Settings", ac.User)
	page.Form["blogTitle"] = r.PostForm.Get("blogTitle")
	page.Form["displayName"] = r.PostForm.Get("displayName")
	page.FormErrors = validation.Validate(r.PostForm,
		validation.NotEmpty("blogTitle", msgTitleEmpty),
		validation.NotEmpty("displayName", msgNameEmpty),
	)
	if !page.FormErrors.Empty() {
		h.render(w, http.StatusOK, view.PageSettings, page)
		return
	}

	err := h.Blogs.UpdateSettings(r.Context(), ac.User.ID, r.PostForm.Get("blogTitle"), r.PostForm.Get("displayName"))
	if errors.Is(err, service.ErrBlogNotFound) {
		h.errorPage(w, http.StatusBadRequest, "A006", err)
		return
	}
	if err != nil {
		h.errorPage(w, http.StatusInternalServerError, "A005", err)
		return
	}
	redirect(w, r, "/author")
}

func (h *AuthorHandler) NewArticleForm(w http.ResponseWriter, r *http.Request, ac *AuthorContext) {
	h.render(w, http.StatusOK, view.PageArticle, newPage("Create new article", ac.User))
}

func articleRules() []validation.Rule {
	return []validation.Rule{
		validation.NotEmpty("articleTitle", msgTitleEmpty),
		validation.NotEmpty("articleBody", msgBodyEmpty),
	}
}

func articleInput(r *http.Request, fallbackCategory string) service.ArticleInput {
	category := r.PostForm.Get("thisReturnsItsValue")
	if category == "" {
		category = fallbackCategory
	}
	return service.ArticleInput{
		Category: category,
		Title:    r.PostForm.Get("articleTitle"),
		Subtitle: r.PostForm.Get("articleSubtitle"),
		Body:     r.PostForm.Get("articleBody"),
	}
}

func echoArticleForm(page *Page, r *http.Request) {
	for _, f := range []string{"articleTitle", "articleSubtitle", "articleBody"} {
		page.Form[f] = r.PostForm.Get(f)
	}
}

func (h *AuthorHandler) CreateArticle(w http.ResponseWriter, r *http.Request, ac *AuthorContext) {
	if err := r.ParseForm(); err != nil {
		h.errorPage(w, http.StatusBadRequest, "A007", err)
		return
	}
	page := newPage("Create new article", ac.User)
	echoArticleForm(&page, r)
	page.FormErrors = validation.Validate(r.PostForm, articleRules()...)
	if !page.FormErrors.Empty() {
		h.render(w, http.StatusOK, view.PageArticle, page)
		return
	}

	// блог перечитываем: мог исчезнуть между guard'ом и вставкой
	blog, err := h.Blogs.GetByUser(r.Context(), ac.User.ID)
	if errors.Is(err, service.ErrBlogNotFound) {
		h.errorPage(w, http.StatusBadRequest, "A008", err)
		return
	}
	if err != nil {
		h.errorPage(w, http.StatusInternalServerError, "A007", err)
		return
	}

	if _, err := h.Articles.Create(r.Context(), blog.ID, articleInput(r, model.CategoryDraft)); err != nil {
		h.errorPage(w, http.StatusInternalServerError, "A009", err)
		return
	}
	redirect(w, r, "/author")
}

func editPageName(category string) string {
	return fmt.Sprintf("Edit %s article", category)
}

func (h *AuthorHandler) EditArticleForm(w http.ResponseWriter, r *http.Request, ac *AuthorContext) {
	article, err := h.Articles.Get(r.Context(), ac.Article.ID)
	if errors.Is(err, service.ErrArticleNotFound) {
		h.errorPage(w, http.StatusNotFound, "A010", err)
		return
	}
	if err != nil {
		h.errorPage(w, http.StatusInternalServerError, "A010", err)
		return
	}

	page := newPage(editPageName(article.Category), ac.User)
	page.Form["chosenId"] = strconv.FormatInt(article.ID, 10)
	page.Form["articleTitle"] = article.Title
	page.Form["articleSubtitle"] = article.Subtitle
	page.Form["articleBody"] = article.Body
	h.render(w, http.StatusOK, view.PageArticle, page)
}

func (h *AuthorHandler) EditArticle(w http.ResponseWriter, r *http.Request, ac *AuthorContext) {
	if err := r.ParseForm(); err != nil {
		h.errorPage(w, http.StatusBadRequest, "A011", err)
		return
	}
	chosenID := strconv.FormatInt(ac.Article.ID, 10)

	if errs := validation.Validate(r.PostForm, articleRules()...); !errs.Empty() {
		// категория нужна для заголовка страницы
		article, err := h.Articles.Get(r.Context(), ac.Article.ID)
		if errors.Is(err, service.ErrArticleNotFound) {
			h.errorPage(w, http.StatusNotFound, "A011", err)
			return
		}
		if err != nil {
			h.errorPage(w, http.StatusInternalServerError, "A011", err)
			return
		}
		page := newPage(editPageName(article.Category), ac.User)
		page.Form["chosenId"] = chosenID
		echoArticleForm(&page, r)
		page.FormErrors = errs
		h.render(w, http.StatusOK, view.PageArticle, page)
		return
	}

	blog, err := h.Blogs.GetByUser(r.Context(), ac.User.ID)
	if errors.Is(err, service.ErrBlogNotFound) {
		h.errorPage(w, http.StatusBadRequest, "A013", err)
		return
	}
	if err != nil {
		h.errorPage(w, http.StatusInternalServerError, "A012", err)
		return
	}

	err = h.Articles.Update(r.Context(), blog.ID, ac.Article.ID, articleInput(r, ac.Article.Category))
	if errors.Is(err, service.ErrArticleNotFound) {
		h.errorPage(w, http.StatusNotFound, "A014", err)
		return
	}
	if err != nil {
		h.errorPage(w, http.StatusInternalServerError, "A014", err)
		return
	}
	redirect(w, r, "/author")
}
