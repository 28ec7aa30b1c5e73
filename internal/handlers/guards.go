package handlers

import (
	"Inkpot/internal/middleware"
	"Inkpot/internal/model"
	"Inkpot/internal/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// AuthorContext собирается guard'ами по ходу цепочки и передаётся хендлеру явно.
// Живёт ровно один запрос.
type AuthorContext struct {
	User    *model.User
	Blog    *model.BlogInfo
	Article *model.Article
}

// Guard either fills ac and returns true, or writes a redirect/error response and returns false.
type Guard func(w http.ResponseWriter, r *http.Request, ac *AuthorContext) bool

// AuthorHandlerFunc: хендлер, получающий заполненный AuthorContext.
type AuthorHandlerFunc func(w http.ResponseWriter, r *http.Request, ac *AuthorContext)

// guarded runs guards in order; the first failing guard ends the request.
func guarded(next AuthorHandlerFunc, guards ...Guard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ac := &AuthorContext{}
		for _, g := range guards {
			if !g(w, r, ac) {
				return
			}
		}
		next(w, r, ac)
	}
}

// UserLoggedIn требует валидную сессию и существующего пользователя.
func (h *AuthorHandler) UserLoggedIn(w http.ResponseWriter, r *http.Request, ac *AuthorContext) bool {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		redirect(w, r, "/login")
		return false
	}
	user, err := h.Users.GetByID(r.Context(), userID)
	if errors.Is(err, service.ErrUserNotFound) {
		// токен пережил пользователя
		middleware.ClearLoginCookie(w)
		redirect(w, r, "/login")
		return false
	}
	if err != nil {
		h.errorPage(w, http.StatusInternalServerError, "G001", err)
		return false
	}
	ac.User = user
	return true
}

// UserHasABlog прикрепляет блог пользователя; без блога: на создание блога.
func (h *AuthorHandler) UserHasABlog(w http.ResponseWriter, r *http.Request, ac *AuthorContext) bool {
	blog, err := h.Blogs.GetByUser(r.Context(), ac.User.ID)
	if errors.Is(err, service.ErrBlogNotFound) {
		redirect(w, r, "/author/create-blog")
		return false
	}
	if err != nil {
		h.errorPage(w, http.StatusInternalServerError, "G002", err)
		return false
	}
	ac.Blog = blog
	return true
}

// UserHasNoBlog пропускает только пользователей без блога.
func (h *AuthorHandler) UserHasNoBlog(w http.ResponseWriter, r *http.Request, ac *AuthorContext) bool {
	blog, err := h.Blogs.GetByUser(r.Context(), ac.User.ID)
	if errors.Is(err, service.ErrBlogNotFound) {
		return true
	}
	if err != nil {
		h.errorPage(w, http.StatusInternalServerError, "G002", err)
		return false
	}
	ac.Blog = blog
	redirect(w, r, "/author")
	return false
}

// ArticleBelongsToBlog проверяет, что {chosenId}: статья блога текущего пользователя.
func (h *AuthorHandler) ArticleBelongsToBlog(w http.ResponseWriter, r *http.Request, ac *AuthorContext) bool {
	id, err := strconv.ParseInt(chi.URLParam(r, "chosenId"), 10, 64)
	if err != nil {
		h.errorPage(w, http.StatusNotFound, "G004", service.ErrArticleNotFound)
		return false
	}
	article, err := h.Articles.Get(r.Context(), id)
	if errors.Is(err, service.ErrArticleNotFound) {
		h.errorPage(w, http.StatusNotFound, "G004", err)
		return false
	}
	if err != nil {
		h.errorPage(w, http.StatusInternalServerError, "G003", err)
		return false
	}
	if article.BlogID != ac.Blog.ID {
		h.errorPage(w, http.StatusForbidden, "G005", errors.New("article does not belong to your blog"))
		return false
	}
	ac.Article = article
	return true
}
