package handlers

import (
	"Inkpot/internal/config"
	"Inkpot/internal/middleware"
	"Inkpot/internal/model"
	"Inkpot/internal/service"
	"Inkpot/internal/validation"
	"Inkpot/internal/view"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

const msgPasswordTooLong = "Password must be at most 72 bytes"

// AccountHandler: регистрация, вход и выход.
type AccountHandler struct {
	pages
	Users *service.UserService
}

func NewAccountHandler(users *service.UserService, renderer *view.Renderer, logger *zap.SugaredLogger, cfg *config.Config) *AccountHandler {
	return &AccountHandler{
		pages: pages{Renderer: renderer, Logger: logger, Config: cfg},
		Users: users,
	}
}

func (h *AccountHandler) cookieOptions() middleware.CookieOptions {
	return middleware.CookieOptions{TTL: h.Config.SessionTTL, Secure: h.Config.EnableHTTPS}
}

func (h *AccountHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		redirect(w, r, "/author")
		return
	}
	h.render(w, http.StatusOK, view.PageLogin, newPage("Log in", nil))
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errorPage(w, http.StatusBadRequest, "U001", err)
		return
	}
	page := newPage("Log in", nil)
	page.Form["login"] = r.PostForm.Get("login")

	page.FormErrors = validation.Validate(r.PostForm,
		validation.NotEmpty("login", "Login must have at least 1 character"),
		validation.NotEmpty("password", "Password must have at least 1 character"),
	)
	if !page.FormErrors.Empty() {
		h.render(w, http.StatusOK, view.PageLogin, page)
		return
	}

	user, err := h.Users.Login(r.Context(), r.PostForm.Get("login"), r.PostForm.Get("password"))
	if errors.Is(err, service.ErrInvalidCredentials) {
		h.Logger.Warnw("login failed", "login", page.Form["login"])
		page.FormErrors = validation.Errors{{Field: "login", Message: "Invalid login or password"}}
		h.render(w, http.StatusUnauthorized, view.PageLogin, page)
		return
	}
	if err != nil {
		h.errorPage(w, http.StatusInternalServerError, "U002", err)
		return
	}

	h.startSession(w, r, user, "/author")
}

func (h *AccountHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		redirect(w, r, "/author")
		return
	}
	h.render(w, http.StatusOK, view.PageRegister, newPage("Register", nil))
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errorPage(w, http.StatusBadRequest, "U003", err)
		return
	}
	page := newPage("Register", nil)
	page.Form["login"] = r.PostForm.Get("login")
	page.Form["displayName"] = r.PostForm.Get("displayName")

	page.FormErrors = validation.Validate(r.PostForm,
		validation.NotEmpty("login", "Login must have at least 1 character"),
		validation.NotEmpty("password", "Password must have at least 1 character"),
		validation.MaxBytes("password", service.MaxPasswordBytes, msgPasswordTooLong),
		validation.NotEmpty("displayName", "Name must have at least 1 character"),
	)
	if !page.FormErrors.Empty() {
		h.render(w, http.StatusOK, view.PageRegister, page)
		return
	}

	user, err := h.Users.Register(r.Context(), r.PostForm.Get("login"), r.PostForm.Get("password"), r.PostForm.Get("displayName"))
	if errors.Is(err, service.ErrLoginTaken) {
		page.FormErrors = validation.Errors{{Field: "login", Message: "Login is already taken"}}
		h.render(w, http.StatusConflict, view.PageRegister, page)
		return
	}
	if errors.Is(err, service.ErrPasswordTooLong) {
		page.FormErrors = validation.Errors{{Field: "password", Message: msgPasswordTooLong}}
		h.render(w, http.StatusOK, view.PageRegister, page)
		return
	}
	if err != nil {
		h.errorPage(w, http.StatusInternalServerError, "U004", err)
		return
	}

	h.Logger.Infow("user registered", "user_id", user.ID, "login", user.Login)
	// новый автор сразу попадает на создание блога
	h.startSession(w, r, user, "/author/create-blog")
}

func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	redirect(w, r, "/login")
}

func (h *AccountHandler) startSession(w http.ResponseWriter, r *http.Request, user *model.User, next string) {
	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret, h.cookieOptions()); err != nil {
		h.errorPage(w, http.StatusInternalServerError, "U005", err)
		return
	}
	redirect(w, r, next)
}
