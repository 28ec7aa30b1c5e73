package handlers

import (
	"Inkpot/internal/config"
	"Inkpot/internal/model"
	"Inkpot/internal/validation"
	"Inkpot/internal/view"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Page: общие данные всех HTML-страниц.
type Page struct {
	PageName   string
	User       *model.User
	Form       map[string]string
	FormErrors validation.Errors
}

func newPage(name string, user *model.User) Page {
	return Page{PageName: name, User: user, Form: map[string]string{}}
}

// pages: рендеринг, ошибки и редиректы, общие для всех хендлеров.
type pages struct {
	Renderer *view.Renderer
	Logger   *zap.SugaredLogger
	Config   *config.Config
}

func (p pages) render(w http.ResponseWriter, status int, name string, data any) {
	if err := p.Renderer.Render(w, status, name, data); err != nil {
		p.errorPage(w, http.StatusInternalServerError, "V001", err)
	}
}

// errorPage показывает страницу ошибки с кодом места вызова и id инцидента для поиска в логах.
// Для 4xx текст ошибки показывается пользователю, для 5xx: только статус.
func (p pages) errorPage(w http.ResponseWriter, status int, code string, err error) {
	incident := uuid.NewString()
	if status >= http.StatusInternalServerError {
		p.Logger.Errorw("request failed", "code", code, "status", status, "incident", incident, "error", err)
	} else {
		p.Logger.Warnw("request rejected", "code", code, "status", status, "incident", incident, "error", err)
	}

	msg := http.StatusText(status)
	if status < http.StatusInternalServerError && err != nil {
		msg = err.Error()
	}
	p.Renderer.RenderError(w, view.ErrorData{
		Status:   status,
		Code:     code,
		Message:  msg,
		Incident: incident,
	})
}

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}
