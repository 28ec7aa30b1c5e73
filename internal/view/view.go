// Package view renders the server-side HTML pages from embedded templates.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates
var templatesFS embed.FS

// Имена страниц (путь внутри templates/)
const (
	PageAuthorHome  = "author/home.html"
	PageCreateBlog  = "author/create-blog.html"
	PageSettings    = "author/settings.html"
	PageArticle     = "author/article.html"
	PageLogin       = "account/login.html"
	PageRegister    = "account/register.html"
	PageError       = "error.html"
	baseLayout      = "base.html"
	templatesPrefix = "templates/"
)

var pages = []string{
	PageAuthorHome, PageCreateBlog, PageSettings, PageArticle,
	PageLogin, PageRegister, PageError,
}

// Renderer executes a page inside the base layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page together with base.html once at startup.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		tmpl, err := template.New(baseLayout).ParseFS(templatesFS, templatesPrefix+baseLayout, templatesPrefix+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render пишет страницу целиком только после успешного выполнения шаблона,
// чтобы ошибка шаблона не оставила полуотданный ответ.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, baseLayout, data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// ErrorData: данные страницы ошибки.
type ErrorData struct {
	PageName string
	Status   int
	Code     string
	Message  string
	Incident string
}

// RenderError renders the error page, falling back to plain text if even that fails.
func (r *Renderer) RenderError(w http.ResponseWriter, data ErrorData) {
	if data.PageName == "" {
		data.PageName = "Error"
	}
	if err := r.Render(w, data.Status, PageError, data); err != nil {
		http.Error(w, fmt.Sprintf("Error %s: %s", data.Code, data.Message), data.Status)
	}
}
