// Package views renders the server-side HTML pages. Templates are
// embedded so the binary ships self-contained.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/vivekmishra161/AKC-autoparts-1/pkg/logger"
)

//go:embed templates/*.html templates/admin/*.html
var files embed.FS

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("₹%.2f", v) },
	"date":  func(t time.Time) string { return t.Format("02 Jan 2006") },
}

var pages = map[string]*template.Template{}

func init() {
	for _, name := range []string{
		"index", "product", "cart", "signin", "signup", "my_orders",
		"admin/login", "admin/dashboard", "admin/users", "admin/orders",
	} {
		pages[name] = template.Must(
			template.New("layout.html").Funcs(funcs).ParseFS(files,
				"templates/layout.html", "templates/"+name+".html"),
		)
	}
}

// Data is the common payload every page template receives.
type Data struct {
	Title string
	User  interface{}
	Error string
	Flash string
	Page  interface{}
}

// Render writes the named page. Render errors are logged and answered
// with a plain 500 since the response may be partially written.
func Render(w http.ResponseWriter, name string, data Data) {
	tpl, ok := pages[name]
	if !ok {
		logger.Error("views: unknown template", "name", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		logger.Error("views: render failed", "name", name, "error", err)
	}
}
