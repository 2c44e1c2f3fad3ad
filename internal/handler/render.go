package handler

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var templateFuncs = template.FuncMap{
	// displayName turns an upstream slug like "mr-mime" into "Mr Mime".
	// A cases.Caser carries transform state, so one is built per call.
	"displayName": func(s string) string {
		return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
	},
	// asJSON marshals a value for direct use inside a <script> block.
	"asJSON": func(v any) (template.JS, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(b), nil
	},
}

// Each page is parsed together with the base layout only, so the pages can
// reuse block names without colliding.
var (
	indexTemplate  = parsePage("index.html")
	detailTemplate = parsePage("pokemon.html")
	errorTemplate  = parsePage("error.html")
)

func parsePage(page string) *template.Template {
	return template.Must(template.New("base.html").
		Funcs(templateFuncs).
		ParseFS(templatesFS, "templates/base.html", "templates/"+page))
}

// renderPage executes tmpl into a buffer first, so a template fault can
// still become a clean error response instead of a half-written page.
func renderPage(w http.ResponseWriter, logger *log.Logger, code int, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		logger.Printf("ERROR: template render failed: %v", err)
		renderError(w, logger, http.StatusInternalServerError, "Something went wrong rendering this page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	buf.WriteTo(w)
}

type errorPageData struct {
	Title   string
	Code    int
	Message string
}

func renderError(w http.ResponseWriter, logger *log.Logger, code int, message string) {
	data := errorPageData{
		Title:   http.StatusText(code),
		Code:    code,
		Message: message,
	}

	var buf bytes.Buffer
	if err := errorTemplate.ExecuteTemplate(&buf, "base.html", data); err != nil {
		logger.Printf("ERROR: error page render failed: %v", err)
		http.Error(w, message, code)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	buf.WriteTo(w)
}

// respondWithError sends an error response in the standard JSON envelope,
// e.g. {"error": "what went wrong"}.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON marshals payload, sets headers and writes the response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	dat, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal JSON response: %v", payload)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(dat)
}
