// Package web holds the HTML templates and the helpers they call.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"catalog/internal/i18n"
	"catalog/internal/models/response_models"
	"catalog/pkg/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// NewTemplate parses the embedded templates with helpers bound to resolver.
func NewTemplate(resolver *i18n.Resolver) (*template.Template, error) {
	tmpl, err := template.New("").Funcs(FuncMap(resolver)).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func FuncMap(resolver *i18n.Resolver) template.FuncMap {
	return template.FuncMap{
		"T": i18n.T,
		"url": func(lang, format string, args ...interface{}) string {
			return LangPath(lang, fmt.Sprintf(format, args...))
		},
		"languages": resolver.Languages,
		"switchURL": SwitchURL,
		"pageURL":   PageURL,
		"fieldError": func(lang string, errs utils.FieldErrors, field string) string {
			tag, ok := errs[field]
			if !ok {
				return ""
			}
			return i18n.T(lang, "validation."+tag)
		},
		"row": func(lang string, product response_models.Product) map[string]interface{} {
			return map[string]interface{}{"Lang": lang, "Product": product}
		},
		"uploadURL": func(name string) string {
			return "/uploads/" + url.PathEscape(name)
		},
	}
}

// LangPath prefixes an application path with its language segment.
func LangPath(lang, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "/" + lang + path
}

// SwitchURL is the current page in another language, query string included.
func SwitchURL(lang, path, rawQuery string) string {
	return withQuery(LangPath(lang, path), rawQuery)
}

// PageURL links to page n of a paginated listing, keeping the query string.
func PageURL(lang, base string, page int, rawQuery string) string {
	return withQuery(LangPath(lang, base+"/"+strconv.Itoa(page)), rawQuery)
}

func withQuery(u, rawQuery string) string {
	if rawQuery == "" {
		return u
	}
	return u + "?" + rawQuery
}
