// Package i18n resolves the request language from the URL and translates
// user-facing strings.
package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no default is configured.
const DefaultLanguage = "en"

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Code  string
	Label string
}

// Resolver maps a path language tag onto the allow-list.
type Resolver struct {
	allowed  map[string]string
	fallback string
	options  []LanguageOption
}

func NewResolver(allowed map[string]string, fallback string) *Resolver {
	if fallback == "" {
		fallback = DefaultLanguage
	}
	r := &Resolver{allowed: make(map[string]string, len(allowed)), fallback: fallback}
	for code, label := range allowed {
		r.allowed[code] = label
		r.options = append(r.options, LanguageOption{Code: code, Label: label})
	}
	sort.Slice(r.options, func(i, j int) bool { return r.options[i].Code < r.options[j].Code })
	return r
}

// Resolve returns tag when it is an allowed language and the default otherwise.
// Matching is exact on the allow-list keys.
func (r *Resolver) Resolve(tag string) string {
	if _, ok := r.allowed[tag]; ok && tag != "" {
		return tag
	}
	return r.fallback
}

func (r *Resolver) Default() string {
	return r.fallback
}

func (r *Resolver) Allowed(tag string) bool {
	_, ok := r.allowed[tag]
	return ok
}

func (r *Resolver) Languages() []LanguageOption {
	out := make([]LanguageOption, len(r.options))
	copy(out, r.options)
	return out
}

// Match picks the best allowed language for an Accept-Language header.
func (r *Resolver) Match(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" || len(r.options) == 0 {
		return r.fallback
	}
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return r.fallback
	}
	supported := make([]language.Tag, 0, len(r.options)+1)
	supported = append(supported, language.Make(r.fallback))
	for _, opt := range r.options {
		supported = append(supported, language.Make(opt.Code))
	}
	_, idx, conf := language.NewMatcher(supported).Match(desired...)
	if conf == language.No || idx == 0 {
		return r.fallback
	}
	return r.options[idx-1].Code
}
