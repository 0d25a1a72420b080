package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestResolver() *Resolver {
	return NewResolver(map[string]string{"en": "English", "fr": "Français"}, "en")
}

func TestResolver_Resolve(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name string
		tag  string
		want string
	}{
		{name: "allowed tag", tag: "fr", want: "fr"},
		{name: "default tag", tag: "en", want: "en"},
		{name: "absent tag", tag: "", want: "en"},
		{name: "unknown tag", tag: "de", want: "en"},
		{name: "case differs", tag: "FR", want: "en"},
		{name: "region variant", tag: "fr-CA", want: "en"},
		{name: "garbage", tag: "../etc", want: "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.tag))
		})
	}
}

func TestResolver_EmptyFallbackUsesEnglish(t *testing.T) {
	r := NewResolver(map[string]string{"fr": "Français"}, "")
	assert.Equal(t, DefaultLanguage, r.Default())
	assert.Equal(t, "en", r.Resolve("de"))
}

func TestResolver_Languages(t *testing.T) {
	langs := newTestResolver().Languages()
	assert.Equal(t, []LanguageOption{{Code: "en", Label: "English"}, {Code: "fr", Label: "Français"}}, langs)
}

func TestResolver_Match(t *testing.T) {
	r := newTestResolver()

	assert.Equal(t, "fr", r.Match("fr-FR,fr;q=0.9,en;q=0.5"))
	assert.Equal(t, "en", r.Match("en-US"))
	assert.Equal(t, "en", r.Match(""))
	assert.Equal(t, "en", r.Match("ja"))
}

func TestT(t *testing.T) {
	assert.Equal(t, "Produits", T("fr", "Products"))
	assert.Equal(t, "Products", T("en", "Products"))
	assert.Equal(t, "Le produit Marteau a été créé", T("fr", "The product %s has been created", "Marteau"))
	assert.Equal(t, "The product Hammer has been created", T("en", "The product %s has been created", "Hammer"))
	assert.Equal(t, "This field is required.", T("en", "validation.required"))
	assert.Equal(t, "Products", T("not a tag", "Products"))
}
