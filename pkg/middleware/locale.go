package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"catalog/internal/i18n"
)

// LocaleMiddleware stores the resolved language under "lang" and the path
// with its language segment removed under "lang_path".
func LocaleMiddleware(resolver *i18n.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", resolver.Resolve(c.Param("lang")))

		rest := strings.TrimPrefix(c.Request.URL.Path, "/")
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			rest = rest[i:]
		} else {
			rest = "/"
		}
		c.Set("lang_path", rest)
		c.Next()
	}
}
