// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Locale resolves the request language: explicit ?lang= wins, then the
// Accept-Language header, then the configured default.
func Locale(defaultLang string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")

		if lang == "" {
			header := c.GetHeader("Accept-Language")
			if header != "" {
				// Handle cases like "ar,en;q=0.9"
				first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
				switch {
				case strings.HasPrefix(first, "ar"):
					lang = "ar"
				case strings.HasPrefix(first, "en"):
					lang = "en"
				}
			}
		}

		switch lang {
		case "ar", "en":
		default:
			lang = defaultLang
		}

		c.Set("lang", lang)
		c.Next()
	}
}
