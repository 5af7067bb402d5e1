// internal/utils/flash.go
package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash categories map directly onto the UI alert classes.
const (
	FlashDanger  = "danger"
	FlashSuccess = "success"
	FlashInfo    = "info"
)

type Flash struct {
	Category string
	Message  string
}

// AddFlash queues a one-shot message for the next rendered page.
func AddFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	session.Save()
}

// ConsumeFlashes drains all pending flash messages, in category order.
func ConsumeFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)

	var flashes []Flash
	for _, category := range []string{FlashDanger, FlashSuccess, FlashInfo} {
		for _, f := range session.Flashes(category) {
			if msg, ok := f.(string); ok {
				flashes = append(flashes, Flash{Category: category, Message: msg})
			}
		}
	}
	session.Save()

	return flashes
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return "ar"
}
