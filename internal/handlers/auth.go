// internal/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/alnajjar/makhzan/internal/i18n"
	"github.com/alnajjar/makhzan/internal/middleware"
	"github.com/alnajjar/makhzan/internal/services"
	"github.com/alnajjar/makhzan/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	session := sessions.Default(c)
	if loggedIn, ok := session.Get(middleware.SessionLoggedInKey).(bool); ok && loggedIn {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flashes": utils.ConsumeFlashes(c),
	})
}

// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	username := c.PostForm("username")
	password := c.PostForm("password")

	if err := h.authService.Login(username, password); err != nil {
		utils.AddFlash(c, utils.FlashDanger, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
		c.Redirect(http.StatusFound, "/login")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionLoggedInKey, true)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	session := sessions.Default(c)
	session.Clear()
	session.Save()

	utils.AddFlash(c, utils.FlashInfo, i18n.T(lang, i18n.KeyAuthLogoutSuccess))
	c.Redirect(http.StatusFound, "/login")
}
