// internal/handlers/auth_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/alnajjar/makhzan/internal/config"
	"github.com/alnajjar/makhzan/internal/middleware"
	"github.com/alnajjar/makhzan/internal/services"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	authService := services.NewAuthService(services.NewStaticCredentials(config.AdminConfig{
		Username: "admin",
		Password: "123",
	}))
	authHandler := NewAuthHandler(authService)

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	protected := r.Group("")
	protected.Use(middleware.LoginRequired())
	protected.GET("/protected", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	suite.router = r
}

func (suite *AuthHandlerTestSuite) postLogin(username, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, _ := http.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) get(path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestGuardRedirectsWithoutSession() {
	w := suite.get("/protected", nil)

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/login", w.Header().Get("Location"))
}

func (suite *AuthHandlerTestSuite) TestLoginSuccessOpensProtectedRoutes() {
	w := suite.postLogin("admin", "123")
	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/", w.Header().Get("Location"))

	w2 := suite.get("/protected", w.Result().Cookies())
	assert.Equal(suite.T(), http.StatusOK, w2.Code)
	assert.Equal(suite.T(), "ok", w2.Body.String())
}

func (suite *AuthHandlerTestSuite) TestLoginFailureLeavesSessionUnauthenticated() {
	w := suite.postLogin("admin", "wrong")
	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/login", w.Header().Get("Location"))

	// The flash cookie set by the failed attempt must not open the gate.
	w2 := suite.get("/protected", w.Result().Cookies())
	assert.Equal(suite.T(), http.StatusFound, w2.Code)
	assert.Equal(suite.T(), "/login", w2.Header().Get("Location"))
}

func (suite *AuthHandlerTestSuite) TestLogoutClearsSession() {
	login := suite.postLogin("admin", "123")
	cookies := login.Result().Cookies()

	logout := suite.get("/logout", cookies)
	assert.Equal(suite.T(), http.StatusFound, logout.Code)
	assert.Equal(suite.T(), "/login", logout.Header().Get("Location"))

	w := suite.get("/protected", logout.Result().Cookies())
	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/login", w.Header().Get("Location"))
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
