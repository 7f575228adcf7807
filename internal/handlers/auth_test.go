package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"registro/internal/auth"
	"registro/internal/middleware"
	"registro/internal/models"
	"registro/internal/repository"
	"registro/internal/services"
)

type authTestEnv struct {
	router *gin.Engine
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Position{},
		&models.Employee{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	authService := services.NewAuthService(repository.NewUserRepository(db))
	employeeRepo := repository.NewEmployeeRepository(db)
	employeeService := services.NewEmployeeService(employeeRepo)
	tokens := auth.NewTokenService("test-secret", time.Hour)

	authHandler := NewAuthHandler(authService, tokens)
	employeeHandler := NewEmployeeHandler(employeeService, services.NewImportService(employeeRepo))

	r := gin.New()
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/logout", authHandler.Logout)
	r.GET("/employees", middleware.RequireAuth(tokens, authService), employeeHandler.List)

	return authTestEnv{router: r}
}

func (env authTestEnv) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func credentials(username, password string) url.Values {
	return url.Values{
		"username": {username},
		"password": {password},
	}
}

func TestAuthHandler_Register(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.postForm("/register", credentials("alice", "supersecret"))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/login?message=")

	t.Run("duplicate username redirects back with an error", func(t *testing.T) {
		w := env.postForm("/register", credentials("alice", "other"))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "/register?error=")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)
	env.postForm("/register", credentials("alice", "supersecret"))

	w := env.postForm("/login", credentials("alice", "supersecret"))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/employees", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.SessionCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	value, err := url.QueryUnescape(cookie.Value)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(value, "Bearer "))

	t.Run("wrong password redirects back with an error", func(t *testing.T) {
		w := env.postForm("/login", credentials("alice", "nope"))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "/login?error=")
	})

	t.Run("unknown user fails the same way", func(t *testing.T) {
		w := env.postForm("/login", credentials("ghost", "supersecret"))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "/login?error=")
	})
}

func TestAuthHandler_SessionFlow(t *testing.T) {
	env := setupAuthTestEnv(t)
	env.postForm("/register", credentials("alice", "supersecret"))
	login := env.postForm("/login", credentials("alice", "supersecret"))
	sessionCookie := login.Result().Cookies()[0]

	t.Run("the cookie opens protected routes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.AddCookie(sessionCookie)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice")
	})

	t.Run("without it, protected routes go to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	env := setupAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestAuthHandler_LoginPage(t *testing.T) {
	env := setupAuthTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/login?error=bad&message=ok", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bad")
	assert.Contains(t, w.Body.String(), "ok")
}
