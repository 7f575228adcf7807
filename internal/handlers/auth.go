package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"registro/internal/auth"
	apierrors "registro/internal/errors"
	"registro/internal/middleware"
	"registro/internal/services"
)

// AuthHandler coordinates the login, registration and logout flows.
type AuthHandler struct {
	authService *services.AuthService
	tokens      *auth.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
	}
}

// LoginPage describes the login form, echoing feedback passed through
// query params by earlier redirects.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":    "login",
		"error":   c.Query("error"),
		"message": c.Query("message"),
	})
}

// Login processes the login form. Failures redirect back to the form;
// success sets the session cookie and lands on the employee list.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := h.authService.Login(services.LoginInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login?error="+url.QueryEscape("invalid username or password"))
		return
	}

	token, err := h.tokens.Issue(username)
	if err != nil {
		apierrors.InternalError(c, "failed to issue session token")
		return
	}

	// No explicit cookie expiry: the token carries its own.
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "Bearer "+token, 0, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/employees")
}

// RegisterPage describes the registration form.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":  "register",
		"error": c.Query("error"),
	})
}

// Register processes the registration form.
func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := h.authService.Register(services.RegisterInput{
		Username: username,
		Password: password,
	})
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/login?message="+url.QueryEscape("account created successfully"))
	case errors.Is(err, services.ErrUsernameTaken):
		c.Redirect(http.StatusSeeOther, "/register?error="+url.QueryEscape("username already exists"))
	case errors.Is(err, services.ErrUsernameRequired), errors.Is(err, services.ErrPasswordRequired):
		c.Redirect(http.StatusSeeOther, "/register?error="+url.QueryEscape(err.Error()))
	default:
		apierrors.InternalError(c, "")
	}
}

// Logout clears the session cookie. Tokens are self-contained, so there
// is nothing server-side to invalidate.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
