package http

import (
	"errors"
	"net/http"

	"inkwell/internal/usecase"
	"inkwell/pkg/logger"
	"inkwell/pkg/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	sessions    session.Store
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, sessions session.Store, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		sessions:    sessions,
		logger:      logger,
	}
}

func (h *AuthHandler) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", baseTemplateData(c, "Sign up"))
}

// Signup registers the user and redirects home without logging them in;
// the new account stays anonymous until an explicit login.
func (h *AuthHandler) Signup(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	if _, err := h.authUseCase.Register(username, email, password); err != nil {
		h.logger.Error("Signup failed for %q: %v", username, err)
		c.String(http.StatusInternalServerError, "Please fill the data correctly.")
		return
	}

	c.Redirect(http.StatusFound, "/home")
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", baseTemplateData(c, "Log in"))
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	token := sessionToken(c)

	user, err := h.authUseCase.Login(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			if token != "" {
				h.sessions.SetFlash(ctx, token, "Invalid username or password.")
			}
			c.Redirect(http.StatusFound, "/login")
			return
		}
		h.logger.Error("Login failed: %v", err)
		c.String(http.StatusInternalServerError, "An error occurred while logging in.")
		return
	}

	if err := h.sessions.Authenticate(ctx, token, user.ID); err != nil {
		h.logger.Error("Failed to authenticate session: %v", err)
		c.String(http.StatusInternalServerError, "An error occurred while logging in.")
		return
	}

	h.sessions.SetFlash(ctx, token, "Login successful")
	c.Redirect(http.StatusFound, "/home")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := sessionToken(c)
	if token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			h.logger.Error("Failed to destroy session: %v", err)
			c.String(http.StatusInternalServerError, "An error occurred while logging out.")
			return
		}
	}

	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/home")
}
