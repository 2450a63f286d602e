package handler

import (
	"log/slog"
	"net/http"

	"service_marketplace/internal/model"
	"service_marketplace/internal/service"
	"service_marketplace/internal/validation"

	"github.com/gin-gonic/gin"
)

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	MaxAge int
	Secure bool
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	service   service.AuthService
	validator *validation.Validator
	cookie    CookieConfig
	logger    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, v *validation.Validator, cookie CookieConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: s, validator: v, cookie: cookie, logger: logger}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.InsertUser
	if err := bindJSON(c, h.validator, &req); err != nil {
		writeError(c, h.logger, err)
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.setSessionCookie(c, token, h.cookie.MaxAge)
	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		writeError(c, h.logger, err)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.setSessionCookie(c, token, h.cookie.MaxAge)
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cookie.Name)
	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CurrentUser returns the session's user
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/user", authMW, h.CurrentUser)
}
