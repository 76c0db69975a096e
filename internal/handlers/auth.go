package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/safsequence/Meow/internal/auth"
)

// AuthHandler proxies account operations to the hosted auth service so the
// frontend never handles the provider API key directly.
type AuthHandler struct {
	client *auth.Client
}

func NewAuthHandler(client *auth.Client) *AuthHandler {
	return &AuthHandler{client: client}
}

type authCredentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var creds authCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	session, err := h.client.SignUp(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var creds authCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	session, err := h.client.SignInWithPassword(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		return
	}
	if err := h.client.SignOut(c.Request.Context(), token); err != nil {
		writeAuthError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) User(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		return
	}
	user, err := h.client.GetUser(c.Request.Context(), token)
	if err != nil {
		writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func bearerToken(c *gin.Context) (string, bool) {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
		return "", false
	}
	return token, true
}

// writeAuthError maps provider failures onto responses the frontend can
// render: a missing configuration is a 503 with a human message, provider
// rejections keep their status, anything else degrades to a 502.
func writeAuthError(c *gin.Context, err error) {
	if errors.Is(err, auth.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"message": "Authentication service not configured. Please contact support.",
		})
		return
	}

	var apiErr *auth.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"error": "Authentication service unavailable"})
}
