package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ClaimsKey is where validated token claims land in the gin context.
const ClaimsKey = "authClaims"

// Claims are the parts of a Supabase access token this service cares about.
type Claims struct {
	jwt.RegisteredClaims
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// MetadataRole returns the application role stored in the user metadata,
// which is distinct from the provider-level "authenticated" role.
func (c *Claims) MetadataRole() string {
	role, _ := c.UserMetadata["role"].(string)
	return role
}

// authenticate validates the bearer token and stores the claims in the gin
// context. It aborts the request itself on failure.
func authenticate(c *gin.Context, secret string) (*Claims, bool) {
	header := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
		return nil, false
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return nil, false
	}

	c.Set(ClaimsKey, claims)
	return claims, true
}

// RequireAuth verifies the bearer token against the project JWT secret and
// stores the claims in the request context.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, secret); !ok {
			return
		}
		c.Next()
	}
}

// RequireRole builds on RequireAuth and additionally checks the metadata role.
func RequireRole(secret, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, secret)
		if !ok {
			return
		}
		if claims.MetadataRole() != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
