package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextPrincipal is the gin context key under which the authenticated
// principal is stored.
const ContextPrincipal = "principal"

// Principal is the identity extracted from a verified session token.
// Handlers pass Principal.UserID explicitly into usecases; services never
// read the authenticated user out of ambient request state themselves.
type Principal struct {
	UserID uint
	Email  string
	Role   string
}

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only. The secret is injected
// at startup rather than read from the environment per request.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Server misconfiguration (empty signing key)
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		// 3. Parse and verify JWT signature
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			// Validation error or invalid/expired token
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 4. Extract claims (payload) into a typed principal
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		p := Principal{UserID: uint(sub)}
		if email, ok := claims["email"].(string); ok {
			p.Email = email
		}
		if role, ok := claims["role"].(string); ok {
			p.Role = role
		}
		c.Set(ContextPrincipal, p)

		// 5. Pass control to the next handler
		c.Next()
	}
}

// PrincipalFromContext returns the principal stored by AuthRequired.
// The second return value is false if the request was not authenticated.
func PrincipalFromContext(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
