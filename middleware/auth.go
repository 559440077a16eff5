package middleware

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

type JWTClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// IssueToken signs a 24h session token for an admin email.
func IssueToken(secret []byte, email string) (string, error) {
	claims := JWTClaims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// RequireAuth guards the admin routes. Sets "adminEmail" on the context for
// downstream handlers.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")
		if len(tokenStr) < 8 {
			c.AbortWithStatusJSON(401, gin.H{"error": "missing token"})
			return
		}
		tokenStr = tokenStr[7:] // strip "Bearer "
		token, err := jwt.ParseWithClaims(tokenStr, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "invalid token", "detail": err.Error()})
			return
		}
		if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
			c.Set("adminEmail", claims.Email)
			c.Next()
			return
		}
		c.AbortWithStatusJSON(401, gin.H{"error": "invalid token"})
	}
}
