// SPDX-License-Identifier: MIT
package auth

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/platefront/platefront/internal/config"
)

// DraftClaims scopes a wizard token to a single draft. The wizard is
// anonymous: whoever holds the token may edit that draft and nothing
// else.
type DraftClaims struct {
	DraftID uint `json:"draft_id"`
	jwt.RegisteredClaims
}

// getTokenSecret returns the signing secret from env var or config
func getTokenSecret() string {
	// Environment variable takes precedence
	if secret := os.Getenv("PLATEFRONT_TOKEN_SECRET"); secret != "" {
		return secret
	}
	return config.GetString("drafts.token_secret")
}

// GenerateDraftToken creates a signed token for one draft
func GenerateDraftToken(draftID uint) (string, error) {
	expiryHours := config.GetInt("drafts.token_expiry_hours")
	if expiryHours == 0 {
		expiryHours = 72 // Default fallback
	}

	claims := DraftClaims{
		DraftID: draftID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(getTokenSecret()))
}

// ValidateDraftToken parses and validates a draft token
func ValidateDraftToken(tokenString string) (*DraftClaims, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	claims := &DraftClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(getTokenSecret()), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// RequireDraftToken gates draft mutations: the bearer token must be
// valid and must name the draft in the route.
func RequireDraftToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := ValidateDraftToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		draftID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil || uint(draftID) != claims.DraftID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token does not match draft"})
			return
		}

		c.Set("draft_id", claims.DraftID)
		c.Next()
	}
}
