package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucybridge/subscription-api/internal/logger"
)

// ErrInvalidToken is returned when the provided token is invalid.
var ErrInvalidToken = errors.New("invalid token")

// Context keys for values the auth middleware stores per request.
const (
	UserIDKey = "X-User-ID"
	RoleKey   = "X-User-Role"

	RoleAdmin   = "admin"
	RoleLearner = "learner"
)

// SessionClaims is the token the host platform issues for its signed-in
// users. The subject is the platform user ID.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// AuthClient validates host-platform session tokens. Tokens are signed
// with a shared HMAC secret.
type AuthClient struct {
	secret []byte
}

func NewAuthClient(secret string) *AuthClient {
	return &AuthClient{secret: []byte(secret)}
}

// ValidateToken parses and verifies a session token, returning its
// claims.
func (a *AuthClient) ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithLeeway(30*time.Second))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}

// AuthMiddleware rejects requests without a valid bearer token and
// stores the caller's identity on the context.
func (a *AuthClient) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}

		claims, err := a.ValidateToken(tokenString)
		if err != nil {
			logger.Log.Warn("rejected session token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token subject"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// AdminMiddleware restricts a route group to admin sessions. It must
// run after AuthMiddleware.
func (a *AuthClient) AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated caller's user ID, or uuid.Nil if
// the request was not authenticated.
func GetUserID(c *gin.Context) uuid.UUID {
	if v, exists := c.Get(UserIDKey); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// GetRole returns the authenticated caller's role.
func GetRole(c *gin.Context) string {
	if v, exists := c.Get(RoleKey); exists {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

// IsAdmin reports whether the caller holds the admin role.
func IsAdmin(c *gin.Context) bool {
	return GetRole(c) == RoleAdmin
}

// IsPlainLearner reports whether the caller is an ordinary learner
// session with no elevated role. Tokens that carry no role claim are
// treated as plain learners. Ownership checks apply only to plain
// learners; privileged sessions may act on other users' records.
func IsPlainLearner(c *gin.Context) bool {
	role := GetRole(c)
	return role == "" || role == RoleLearner
}
