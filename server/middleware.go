package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/minimart/pkg/i18n"
)

const (
	langKey   = "lang"
	userIDKey = "userID"
	emailKey  = "email"
)

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func languageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.FromAcceptLanguage(c.GetHeader("Accept-Language"))
		c.Set(langKey, string(lang))
		c.Next()
	}
}

// authRequired verifies the bearer token and stores the caller identity in
// the request context. Missing token answers 401, a bad or expired one 403,
// both inside the usual envelope.
func (s *Server) authRequired(c *gin.Context) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if header == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		s.respond(c, http.StatusUnauthorized, nil, "access_token_required")
		c.Abort()
		return
	}

	claims, err := s.tokens.Verify(parts[1])
	if err != nil {
		s.respond(c, http.StatusForbidden, nil, "invalid_token")
		c.Abort()
		return
	}

	c.Set(userIDKey, claims.UserID)
	c.Set(emailKey, claims.Email)
	c.Next()
}

func (s *Server) currentUserID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}
