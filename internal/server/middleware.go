package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auction-house/services/auction/helpers"
	"auction-house/utils"
)

// TokenResolver maps an opaque session token back to a user id
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (int64, error)
}

// RequestLoggerMiddleware logs incoming requests with timing and a
// correlation id
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()
	requestID := utils.GenerateID()
	c.Set("request_id", requestID)

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}

// RequireAuth blocks the request unless the X-Authorization header carries
// a valid session token, and stores the resolved user id on the context
func RequireAuth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(helpers.AuthHeader)
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, errors.New("missing token"), "missing token")
			c.Abort()
			return
		}

		userID, err := resolver.ResolveToken(c.Request.Context(), token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, errors.New("invalid token"), "invalid token")
			c.Abort()
			return
		}

		c.Set(helpers.ContextUserID, userID)
		c.Next()
	}
}

// OptionalAuth stores the user id when a valid token is present but never
// blocks the request; invalid tokens simply leave the caller anonymous
func OptionalAuth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(helpers.AuthHeader)
		if token != "" {
			if userID, err := resolver.ResolveToken(c.Request.Context(), token); err == nil {
				c.Set(helpers.ContextUserID, userID)
			}
		}
		c.Next()
	}
}
