package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"auction-house/internal/auctionerrors"
	"auction-house/utils"
)

// AuthHeader carries the opaque session token on authenticated requests
const AuthHeader = "X-Authorization"

// ContextUserID is the gin context key under which the auth middleware
// stores the authenticated user's id
const ContextUserID = "user_id"

// UserIDFromContext returns the authenticated user id, 0 for anonymous callers
func UserIDFromContext(c *gin.Context) int64 {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// RegisterValidators installs custom validators on gin's binding engine.
// Safe to call more than once.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("passwordpolicy", passwordPolicy)
	}
}

// passwordPolicy enforces 8-32 chars with at least one uppercase letter,
// one lowercase letter, one digit and one special character
func passwordPolicy(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 || len(password) > 32 {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrQuestionNotFound):
		return http.StatusNotFound, "question not found"
	case errors.Is(err, auctionerrors.ErrDuplicateEmail):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid must be higher than current bid"
	case errors.Is(err, auctionerrors.ErrSellerCannotBid):
		return http.StatusForbidden, "you cannot bid as the seller on this item"
	case errors.Is(err, auctionerrors.ErrSellerCannotAsk):
		return http.StatusForbidden, "you cannot ask a question on your own item"
	case errors.Is(err, auctionerrors.ErrNotSeller):
		return http.StatusForbidden, "only the item's seller can answer questions"
	case errors.Is(err, auctionerrors.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid session token"
	case errors.Is(err, auctionerrors.ErrAuthRequired):
		return http.StatusUnauthorized, "authentication required for status filter"
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusBadRequest, "invalid email or password"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
