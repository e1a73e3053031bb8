package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"
)

// AccountServiceInterface is the identity/session surface the handlers need
type AccountServiceInterface interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (int64, error)
	Login(ctx context.Context, email, password string) (int64, string, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, userID int64) (*models.Profile, error)
}

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// RegisterHandler handles POST /users
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	userID, err := h.service.Register(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterHandler: failed to register user", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"user_id": userID}, "account created successfully")
	helpers.LogSuccess("RegisterHandler", "account created successfully", map[string]any{
		"user_id": userID,
	})
}

// LoginHandler handles POST /login
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	userID, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password render identically so a caller
		// cannot probe which of the two failed.
		if errors.Is(err, auctionerrors.ErrUserNotFound) || errors.Is(err, auctionerrors.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusBadRequest, errors.New("invalid email or password"), "invalid email or password")
			utils.Info("LoginHandler: rejected login", map[string]any{"email": req.Email})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("LoginHandler: failed to log in", map[string]any{"error": err.Error()})
		return
	}

	resp := helpers.LoginResponse{
		UserID:       userID,
		SessionToken: token,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "logged in successfully")
	helpers.LogSuccess("LoginHandler", "logged in successfully", map[string]any{
		"user_id": userID,
	})
}

// LogoutHandler handles POST /logout
func (h *AccountHandler) LogoutHandler(c *gin.Context) {
	token := c.GetHeader(helpers.AuthHeader)

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LogoutHandler: failed to log out", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "logged out successfully")
	helpers.LogSuccess("LogoutHandler", "logged out successfully", map[string]any{
		"user_id": helpers.UserIDFromContext(c),
	})
}

// ProfileHandler handles GET /users/:user_id
func (h *AccountHandler) ProfileHandler(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid user ID: %w", err), "invalid user ID")
		return
	}

	profile, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ProfileHandler: failed to get profile", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ProfileToResponse(profile), "profile retrieved successfully")
	helpers.LogSuccess("ProfileHandler", "profile retrieved successfully", map[string]any{
		"user_id": userID,
	})
}
