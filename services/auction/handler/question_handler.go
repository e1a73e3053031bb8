package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"
)

// QuestionServiceInterface is the Q&A surface the handlers need
type QuestionServiceInterface interface {
	Ask(ctx context.Context, itemID, askerID int64, text string) (int64, error)
	Answer(ctx context.Context, questionID, answererID int64, text string) error
	ListByItem(ctx context.Context, itemID int64) ([]models.QuestionRecord, error)
}

type QuestionHandler struct {
	service QuestionServiceInterface
}

func NewQuestionHandler(service QuestionServiceInterface) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// ListQuestionsHandler handles GET /item/:item_id/question
func (h *QuestionHandler) ListQuestionsHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	questions, err := h.service.ListByItem(c.Request.Context(), itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListQuestionsHandler: failed to list questions", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.QuestionsToResponse(questions), "questions retrieved successfully")
	helpers.LogSuccess("ListQuestionsHandler", "questions retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(questions),
	})
}

// AskQuestionHandler handles POST /item/:item_id/question
func (h *QuestionHandler) AskQuestionHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	var req helpers.AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AskQuestionHandler", err)
		return
	}

	userID := helpers.UserIDFromContext(c)

	questionID, err := h.service.Ask(c.Request.Context(), itemID, userID, req.QuestionText)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AskQuestionHandler: failed to ask question", map[string]any{
			"item_id": itemID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"question_id": questionID}, "question submitted successfully")
	helpers.LogSuccess("AskQuestionHandler", "question submitted successfully", map[string]any{
		"question_id": questionID,
		"item_id":     itemID,
		"user_id":     userID,
	})
}

// AnswerQuestionHandler handles POST /question/:question_id
func (h *QuestionHandler) AnswerQuestionHandler(c *gin.Context) {
	questionID, err := strconv.ParseInt(c.Param("question_id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid question ID: %w", err), "invalid question ID")
		return
	}

	var req helpers.AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AnswerQuestionHandler", err)
		return
	}

	userID := helpers.UserIDFromContext(c)

	if err := h.service.Answer(c.Request.Context(), questionID, userID, req.AnswerText); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AnswerQuestionHandler: failed to answer question", map[string]any{
			"question_id": questionID,
			"user_id":     userID,
			"error":       err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "answer submitted successfully")
	helpers.LogSuccess("AnswerQuestionHandler", "answer submitted successfully", map[string]any{
		"question_id": questionID,
		"user_id":     userID,
	})
}
