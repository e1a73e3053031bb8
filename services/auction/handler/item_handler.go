package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"
)

// AuctionServiceInterface is the listing/bidding surface the handlers need
type AuctionServiceInterface interface {
	CreateItem(ctx context.Context, creatorID int64, name, description string, startingBid decimal.Decimal, endDate time.Time) (int64, error)
	GetItem(ctx context.Context, itemID int64) (*models.ItemView, error)
	PlaceBid(ctx context.Context, itemID, userID int64, amount decimal.Decimal) (models.Bid, error)
	GetBidHistory(ctx context.Context, itemID int64) ([]models.BidRecord, error)
	Search(ctx context.Context, query, status string, userID int64, limit, offset int) ([]models.ItemSummary, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// itemIDParam parses the :item_id path segment, replying 400 when it is
// not a number
func itemIDParam(c *gin.Context) (int64, bool) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid item ID: %w", err), "invalid item ID")
		return 0, false
	}
	return itemID, true
}

// CreateItemHandler handles POST /item
func (h *AuctionHandler) CreateItemHandler(c *gin.Context) {
	var req helpers.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	userID := helpers.UserIDFromContext(c)

	itemID, err := h.service.CreateItem(c.Request.Context(), userID, req.Name, req.Description,
		req.StartingBid, helpers.FromUnixMilli(req.EndDate))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreateItemHandler: failed to create item", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"item_id": itemID}, "item created successfully")
	helpers.LogSuccess("CreateItemHandler", "item created successfully", map[string]any{
		"item_id": itemID,
		"user_id": userID,
	})
}

// GetItemHandler handles GET /item/:item_id
func (h *AuctionHandler) GetItemHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	view, err := h.service.GetItem(c.Request.Context(), itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetItemHandler: failed to get item", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ItemViewToResponse(view), "item retrieved successfully")
	helpers.LogSuccess("GetItemHandler", "item retrieved successfully", map[string]any{
		"item_id": itemID,
	})
}

// SearchHandler handles GET /search
func (h *AuctionHandler) SearchHandler(c *gin.Context) {
	query := c.Query("q")
	status := c.Query("status")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	userID := helpers.UserIDFromContext(c)

	items, err := h.service.Search(c.Request.Context(), query, status, userID, limit, offset)
	if err != nil {
		httpStatus, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, httpStatus, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SearchHandler: failed to search items", map[string]any{
			"status": status,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.SummariesToResponse(items), "items retrieved successfully")
	helpers.LogSuccess("SearchHandler", "items retrieved successfully", map[string]any{
		"count":  len(items),
		"status": status,
	})
}
