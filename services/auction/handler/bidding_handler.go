package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auction-house/services/auction/helpers"
	"auction-house/utils"
)

// PlaceBidHandler handles POST /item/:item_id/bid
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	userID := helpers.UserIDFromContext(c)

	bid, err := h.service.PlaceBid(c.Request.Context(), itemID, userID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: failed to place bid", map[string]any{
			"item_id": itemID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:   bid.BidID,
		ItemID:  bid.ItemID,
		UserID:  bid.UserID,
		Amount:  bid.Amount,
		BidTime: bid.BidTime.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":  bid.BidID,
		"item_id": itemID,
		"user_id": userID,
		"amount":  bid.Amount.String(),
	})
}

// GetBidHistoryHandler handles GET /item/:item_id/bid
func (h *AuctionHandler) GetBidHistoryHandler(c *gin.Context) {
	itemID, ok := itemIDParam(c)
	if !ok {
		return
	}

	bids, err := h.service.GetBidHistory(c.Request.Context(), itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHistoryHandler: failed to get bid history", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.BidRecordsToResponse(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidHistoryHandler", "bids retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(bids),
	})
}
