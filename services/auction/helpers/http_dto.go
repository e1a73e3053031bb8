package helpers

import (
	"time"

	"github.com/shopspring/decimal"

	"auction-house/internal/models"
)

// Request DTOs. Dates travel as unix-millisecond integers on the wire.
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,passwordpolicy"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	StartingBid decimal.Decimal `json:"starting_bid" binding:"required"`
	EndDate     int64           `json:"end_date" binding:"required"`
}

type PlaceBidRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type AskQuestionRequest struct {
	QuestionText string `json:"question_text" binding:"required"`
}

type AnswerQuestionRequest struct {
	AnswerText string `json:"answer_text" binding:"required"`
}

// Response DTOs
type LoginResponse struct {
	UserID       int64  `json:"user_id"`
	SessionToken string `json:"session_token"`
}

type BidResponse struct {
	BidID   int64           `json:"bid_id"`
	ItemID  int64           `json:"item_id"`
	UserID  int64           `json:"user_id"`
	Amount  decimal.Decimal `json:"amount"`
	BidTime string          `json:"bid_time"`
}

type BidRecordResponse struct {
	ItemID    int64           `json:"item_id"`
	UserID    int64           `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	BidTime   int64           `json:"timestamp"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
}

type BidHolderResponse struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ItemDetailResponse struct {
	ItemID           int64              `json:"item_id"`
	Name             string             `json:"name"`
	Description      string             `json:"description"`
	StartingBid      decimal.Decimal    `json:"starting_bid"`
	StartDate        int64              `json:"start_date"`
	EndDate          int64              `json:"end_date"`
	CreatorID        int64              `json:"creator_id"`
	FirstName        string             `json:"first_name"`
	LastName         string             `json:"last_name"`
	CurrentBid       decimal.Decimal    `json:"current_bid"`
	CurrentBidHolder *BidHolderResponse `json:"current_bid_holder"`
}

type ItemSummaryResponse struct {
	ItemID      int64           `json:"item_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	StartingBid decimal.Decimal `json:"starting_bid"`
	StartDate   int64           `json:"start_date"`
	EndDate     int64           `json:"end_date"`
	CreatorID   int64           `json:"creator_id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
}

type ProfileResponse struct {
	UserID        int64                 `json:"user_id"`
	FirstName     string                `json:"first_name"`
	LastName      string                `json:"last_name"`
	Selling       []ItemSummaryResponse `json:"selling"`
	BiddingOn     []ItemSummaryResponse `json:"bidding_on"`
	AuctionsEnded []ItemSummaryResponse `json:"auctions_ended"`
}

type QuestionResponse struct {
	QuestionID   int64  `json:"question_id"`
	QuestionText string `json:"question_text"`
	AnswerText   string `json:"answer_text"`
	UserID       int64  `json:"user_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

// ItemViewToResponse converts the internal detail view to its wire shape
func ItemViewToResponse(view *models.ItemView) ItemDetailResponse {
	resp := ItemDetailResponse{
		ItemID:      view.ItemID,
		Name:        view.Name,
		Description: view.Description,
		StartingBid: view.StartingBid,
		StartDate:   view.StartDate.UnixMilli(),
		EndDate:     view.EndDate.UnixMilli(),
		CreatorID:   view.CreatorID,
		FirstName:   view.CreatorFirstName,
		LastName:    view.CreatorLastName,
		CurrentBid:  view.CurrentBid,
	}
	if view.CurrentBidHolder != nil {
		resp.CurrentBidHolder = &BidHolderResponse{
			UserID:    view.CurrentBidHolder.UserID,
			FirstName: view.CurrentBidHolder.FirstName,
			LastName:  view.CurrentBidHolder.LastName,
		}
	}
	return resp
}

// SummariesToResponse converts item summaries to their wire shape
func SummariesToResponse(items []models.ItemSummary) []ItemSummaryResponse {
	out := make([]ItemSummaryResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ItemSummaryResponse{
			ItemID:      item.ItemID,
			Name:        item.Name,
			Description: item.Description,
			StartingBid: item.StartingBid,
			StartDate:   item.StartDate.UnixMilli(),
			EndDate:     item.EndDate.UnixMilli(),
			CreatorID:   item.CreatorID,
			FirstName:   item.CreatorFirstName,
			LastName:    item.CreatorLastName,
		})
	}
	return out
}

// BidRecordsToResponse converts bid-history records to their wire shape
func BidRecordsToResponse(bids []models.BidRecord) []BidRecordResponse {
	out := make([]BidRecordResponse, 0, len(bids))
	for _, bid := range bids {
		out = append(out, BidRecordResponse{
			ItemID:    bid.ItemID,
			UserID:    bid.UserID,
			Amount:    bid.Amount,
			BidTime:   bid.BidTime.UnixMilli(),
			FirstName: bid.BidderFirstName,
			LastName:  bid.BidderLastName,
		})
	}
	return out
}

// QuestionsToResponse converts Q&A records to their wire shape
func QuestionsToResponse(questions []models.QuestionRecord) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuestionResponse{
			QuestionID:   q.QuestionID,
			QuestionText: q.QuestionText,
			AnswerText:   q.AnswerText,
			UserID:       q.UserID,
			FirstName:    q.AskerFirstName,
			LastName:     q.AskerLastName,
		})
	}
	return out
}

// ProfileToResponse converts the profile view to its wire shape
func ProfileToResponse(profile *models.Profile) ProfileResponse {
	return ProfileResponse{
		UserID:        profile.UserID,
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		Selling:       SummariesToResponse(profile.Selling),
		BiddingOn:     SummariesToResponse(profile.BiddingOn),
		AuctionsEnded: SummariesToResponse(profile.AuctionsEnded),
	}
}

// FromUnixMilli converts a wire timestamp back to UTC time
func FromUnixMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
