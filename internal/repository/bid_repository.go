package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
)

type bidRepository struct {
	db *sqlx.DB
}

// NewBidRepository creates the Postgres-backed BidLedger
func NewBidRepository(db *sqlx.DB) BidLedger {
	return &bidRepository{db: db}
}

// CurrentBid returns the highest bid amount for an item, falling back to
// the starting bid when no bids exist. The result is never below the
// starting bid.
func (r *bidRepository) CurrentBid(ctx context.Context, itemID int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE((SELECT MAX(amount) FROM bids WHERE item_id = $1), i.starting_bid) AS current_bid
		FROM items i
		WHERE i.item_id = $1
	`

	var current decimal.Decimal
	err := r.db.GetContext(ctx, &current, query, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Decimal{}, fmt.Errorf("current bid for item %d: %w", itemID, auctionerrors.ErrItemNotFound)
		}
		return decimal.Decimal{}, fmt.Errorf("current bid for item %d: %w", itemID, err)
	}

	return current, nil
}

// BidHistory returns all bids for an item with bidder names, most recent first
func (r *bidRepository) BidHistory(ctx context.Context, itemID int64) ([]models.BidRecord, error) {
	query := `
		SELECT b.item_id, b.user_id, b.amount, b.bid_time,
		       u.first_name, u.last_name
		FROM bids b
		JOIN users u ON b.user_id = u.user_id
		WHERE b.item_id = $1
		ORDER BY b.bid_time DESC
	`

	var bids []models.BidRecord
	if err := r.db.SelectContext(ctx, &bids, query, itemID); err != nil {
		return nil, fmt.Errorf("bid history for item %d: %w", itemID, err)
	}

	return bids, nil
}

// Append inserts a bid unconditionally. All business rules (ownership,
// monotonicity) are enforced by the bidding engine before this call.
func (r *bidRepository) Append(ctx context.Context, bid *models.Bid) error {
	query := `
		INSERT INTO bids (item_id, user_id, amount, bid_time)
		VALUES ($1, $2, $3, $4)
		RETURNING bid_id
	`

	var bidID int64
	err := r.db.GetContext(ctx, &bidID, query, bid.ItemID, bid.UserID, bid.Amount, bid.BidTime)
	if err != nil {
		return fmt.Errorf("record bid for item %d by user %d: %w", bid.ItemID, bid.UserID, err)
	}

	bid.BidID = bidID
	return nil
}

// ItemsBidOnBy returns the distinct items a user has bid on, ordered by
// the user's most recent bid first
func (r *bidRepository) ItemsBidOnBy(ctx context.Context, userID int64) ([]models.ItemSummary, error) {
	query := `
		SELECT i.item_id, i.name, i.description, i.starting_bid, i.start_date, i.end_date,
		       i.creator_id, u.first_name AS creator_first_name, u.last_name AS creator_last_name
		FROM items i
		JOIN users u ON i.creator_id = u.user_id
		JOIN (
			SELECT item_id, MAX(bid_time) AS last_bid
			FROM bids
			WHERE user_id = $1
			GROUP BY item_id
		) b ON b.item_id = i.item_id
		ORDER BY b.last_bid DESC
	`

	var items []models.ItemSummary
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, fmt.Errorf("items bid on by user %d: %w", userID, err)
	}

	return items, nil
}
