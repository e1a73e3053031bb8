package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
)

type itemRepository struct {
	db *sqlx.DB
}

// NewItemRepository creates the Postgres-backed ItemDB
func NewItemRepository(db *sqlx.DB) ItemDB {
	return &itemRepository{db: db}
}

// CreateItem inserts a new listing and returns its generated id
func (r *itemRepository) CreateItem(ctx context.Context, item *models.Item) (int64, error) {
	query := `
		INSERT INTO items (name, description, starting_bid, start_date, end_date, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING item_id
	`

	var itemID int64
	err := r.db.GetContext(ctx, &itemID, query,
		item.Name, item.Description, item.StartingBid, item.StartDate, item.EndDate, item.CreatorID)
	if err != nil {
		return 0, fmt.Errorf("create item: %w", err)
	}

	item.ItemID = itemID
	return itemID, nil
}

// itemDetailRow carries the nullable top-bid columns of the detail query
type itemDetailRow struct {
	models.Item
	CreatorFirstName string          `db:"creator_first_name"`
	CreatorLastName  string          `db:"creator_last_name"`
	CurrentBid       decimal.Decimal `db:"current_bid"`
	BidUserID        sql.NullInt64   `db:"bid_user_id"`
	BidFirstName     sql.NullString  `db:"bid_first_name"`
	BidLastName      sql.NullString  `db:"bid_last_name"`
}

// GetItem assembles the full item detail, deriving current bid and holder
// from the ledger at read time
func (r *itemRepository) GetItem(ctx context.Context, itemID int64) (*models.ItemView, error) {
	query := `
		SELECT
			i.item_id, i.name, i.description, i.starting_bid, i.start_date, i.end_date,
			i.creator_id, u.first_name AS creator_first_name, u.last_name AS creator_last_name,
			COALESCE(b.amount, i.starting_bid) AS current_bid,
			b.user_id AS bid_user_id,
			bu.first_name AS bid_first_name,
			bu.last_name AS bid_last_name
		FROM items i
		JOIN users u ON i.creator_id = u.user_id
		LEFT JOIN (
			SELECT item_id, user_id, amount
			FROM bids
			WHERE item_id = $1
			ORDER BY amount DESC
			LIMIT 1
		) b ON i.item_id = b.item_id
		LEFT JOIN users bu ON b.user_id = bu.user_id
		WHERE i.item_id = $1
	`

	var row itemDetailRow
	err := r.db.GetContext(ctx, &row, query, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get item %d: %w", itemID, auctionerrors.ErrItemNotFound)
		}
		return nil, fmt.Errorf("get item %d: %w", itemID, err)
	}

	view := &models.ItemView{
		Item:             row.Item,
		CreatorFirstName: row.CreatorFirstName,
		CreatorLastName:  row.CreatorLastName,
		CurrentBid:       row.CurrentBid,
	}
	if row.BidUserID.Valid {
		view.CurrentBidHolder = &models.BidHolder{
			UserID:    row.BidUserID.Int64,
			FirstName: row.BidFirstName.String,
			LastName:  row.BidLastName.String,
		}
	}

	return view, nil
}

// GetCreator returns the creator id of an item
func (r *itemRepository) GetCreator(ctx context.Context, itemID int64) (int64, error) {
	var creatorID int64

	query := `SELECT creator_id FROM items WHERE item_id = $1`

	err := r.db.GetContext(ctx, &creatorID, query, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("get creator of item %d: %w", itemID, auctionerrors.ErrItemNotFound)
		}
		return 0, fmt.Errorf("get creator of item %d: %w", itemID, err)
	}

	return creatorID, nil
}

// Search filters items by keyword and status, soonest-ending first.
// Status semantics: OPEN and ARCHIVE classify the requester's own listings
// by whether the auction window is still open; BID selects items the
// requester has bid on regardless of window; no status means the public
// view of all still-running auctions.
func (r *itemRepository) Search(ctx context.Context, filter SearchFilter) ([]models.ItemSummary, error) {
	query := `
		SELECT i.item_id, i.name, i.description, i.starting_bid, i.start_date, i.end_date,
		       i.creator_id, u.first_name AS creator_first_name, u.last_name AS creator_last_name
		FROM items i
		JOIN users u ON i.creator_id = u.user_id
		WHERE (i.name ILIKE $1 OR i.description ILIKE $1)
	`

	pattern := "%" + filter.Query + "%"
	args := []any{pattern}

	switch filter.Status {
	case StatusOpen:
		query += fmt.Sprintf(" AND i.creator_id = $%d AND i.end_date > $%d", len(args)+1, len(args)+2)
		args = append(args, filter.UserID, filter.Now)
	case StatusArchive:
		query += fmt.Sprintf(" AND i.creator_id = $%d AND i.end_date <= $%d", len(args)+1, len(args)+2)
		args = append(args, filter.UserID, filter.Now)
	case StatusBid:
		query += fmt.Sprintf(" AND i.item_id IN (SELECT item_id FROM bids WHERE user_id = $%d)", len(args)+1)
		args = append(args, filter.UserID)
	default:
		query += fmt.Sprintf(" AND i.end_date > $%d", len(args)+1)
		args = append(args, filter.Now)
	}

	query += fmt.Sprintf(" ORDER BY i.end_date ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	var items []models.ItemSummary
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}

	return items, nil
}

// ListByCreator returns a user's listings, active ones newest-started
// first, ended ones most recently ended first
func (r *itemRepository) ListByCreator(ctx context.Context, creatorID int64, activeOnly bool, now time.Time) ([]models.ItemSummary, error) {
	query := `
		SELECT i.item_id, i.name, i.description, i.starting_bid, i.start_date, i.end_date,
		       i.creator_id, u.first_name AS creator_first_name, u.last_name AS creator_last_name
		FROM items i
		JOIN users u ON i.creator_id = u.user_id
		WHERE i.creator_id = $1
	`
	if activeOnly {
		query += " AND i.end_date > $2 ORDER BY i.start_date DESC"
	} else {
		query += " AND i.end_date <= $2 ORDER BY i.end_date DESC"
	}

	var items []models.ItemSummary
	if err := r.db.SelectContext(ctx, &items, query, creatorID, now); err != nil {
		return nil, fmt.Errorf("list items for creator %d: %w", creatorID, err)
	}

	return items, nil
}
