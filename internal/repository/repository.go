package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"auction-house/internal/models"
)

// Status filter values accepted by Search
const (
	StatusOpen    = "OPEN"
	StatusArchive = "ARCHIVE"
	StatusBid     = "BID"
)

// SearchFilter bundles the search parameters. UserID is 0 for anonymous
// callers; Now is supplied by the caller so the auction-window decision is
// made against a single instant.
type SearchFilter struct {
	Query  string
	Status string
	UserID int64
	Now    time.Time
	Limit  int
	Offset int
}

// UserDB defines identity and session-token storage
type UserDB interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetToken(ctx context.Context, userID int64) (string, error)
	SetToken(ctx context.Context, userID int64, token string) error
	ClearToken(ctx context.Context, token string) error
	GetIDFromToken(ctx context.Context, token string) (int64, error)
}

// ItemDB defines auction item storage. Reads assemble derived bid state
// from the ledger; nothing bid-related is stored on items.
type ItemDB interface {
	CreateItem(ctx context.Context, item *models.Item) (int64, error)
	GetItem(ctx context.Context, itemID int64) (*models.ItemView, error)
	GetCreator(ctx context.Context, itemID int64) (int64, error)
	Search(ctx context.Context, filter SearchFilter) ([]models.ItemSummary, error)
	ListByCreator(ctx context.Context, creatorID int64, activeOnly bool, now time.Time) ([]models.ItemSummary, error)
}

// BidLedger defines the append-only bid record store, the source of truth
// for an item's current bid
type BidLedger interface {
	CurrentBid(ctx context.Context, itemID int64) (decimal.Decimal, error)
	BidHistory(ctx context.Context, itemID int64) ([]models.BidRecord, error)
	Append(ctx context.Context, bid *models.Bid) error
	ItemsBidOnBy(ctx context.Context, userID int64) ([]models.ItemSummary, error)
}

// QuestionDB defines question/answer storage
type QuestionDB interface {
	Ask(ctx context.Context, question *models.Question) (int64, error)
	Answer(ctx context.Context, questionID int64, answer string) error
	ListByItem(ctx context.Context, itemID int64) ([]models.QuestionRecord, error)
	ItemAndCreator(ctx context.Context, questionID int64) (itemID int64, creatorID int64, err error)
}
