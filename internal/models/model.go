package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered account. The password is never stored;
// Salt and PasswordHash hold the hex-encoded PBKDF2 salt and verifier.
// SessionToken is empty when the user is logged out.
type User struct {
	UserID       int64  `json:"user_id" db:"user_id"`
	FirstName    string `json:"first_name" db:"first_name"`
	LastName     string `json:"last_name" db:"last_name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Salt         string `json:"-" db:"salt"`
	SessionToken string `json:"-" db:"session_token"`
}

// Item represents an auction listing. Immutable after creation; the
// current bid is always derived from the bids table, never stored here.
type Item struct {
	ItemID      int64           `json:"item_id" db:"item_id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	StartingBid decimal.Decimal `json:"starting_bid" db:"starting_bid"`
	StartDate   time.Time       `json:"start_date" db:"start_date"`
	EndDate     time.Time       `json:"end_date" db:"end_date"`
	CreatorID   int64           `json:"creator_id" db:"creator_id"`
}

// Bid is one row of the append-only ledger.
type Bid struct {
	BidID   int64           `json:"bid_id" db:"bid_id"`
	ItemID  int64           `json:"item_id" db:"item_id"`
	UserID  int64           `json:"user_id" db:"user_id"`
	Amount  decimal.Decimal `json:"amount" db:"amount"`
	BidTime time.Time       `json:"bid_time" db:"bid_time"`
}

// Question is a buyer question on an item; Answer stays empty until
// the seller responds.
type Question struct {
	QuestionID int64  `json:"question_id" db:"question_id"`
	ItemID     int64  `json:"item_id" db:"item_id"`
	AskedBy    int64  `json:"asked_by" db:"asked_by"`
	Question   string `json:"question" db:"question"`
	Answer     string `json:"answer" db:"answer"`
}

// BidHolder identifies the user currently holding the highest bid.
type BidHolder struct {
	UserID    int64  `json:"user_id" db:"user_id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

// ItemView is the full item detail assembled for reads: the stored item
// plus the derived current bid and its holder (nil when no bids exist).
type ItemView struct {
	Item
	CreatorFirstName string          `json:"first_name" db:"creator_first_name"`
	CreatorLastName  string          `json:"last_name" db:"creator_last_name"`
	CurrentBid       decimal.Decimal `json:"current_bid" db:"current_bid"`
	CurrentBidHolder *BidHolder      `json:"current_bid_holder" db:"-"`
}

// ItemSummary is the listing shape returned by search and profile views.
type ItemSummary struct {
	ItemID           int64           `json:"item_id" db:"item_id"`
	Name             string          `json:"name" db:"name"`
	Description      string          `json:"description" db:"description"`
	StartingBid      decimal.Decimal `json:"starting_bid" db:"starting_bid"`
	StartDate        time.Time       `json:"start_date" db:"start_date"`
	EndDate          time.Time       `json:"end_date" db:"end_date"`
	CreatorID        int64           `json:"creator_id" db:"creator_id"`
	CreatorFirstName string          `json:"first_name" db:"creator_first_name"`
	CreatorLastName  string          `json:"last_name" db:"creator_last_name"`
}

// BidRecord is one bid-history entry with the bidder's name attached.
type BidRecord struct {
	ItemID          int64           `json:"item_id" db:"item_id"`
	UserID          int64           `json:"user_id" db:"user_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	BidTime         time.Time       `json:"bid_time" db:"bid_time"`
	BidderFirstName string          `json:"first_name" db:"first_name"`
	BidderLastName  string          `json:"last_name" db:"last_name"`
}

// QuestionRecord is one Q&A entry with the asker's name attached.
type QuestionRecord struct {
	QuestionID     int64  `json:"question_id" db:"question_id"`
	QuestionText   string `json:"question_text" db:"question_text"`
	AnswerText     string `json:"answer_text" db:"answer_text"`
	UserID         int64  `json:"user_id" db:"user_id"`
	AskerFirstName string `json:"first_name" db:"first_name"`
	AskerLastName  string `json:"last_name" db:"last_name"`
}

// Profile is the public user view: identity plus the three derived
// auction sections.
type Profile struct {
	UserID        int64         `json:"user_id"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Selling       []ItemSummary `json:"selling"`
	BiddingOn     []ItemSummary `json:"bidding_on"`
	AuctionsEnded []ItemSummary `json:"auctions_ended"`
}
