package auction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
)

// Default pagination applied when the caller does not supply limits
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 100
)

// AuctionService defines the business logic for listings and bidding.
// The clock is injectable so auction-window decisions are testable.
type AuctionService struct {
	items  repository.ItemDB
	ledger repository.BidLedger
	now    func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(items repository.ItemDB, ledger repository.BidLedger) *AuctionService {
	return &AuctionService{
		items:  items,
		ledger: ledger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the service clock, used by tests
func (s *AuctionService) WithClock(now func() time.Time) *AuctionService {
	s.now = now
	return s
}

// CreateItem validates and stores a new listing, stamping its start date
// with the creation instant. The end date must lie strictly in the future;
// the binding layer checks this too, but the rule is re-checked here.
func (s *AuctionService) CreateItem(ctx context.Context, creatorID int64, name, description string, startingBid decimal.Decimal, endDate time.Time) (int64, error) {
	if creatorID == 0 || name == "" || description == "" {
		return 0, fmt.Errorf("service: %w - missing item fields", auctionerrors.ErrInvalidInput)
	}
	if !startingBid.IsPositive() {
		return 0, fmt.Errorf("service: %w - starting bid must be positive", auctionerrors.ErrInvalidInput)
	}

	now := s.now()
	if !endDate.After(now) {
		return 0, fmt.Errorf("service: %w - end date must be in the future", auctionerrors.ErrInvalidInput)
	}

	item := &models.Item{
		Name:        name,
		Description: description,
		StartingBid: startingBid,
		StartDate:   now,
		EndDate:     endDate,
		CreatorID:   creatorID,
	}

	itemID, err := s.items.CreateItem(ctx, item)
	if err != nil {
		return 0, fmt.Errorf("service: failed to create item for user %d: %w", creatorID, err)
	}

	return itemID, nil
}

// GetItem returns the full item detail including the derived current bid
func (s *AuctionService) GetItem(ctx context.Context, itemID int64) (*models.ItemView, error) {
	if itemID <= 0 {
		return nil, fmt.Errorf("service: %w - invalid item ID", auctionerrors.ErrInvalidInput)
	}

	view, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}

	return view, nil
}

// PlaceBid runs the per-bid protocol: resolve the creator, reject the
// seller, read the current bid, reject non-improving amounts, then append
// to the ledger. Each failure short-circuits before any write.
func (s *AuctionService) PlaceBid(ctx context.Context, itemID, userID int64, amount decimal.Decimal) (models.Bid, error) {
	if itemID <= 0 || userID <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - missing item or user ID", auctionerrors.ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return models.Bid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	creatorID, err := s.items.GetCreator(ctx, itemID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to resolve creator of item %d: %w", itemID, err)
	}
	if creatorID == userID {
		return models.Bid{}, fmt.Errorf("service: %w - user %d created item %d", auctionerrors.ErrSellerCannotBid, userID, itemID)
	}

	current, err := s.ledger.CurrentBid(ctx, itemID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to read current bid for item %d: %w", itemID, err)
	}

	// Equal to the current bid is rejected: a bid must strictly improve
	// the price.
	if amount.Cmp(current) <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - current bid is %s", auctionerrors.ErrBidTooLow, current.String())
	}

	bid := models.Bid{
		ItemID:  itemID,
		UserID:  userID,
		Amount:  amount,
		BidTime: s.now(),
	}

	if err := s.ledger.Append(ctx, &bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for item %d by user %d: %w", itemID, userID, err)
	}

	return bid, nil
}

// GetBidHistory returns all bids for an item, most recent first
func (s *AuctionService) GetBidHistory(ctx context.Context, itemID int64) ([]models.BidRecord, error) {
	if itemID <= 0 {
		return nil, fmt.Errorf("service: %w - invalid item ID", auctionerrors.ErrInvalidInput)
	}

	// The item must exist even when it has no bids
	if _, err := s.items.GetCreator(ctx, itemID); err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %d: %w", itemID, err)
	}

	bids, err := s.ledger.BidHistory(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %d: %w", itemID, err)
	}

	if bids == nil {
		bids = []models.BidRecord{}
	}
	return bids, nil
}

// Search classifies and filters items against the requesting user and the
// current instant. Status filters require an authenticated requester; the
// default view (still-running auctions) is public.
func (s *AuctionService) Search(ctx context.Context, query, status string, userID int64, limit, offset int) ([]models.ItemSummary, error) {
	switch status {
	case "", repository.StatusOpen, repository.StatusArchive, repository.StatusBid:
	default:
		return nil, fmt.Errorf("service: %w - unknown status %q", auctionerrors.ErrInvalidInput, status)
	}

	if status != "" && userID == 0 {
		return nil, fmt.Errorf("service: %w - status filter needs a logged-in user", auctionerrors.ErrAuthRequired)
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	if offset < 0 {
		offset = 0
	}

	filter := repository.SearchFilter{
		Query:  query,
		Status: status,
		UserID: userID,
		Now:    s.now(),
		Limit:  limit,
		Offset: offset,
	}

	items, err := s.items.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search items: %w", err)
	}

	if items == nil {
		items = []models.ItemSummary{}
	}
	return items, nil
}
