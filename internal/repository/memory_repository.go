package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of UserDB,
// ItemDB, BidLedger and QuestionDB. It mirrors the behaviour of the
// Postgres repositories and is intended for integration tests and
// benchmarks only.
type MemoryRepo struct {
	mu        sync.RWMutex
	nextUser  int64
	nextItem  int64
	nextBid   int64
	nextQn    int64
	users     map[int64]*models.User
	emails    map[string]int64       // email -> user id
	tokens    map[string]int64       // session token -> user id
	items     map[int64]*models.Item
	bids      map[int64][]models.Bid // item id -> bids in insertion order
	questions map[int64]*models.Question
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:     make(map[int64]*models.User),
		emails:    make(map[string]int64),
		tokens:    make(map[string]int64),
		items:     make(map[int64]*models.Item),
		bids:      make(map[int64][]models.Bid),
		questions: make(map[int64]*models.Question),
	}
}

// CreateUser stores a new account, enforcing email uniqueness
func (r *MemoryRepo) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.emails[user.Email]; exists {
		return 0, fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrDuplicateEmail)
	}

	r.nextUser++
	stored := *user
	stored.UserID = r.nextUser
	r.users[stored.UserID] = &stored
	r.emails[stored.Email] = stored.UserID

	user.UserID = stored.UserID
	return stored.UserID, nil
}

// GetUserByID returns the stored account for an id
func (r *MemoryRepo) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("get user %d: %w", userID, auctionerrors.ErrUserNotFound)
	}
	copied := *user
	return &copied, nil
}

// GetUserByEmail returns the stored account for an email
func (r *MemoryRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.emails[email]
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", auctionerrors.ErrUserNotFound)
	}
	copied := *r.users[userID]
	return &copied, nil
}

// GetToken returns the user's active session token, or "" when logged out
func (r *MemoryRepo) GetToken(ctx context.Context, userID int64) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return "", fmt.Errorf("get token for user %d: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user.SessionToken, nil
}

// SetToken stores a session token for the user
func (r *MemoryRepo) SetToken(ctx context.Context, userID int64, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("set token for user %d: %w", userID, auctionerrors.ErrUserNotFound)
	}
	if user.SessionToken != "" {
		delete(r.tokens, user.SessionToken)
	}
	user.SessionToken = token
	r.tokens[token] = userID
	return nil
}

// ClearToken revokes a session token; unknown tokens are a no-op
func (r *MemoryRepo) ClearToken(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if userID, ok := r.tokens[token]; ok {
		r.users[userID].SessionToken = ""
		delete(r.tokens, token)
	}
	return nil
}

// GetIDFromToken resolves an active session token to its user id
func (r *MemoryRepo) GetIDFromToken(ctx context.Context, token string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.tokens[token]
	if !ok {
		return 0, fmt.Errorf("resolve token: %w", auctionerrors.ErrInvalidToken)
	}
	return userID, nil
}

// CreateItem stores a new listing
func (r *MemoryRepo) CreateItem(ctx context.Context, item *models.Item) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextItem++
	stored := *item
	stored.ItemID = r.nextItem
	r.items[stored.ItemID] = &stored

	item.ItemID = stored.ItemID
	return stored.ItemID, nil
}

// GetItem assembles the detail view with the derived current bid
func (r *MemoryRepo) GetItem(ctx context.Context, itemID int64) (*models.ItemView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return nil, fmt.Errorf("get item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}

	creator := r.users[item.CreatorID]
	view := &models.ItemView{
		Item:       *item,
		CurrentBid: item.StartingBid,
	}
	if creator != nil {
		view.CreatorFirstName = creator.FirstName
		view.CreatorLastName = creator.LastName
	}

	if top, ok := r.topBid(itemID); ok {
		view.CurrentBid = top.Amount
		holder := r.users[top.UserID]
		view.CurrentBidHolder = &models.BidHolder{UserID: top.UserID}
		if holder != nil {
			view.CurrentBidHolder.FirstName = holder.FirstName
			view.CurrentBidHolder.LastName = holder.LastName
		}
	}

	return view, nil
}

// GetCreator returns the creator id of an item
func (r *MemoryRepo) GetCreator(ctx context.Context, itemID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return 0, fmt.Errorf("get creator of item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return item.CreatorID, nil
}

// Search filters and classifies items, soonest-ending first
func (r *MemoryRepo) Search(ctx context.Context, filter SearchFilter) ([]models.ItemSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(filter.Query)
	var matched []*models.Item
	for _, item := range r.items {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}

		switch filter.Status {
		case StatusOpen:
			if item.CreatorID != filter.UserID || !item.EndDate.After(filter.Now) {
				continue
			}
		case StatusArchive:
			if item.CreatorID != filter.UserID || item.EndDate.After(filter.Now) {
				continue
			}
		case StatusBid:
			if !r.hasBidBy(item.ItemID, filter.UserID) {
				continue
			}
		default:
			if !item.EndDate.After(filter.Now) {
				continue
			}
		}

		matched = append(matched, item)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].EndDate.Before(matched[j].EndDate)
	})

	if filter.Offset >= len(matched) {
		return []models.ItemSummary{}, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}

	out := make([]models.ItemSummary, 0, len(matched))
	for _, item := range matched {
		out = append(out, r.summarize(item))
	}
	return out, nil
}

// ListByCreator returns a user's active or ended listings
func (r *MemoryRepo) ListByCreator(ctx context.Context, creatorID int64, activeOnly bool, now time.Time) ([]models.ItemSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.Item
	for _, item := range r.items {
		if item.CreatorID != creatorID {
			continue
		}
		if activeOnly != item.EndDate.After(now) {
			continue
		}
		matched = append(matched, item)
	}

	sort.Slice(matched, func(i, j int) bool {
		if activeOnly {
			return matched[i].StartDate.After(matched[j].StartDate)
		}
		return matched[i].EndDate.After(matched[j].EndDate)
	})

	out := make([]models.ItemSummary, 0, len(matched))
	for _, item := range matched {
		out = append(out, r.summarize(item))
	}
	return out, nil
}

// CurrentBid returns the highest bid, falling back to the starting bid
func (r *MemoryRepo) CurrentBid(ctx context.Context, itemID int64) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("current bid for item %d: %w", itemID, auctionerrors.ErrItemNotFound)
	}

	if top, ok := r.topBid(itemID); ok {
		return top.Amount, nil
	}
	return item.StartingBid, nil
}

// BidHistory returns all bids for an item, most recent first
func (r *MemoryRepo) BidHistory(ctx context.Context, itemID int64) ([]models.BidRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := append([]models.Bid(nil), r.bids[itemID]...)
	sort.Slice(bids, func(i, j int) bool {
		if bids[i].BidTime.Equal(bids[j].BidTime) {
			return bids[i].BidID > bids[j].BidID
		}
		return bids[i].BidTime.After(bids[j].BidTime)
	})

	out := make([]models.BidRecord, 0, len(bids))
	for _, bid := range bids {
		record := models.BidRecord{
			ItemID:  bid.ItemID,
			UserID:  bid.UserID,
			Amount:  bid.Amount,
			BidTime: bid.BidTime,
		}
		if bidder := r.users[bid.UserID]; bidder != nil {
			record.BidderFirstName = bidder.FirstName
			record.BidderLastName = bidder.LastName
		}
		out = append(out, record)
	}
	return out, nil
}

// Append records a bid unconditionally
func (r *MemoryRepo) Append(ctx context.Context, bid *models.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[bid.ItemID]; !ok {
		return fmt.Errorf("record bid for item %d: %w", bid.ItemID, auctionerrors.ErrItemNotFound)
	}

	r.nextBid++
	bid.BidID = r.nextBid
	r.bids[bid.ItemID] = append(r.bids[bid.ItemID], *bid)
	return nil
}

// ItemsBidOnBy returns distinct items a user has bid on, latest bid first
func (r *MemoryRepo) ItemsBidOnBy(ctx context.Context, userID int64) ([]models.ItemSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lastBid := make(map[int64]time.Time)
	for itemID, bids := range r.bids {
		for _, bid := range bids {
			if bid.UserID != userID {
				continue
			}
			if bid.BidTime.After(lastBid[itemID]) {
				lastBid[itemID] = bid.BidTime
			}
		}
	}

	itemIDs := make([]int64, 0, len(lastBid))
	for itemID := range lastBid {
		itemIDs = append(itemIDs, itemID)
	}
	sort.Slice(itemIDs, func(i, j int) bool {
		return lastBid[itemIDs[i]].After(lastBid[itemIDs[j]])
	})

	out := make([]models.ItemSummary, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		if item, ok := r.items[itemID]; ok {
			out = append(out, r.summarize(item))
		}
	}
	return out, nil
}

// Ask stores a new question
func (r *MemoryRepo) Ask(ctx context.Context, question *models.Question) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[question.ItemID]; !ok {
		return 0, fmt.Errorf("ask question on item %d: %w", question.ItemID, auctionerrors.ErrItemNotFound)
	}

	r.nextQn++
	stored := *question
	stored.QuestionID = r.nextQn
	r.questions[stored.QuestionID] = &stored

	question.QuestionID = stored.QuestionID
	return stored.QuestionID, nil
}

// Answer overwrites the stored answer
func (r *MemoryRepo) Answer(ctx context.Context, questionID int64, answer string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	question, ok := r.questions[questionID]
	if !ok {
		return fmt.Errorf("answer question %d: %w", questionID, auctionerrors.ErrQuestionNotFound)
	}
	question.Answer = answer
	return nil
}

// ListByItem returns questions newest first
func (r *MemoryRepo) ListByItem(ctx context.Context, itemID int64) ([]models.QuestionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.Question
	for _, question := range r.questions {
		if question.ItemID == itemID {
			matched = append(matched, question)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].QuestionID > matched[j].QuestionID
	})

	out := make([]models.QuestionRecord, 0, len(matched))
	for _, question := range matched {
		record := models.QuestionRecord{
			QuestionID:   question.QuestionID,
			QuestionText: question.Question,
			AnswerText:   question.Answer,
			UserID:       question.AskedBy,
		}
		if asker := r.users[question.AskedBy]; asker != nil {
			record.AskerFirstName = asker.FirstName
			record.AskerLastName = asker.LastName
		}
		out = append(out, record)
	}
	return out, nil
}

// ItemAndCreator returns a question's item and that item's creator
func (r *MemoryRepo) ItemAndCreator(ctx context.Context, questionID int64) (int64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	question, ok := r.questions[questionID]
	if !ok {
		return 0, 0, fmt.Errorf("locate question %d: %w", questionID, auctionerrors.ErrQuestionNotFound)
	}
	item, ok := r.items[question.ItemID]
	if !ok {
		return 0, 0, fmt.Errorf("locate question %d: %w", questionID, auctionerrors.ErrItemNotFound)
	}
	return item.ItemID, item.CreatorID, nil
}

// hasBidBy reports whether the user has any bid on the item; callers hold
// the lock
func (r *MemoryRepo) hasBidBy(itemID, userID int64) bool {
	for _, bid := range r.bids[itemID] {
		if bid.UserID == userID {
			return true
		}
	}
	return false
}

// topBid returns the highest-amount bid for an item, ties broken by the
// earlier bid (first to reach the amount holds it). Callers hold the lock.
func (r *MemoryRepo) topBid(itemID int64) (models.Bid, bool) {
	bids := r.bids[itemID]
	if len(bids) == 0 {
		return models.Bid{}, false
	}
	top := bids[0]
	for _, bid := range bids[1:] {
		if bid.Amount.GreaterThan(top.Amount) {
			top = bid
		}
	}
	return top, true
}

// summarize builds a listing summary; callers hold the lock
func (r *MemoryRepo) summarize(item *models.Item) models.ItemSummary {
	summary := models.ItemSummary{
		ItemID:      item.ItemID,
		Name:        item.Name,
		Description: item.Description,
		StartingBid: item.StartingBid,
		StartDate:   item.StartDate,
		EndDate:     item.EndDate,
		CreatorID:   item.CreatorID,
	}
	if creator := r.users[item.CreatorID]; creator != nil {
		summary.CreatorFirstName = creator.FirstName
		summary.CreatorLastName = creator.LastName
	}
	return summary
}
