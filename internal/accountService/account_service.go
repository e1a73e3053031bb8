package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// AccountService defines the business logic for identity, sessions and
// user profiles
type AccountService struct {
	users  repository.UserDB
	items  repository.ItemDB
	ledger repository.BidLedger
	now    func() time.Time
}

// NewAccountService creates a new AccountService instance
func NewAccountService(users repository.UserDB, items repository.ItemDB, ledger repository.BidLedger) *AccountService {
	return &AccountService{
		users:  users,
		items:  items,
		ledger: ledger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the service clock, used by tests
func (s *AccountService) WithClock(now func() time.Time) *AccountService {
	s.now = now
	return s
}

// Register creates a new account. The password is stored only as a salted
// PBKDF2 verifier; a duplicate email surfaces as ErrDuplicateEmail.
func (s *AccountService) Register(ctx context.Context, firstName, lastName, email, password string) (int64, error) {
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return 0, fmt.Errorf("service: %w - missing registration fields", auctionerrors.ErrInvalidInput)
	}

	salt, err := utils.GenerateSalt()
	if err != nil {
		return 0, fmt.Errorf("service: failed to register %s: %w", email, err)
	}
	hash, err := utils.HashPassword(password, salt)
	if err != nil {
		return 0, fmt.Errorf("service: failed to register %s: %w", email, err)
	}

	user := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Salt:         salt,
	}

	userID, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("service: failed to register %s: %w", email, err)
	}

	return userID, nil
}

// Login authenticates the credentials and issues (or reuses) the session
// token. Unknown email and wrong password stay distinct error kinds here;
// the boundary layer renders them identically.
func (s *AccountService) Login(ctx context.Context, email, password string) (int64, string, error) {
	if email == "" || password == "" {
		return 0, "", fmt.Errorf("service: %w - missing credentials", auctionerrors.ErrInvalidInput)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return 0, "", fmt.Errorf("service: failed to authenticate: %w", err)
	}

	ok, err := utils.VerifyPassword(password, user.Salt, user.PasswordHash)
	if err != nil {
		return 0, "", fmt.Errorf("service: failed to authenticate: %w", err)
	}
	if !ok {
		return 0, "", fmt.Errorf("service: failed to authenticate: %w", auctionerrors.ErrInvalidCredentials)
	}

	token, err := s.IssueOrReuseToken(ctx, user.UserID)
	if err != nil {
		return 0, "", err
	}

	return user.UserID, token, nil
}

// IssueOrReuseToken returns the user's existing token when one is set, so
// repeated logins never invalidate another session; otherwise it generates
// a fresh token and persists it.
func (s *AccountService) IssueOrReuseToken(ctx context.Context, userID int64) (string, error) {
	existing, err := s.users.GetToken(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("service: failed to issue token for user %d: %w", userID, err)
	}
	if existing != "" {
		return existing, nil
	}

	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", fmt.Errorf("service: failed to issue token for user %d: %w", userID, err)
	}

	if err := s.users.SetToken(ctx, userID, token); err != nil {
		return "", fmt.Errorf("service: failed to issue token for user %d: %w", userID, err)
	}

	return token, nil
}

// ResolveToken maps an active session token back to its user id
func (s *AccountService) ResolveToken(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, fmt.Errorf("service: %w - empty token", auctionerrors.ErrInvalidToken)
	}

	userID, err := s.users.GetIDFromToken(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("service: failed to resolve token: %w", err)
	}

	return userID, nil
}

// Logout revokes the session token. Revoking an unknown token is not an
// error, so logout is idempotent.
func (s *AccountService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("service: %w - empty token", auctionerrors.ErrInvalidToken)
	}

	if err := s.users.ClearToken(ctx, token); err != nil {
		return fmt.Errorf("service: failed to log out: %w", err)
	}

	return nil
}

// Profile assembles the public user view: identity plus active listings,
// ended listings and items the user is bidding on
func (s *AccountService) Profile(ctx context.Context, userID int64) (*models.Profile, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("service: %w - invalid user ID", auctionerrors.ErrInvalidInput)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get profile for user %d: %w", userID, err)
	}

	now := s.now()

	selling, err := s.items.ListByCreator(ctx, userID, true, now)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get profile for user %d: %w", userID, err)
	}
	ended, err := s.items.ListByCreator(ctx, userID, false, now)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get profile for user %d: %w", userID, err)
	}
	bidding, err := s.ledger.ItemsBidOnBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get profile for user %d: %w", userID, err)
	}

	profile := &models.Profile{
		UserID:        user.UserID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Selling:       selling,
		BiddingOn:     bidding,
		AuctionsEnded: ended,
	}
	if profile.Selling == nil {
		profile.Selling = []models.ItemSummary{}
	}
	if profile.BiddingOn == nil {
		profile.BiddingOn = []models.ItemSummary{}
	}
	if profile.AuctionsEnded == nil {
		profile.AuctionsEnded = []models.ItemSummary{}
	}

	return profile, nil
}

// IsInvalidToken reports whether the error chain ends in a bad token
func IsInvalidToken(err error) bool {
	return errors.Is(err, auctionerrors.ErrInvalidToken)
}
