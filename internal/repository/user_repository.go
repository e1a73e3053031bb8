package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
)

// Postgres unique-constraint violation
const pqUniqueViolation = "23505"

type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates the Postgres-backed UserDB
func NewUserRepository(db *sqlx.DB) UserDB {
	return &userRepository{db: db}
}

// CreateUser inserts a new account and returns its generated id. A unique
// violation on email surfaces as ErrDuplicateEmail, not a generic error.
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (first_name, last_name, email, password_hash, salt)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id
	`

	var userID int64
	err := r.db.GetContext(ctx, &userID, query,
		user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Salt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return 0, fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrDuplicateEmail)
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	user.UserID = userID
	return userID, nil
}

// GetUserByID returns the stored account for an id
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	var row userRow

	query := `SELECT user_id, first_name, last_name, email, password_hash, salt, session_token
	          FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &row, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get user %d: %w", userID, auctionerrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}

	return row.toUser(), nil
}

// GetUserByEmail returns the stored account for an email
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var row userRow

	query := `SELECT user_id, first_name, last_name, email, password_hash, salt, session_token
	          FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &row, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get user by email: %w", auctionerrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return row.toUser(), nil
}

// GetToken returns the user's active session token, or "" when logged out
func (r *userRepository) GetToken(ctx context.Context, userID int64) (string, error) {
	var token sql.NullString

	query := `SELECT session_token FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &token, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("get token for user %d: %w", userID, auctionerrors.ErrUserNotFound)
		}
		return "", fmt.Errorf("get token for user %d: %w", userID, err)
	}

	return token.String, nil
}

// SetToken stores a session token for the user
func (r *userRepository) SetToken(ctx context.Context, userID int64, token string) error {
	query := `UPDATE users SET session_token = $1 WHERE user_id = $2`

	result, err := r.db.ExecContext(ctx, query, token, userID)
	if err != nil {
		return fmt.Errorf("set token for user %d: %w", userID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set token for user %d: %w", userID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("set token for user %d: %w", userID, auctionerrors.ErrUserNotFound)
	}

	return nil
}

// ClearToken revokes a session token. Clearing an unknown token is a no-op.
func (r *userRepository) ClearToken(ctx context.Context, token string) error {
	query := `UPDATE users SET session_token = NULL WHERE session_token = $1`

	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}

	return nil
}

// GetIDFromToken resolves an active session token to its user id
func (r *userRepository) GetIDFromToken(ctx context.Context, token string) (int64, error) {
	var userID int64

	query := `SELECT user_id FROM users WHERE session_token = $1`

	err := r.db.GetContext(ctx, &userID, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("resolve token: %w", auctionerrors.ErrInvalidToken)
		}
		return 0, fmt.Errorf("resolve token: %w", err)
	}

	return userID, nil
}

// userRow handles the nullable session_token column
type userRow struct {
	UserID       int64          `db:"user_id"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Salt         string         `db:"salt"`
	SessionToken sql.NullString `db:"session_token"`
}

func (row *userRow) toUser() *models.User {
	return &models.User{
		UserID:       row.UserID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Salt:         row.Salt,
		SessionToken: row.SessionToken.String,
	}
}
