package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
)

type questionRepository struct {
	db *sqlx.DB
}

// NewQuestionRepository creates the Postgres-backed QuestionDB
func NewQuestionRepository(db *sqlx.DB) QuestionDB {
	return &questionRepository{db: db}
}

// Ask inserts a new question and returns its generated id
func (r *questionRepository) Ask(ctx context.Context, question *models.Question) (int64, error) {
	query := `
		INSERT INTO questions (item_id, asked_by, question)
		VALUES ($1, $2, $3)
		RETURNING question_id
	`

	var questionID int64
	err := r.db.GetContext(ctx, &questionID, query, question.ItemID, question.AskedBy, question.Question)
	if err != nil {
		return 0, fmt.Errorf("ask question on item %d: %w", question.ItemID, err)
	}

	question.QuestionID = questionID
	return questionID, nil
}

// Answer stores the seller's answer. Repeated answers overwrite the
// previous one.
func (r *questionRepository) Answer(ctx context.Context, questionID int64, answer string) error {
	query := `UPDATE questions SET answer = $1 WHERE question_id = $2`

	result, err := r.db.ExecContext(ctx, query, answer, questionID)
	if err != nil {
		return fmt.Errorf("answer question %d: %w", questionID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("answer question %d: %w", questionID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("answer question %d: %w", questionID, auctionerrors.ErrQuestionNotFound)
	}

	return nil
}

// ListByItem returns all questions for an item with asker names, newest first
func (r *questionRepository) ListByItem(ctx context.Context, itemID int64) ([]models.QuestionRecord, error) {
	query := `
		SELECT q.question_id,
		       q.question AS question_text,
		       COALESCE(q.answer, '') AS answer_text,
		       q.asked_by AS user_id,
		       u.first_name,
		       u.last_name
		FROM questions q
		JOIN users u ON q.asked_by = u.user_id
		WHERE q.item_id = $1
		ORDER BY q.question_id DESC
	`

	var questions []models.QuestionRecord
	if err := r.db.SelectContext(ctx, &questions, query, itemID); err != nil {
		return nil, fmt.Errorf("list questions for item %d: %w", itemID, err)
	}

	return questions, nil
}

// ItemAndCreator returns the item a question belongs to and that item's creator
func (r *questionRepository) ItemAndCreator(ctx context.Context, questionID int64) (int64, int64, error) {
	query := `
		SELECT q.item_id, i.creator_id
		FROM questions q
		JOIN items i ON q.item_id = i.item_id
		WHERE q.question_id = $1
	`

	var row struct {
		ItemID    int64 `db:"item_id"`
		CreatorID int64 `db:"creator_id"`
	}
	err := r.db.GetContext(ctx, &row, query, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, fmt.Errorf("locate question %d: %w", questionID, auctionerrors.ErrQuestionNotFound)
		}
		return 0, 0, fmt.Errorf("locate question %d: %w", questionID, err)
	}

	return row.ItemID, row.CreatorID, nil
}
