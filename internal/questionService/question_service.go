package question

import (
	"context"
	"fmt"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
)

// QuestionService defines the business logic for item Q&A
type QuestionService struct {
	questions repository.QuestionDB
	items     repository.ItemDB
}

// NewQuestionService creates a new QuestionService instance
func NewQuestionService(questions repository.QuestionDB, items repository.ItemDB) *QuestionService {
	return &QuestionService{
		questions: questions,
		items:     items,
	}
}

// Ask records a buyer question on an item. Sellers may not ask about
// their own listings.
func (s *QuestionService) Ask(ctx context.Context, itemID, askerID int64, text string) (int64, error) {
	if itemID <= 0 || askerID <= 0 {
		return 0, fmt.Errorf("service: %w - missing item or user ID", auctionerrors.ErrInvalidInput)
	}
	if text == "" {
		return 0, fmt.Errorf("service: %w - empty question text", auctionerrors.ErrInvalidInput)
	}

	creatorID, err := s.items.GetCreator(ctx, itemID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to ask question on item %d: %w", itemID, err)
	}
	if creatorID == askerID {
		return 0, fmt.Errorf("service: %w - user %d created item %d", auctionerrors.ErrSellerCannotAsk, askerID, itemID)
	}

	q := &models.Question{
		ItemID:   itemID,
		AskedBy:  askerID,
		Question: text,
	}

	questionID, err := s.questions.Ask(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("service: failed to ask question on item %d: %w", itemID, err)
	}

	return questionID, nil
}

// Answer stores the seller's answer to a question. Only the creator of
// the question's item may answer; repeated answers overwrite.
func (s *QuestionService) Answer(ctx context.Context, questionID, answererID int64, text string) error {
	if questionID <= 0 || answererID <= 0 {
		return fmt.Errorf("service: %w - missing question or user ID", auctionerrors.ErrInvalidInput)
	}
	if text == "" {
		return fmt.Errorf("service: %w - empty answer text", auctionerrors.ErrInvalidInput)
	}

	_, creatorID, err := s.questions.ItemAndCreator(ctx, questionID)
	if err != nil {
		return fmt.Errorf("service: failed to answer question %d: %w", questionID, err)
	}
	if creatorID != answererID {
		return fmt.Errorf("service: %w - user %d did not create the item", auctionerrors.ErrNotSeller, answererID)
	}

	if err := s.questions.Answer(ctx, questionID, text); err != nil {
		return fmt.Errorf("service: failed to answer question %d: %w", questionID, err)
	}

	return nil
}

// ListByItem returns all questions for an item, newest first
func (s *QuestionService) ListByItem(ctx context.Context, itemID int64) ([]models.QuestionRecord, error) {
	if itemID <= 0 {
		return nil, fmt.Errorf("service: %w - invalid item ID", auctionerrors.ErrInvalidInput)
	}

	// The item must exist even when it has no questions
	if _, err := s.items.GetCreator(ctx, itemID); err != nil {
		return nil, fmt.Errorf("service: failed to list questions for item %d: %w", itemID, err)
	}

	questions, err := s.questions.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list questions for item %d: %w", itemID, err)
	}

	if questions == nil {
		questions = []models.QuestionRecord{}
	}
	return questions, nil
}
