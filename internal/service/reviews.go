package service

import (
	"context"
	"errors"
	"fmt"

	"tenderhub/models"

	"github.com/google/uuid"
)

// AddBidReview добавляет отзыв к предложению. Отзывы не версионируются
// и не редактируются — только вставка и чтение по фильтру.
func (s *Service) AddBidReview(ctx context.Context, bidID uuid.UUID, authorUsername, content string) (*models.BidReview, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: review content is required", ErrValidation)
	}
	if _, err := s.store.GetBid(ctx, bidID); err != nil {
		return nil, err
	}
	if _, err := s.store.GetUserByUsername(ctx, authorUsername); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: user %q not found", ErrValidation, authorUsername)
		}
		return nil, err
	}

	r := &models.BidReview{
		BidID:          bidID,
		AuthorUsername: authorUsername,
		Content:        content,
	}
	if err := s.store.CreateBidReview(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListBidReviews — отзывы по предложениям тендера tenderID, оставленные
// автором authorUsername к предложениям организации organizationID
// (тройной фильтр, порядок вставки).
func (s *Service) ListBidReviews(ctx context.Context, tenderID uuid.UUID, authorUsername string, organizationID uuid.UUID) ([]models.BidReview, error) {
	return s.store.GetBidReviews(ctx, tenderID, authorUsername, organizationID)
}
