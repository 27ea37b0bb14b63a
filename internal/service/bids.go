package service

import (
	"context"
	"errors"
	"fmt"

	"tenderhub/models"

	"github.com/google/uuid"
)

type CreateBidInput struct {
	Name            string
	Description     string
	Status          string
	TenderID        uuid.UUID
	OrganizationID  uuid.UUID
	CreatorUsername string
}

type BidPatch struct {
	Name        *string
	Description *string
	Status      *string
}

// CreateBid создает предложение. Тендер, организация и пользователь-автор
// проверяются до вставки; автор ищется среди пользователей, не сотрудников —
// это два разных пространства имен.
func (s *Service) CreateBid(ctx context.Context, in CreateBidInput) (*models.Bid, error) {
	if in.Status == "" {
		in.Status = models.BidStatusSubmitted
	}
	if !models.IsValidBidStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown bid status %q", ErrValidation, in.Status)
	}

	if _, err := s.store.GetTender(ctx, in.TenderID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: tender %s not found", ErrValidation, in.TenderID)
		}
		return nil, err
	}
	if _, err := s.store.GetOrganization(ctx, in.OrganizationID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: organization %s not found", ErrValidation, in.OrganizationID)
		}
		return nil, err
	}
	if _, err := s.store.GetUserByUsername(ctx, in.CreatorUsername); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: user %q not found", ErrValidation, in.CreatorUsername)
		}
		return nil, err
	}

	b := &models.Bid{
		Name:            in.Name,
		Description:     in.Description,
		Status:          in.Status,
		TenderID:        in.TenderID,
		OrganizationID:  in.OrganizationID,
		CreatorUsername: in.CreatorUsername,
	}
	if err := s.store.CreateBid(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) GetBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	return s.store.GetBid(ctx, id)
}

func (s *Service) ListBidsByCreator(ctx context.Context, username string, limit, offset int) ([]models.Bid, error) {
	return s.store.GetBidsByCreator(ctx, username, limit, offset)
}

func (s *Service) ListBidsForTender(ctx context.Context, tenderID uuid.UUID, limit, offset int) ([]models.Bid, error) {
	return s.store.GetBidsForTender(ctx, tenderID, limit, offset)
}

// UpdateBid — как UpdateTender, но правка разрешена только автору:
// несовпадение actingUsername с создателем дает ErrPermissionDenied до
// снимка, head и журнал версий не меняются.
func (s *Service) UpdateBid(ctx context.Context, id uuid.UUID, patch BidPatch, actingUsername string) (*models.Bid, error) {
	if patch.Status != nil && !models.IsValidBidStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: unknown bid status %q", ErrValidation, *patch.Status)
	}

	var updated *models.Bid
	err := s.store.InBidTx(ctx, func(tx BidTx) error {
		head, err := tx.LockBid(ctx, id)
		if err != nil {
			return err
		}
		if head.CreatorUsername != actingUsername {
			return fmt.Errorf("%w: bid %s belongs to %q", ErrPermissionDenied, id, head.CreatorUsername)
		}
		last, err := tx.MaxBidVersion(ctx, id)
		if err != nil {
			return err
		}
		snapshot := &models.BidVersion{
			BidID:       id,
			Version:     last + 1,
			Name:        head.Name,
			Description: head.Description,
		}
		if err := tx.InsertBidVersion(ctx, snapshot); err != nil {
			return err
		}
		if patch.Name != nil {
			head.Name = *patch.Name
		}
		if patch.Description != nil {
			head.Description = *patch.Description
		}
		if patch.Status != nil {
			head.Status = *patch.Status
		}
		if err := tx.UpdateBidHead(ctx, head); err != nil {
			return err
		}
		updated = head
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RollbackBid восстанавливает head из версии без записи новой версии
func (s *Service) RollbackBid(ctx context.Context, id uuid.UUID, version int) (*models.Bid, error) {
	var updated *models.Bid
	err := s.store.InBidTx(ctx, func(tx BidTx) error {
		head, err := tx.LockBid(ctx, id)
		if err != nil {
			return err
		}
		v, err := tx.GetBidVersion(ctx, id, version)
		if err != nil {
			return err
		}
		head.Name = v.Name
		head.Description = v.Description
		if err := tx.UpdateBidHead(ctx, head); err != nil {
			return err
		}
		updated = head
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) ListBidVersions(ctx context.Context, id uuid.UUID) ([]models.BidVersion, error) {
	if _, err := s.store.GetBid(ctx, id); err != nil {
		return nil, err
	}
	return s.store.GetBidVersions(ctx, id)
}
