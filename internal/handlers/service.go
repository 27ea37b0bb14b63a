package handlers

import (
	"context"

	"tenderhub/internal/service"
	"tenderhub/models"

	"github.com/google/uuid"
)

// ServiceInterface — операции ядра, нужные обработчикам; в тестах
// подменяется моком
type ServiceInterface interface {
	CreateTender(ctx context.Context, in service.CreateTenderInput) (*models.Tender, error)
	GetTender(ctx context.Context, id uuid.UUID) (*models.Tender, error)
	ListTenders(ctx context.Context, serviceTypes []string, limit, offset int) ([]models.Tender, error)
	ListTendersByCreator(ctx context.Context, username string, limit, offset int) ([]models.Tender, error)
	UpdateTender(ctx context.Context, id uuid.UUID, patch service.TenderPatch) (*models.Tender, error)
	RollbackTender(ctx context.Context, id uuid.UUID, version int) (*models.Tender, error)
	ListTenderVersions(ctx context.Context, id uuid.UUID) ([]models.TenderVersion, error)

	CreateBid(ctx context.Context, in service.CreateBidInput) (*models.Bid, error)
	GetBid(ctx context.Context, id uuid.UUID) (*models.Bid, error)
	ListBidsByCreator(ctx context.Context, username string, limit, offset int) ([]models.Bid, error)
	ListBidsForTender(ctx context.Context, tenderID uuid.UUID, limit, offset int) ([]models.Bid, error)
	UpdateBid(ctx context.Context, id uuid.UUID, patch service.BidPatch, actingUsername string) (*models.Bid, error)
	RollbackBid(ctx context.Context, id uuid.UUID, version int) (*models.Bid, error)
	ListBidVersions(ctx context.Context, id uuid.UUID) ([]models.BidVersion, error)

	AddBidReview(ctx context.Context, bidID uuid.UUID, authorUsername, content string) (*models.BidReview, error)
	ListBidReviews(ctx context.Context, tenderID uuid.UUID, authorUsername string, organizationID uuid.UUID) ([]models.BidReview, error)
}
