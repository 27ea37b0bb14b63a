package service

import (
	"context"

	"tenderhub/models"

	"github.com/google/uuid"
)

// Storage — контракт хранилища для ядра. Реализуется пакетом db поверх
// Postgres; в тестах подменяется моком. Методы при промахе возвращают
// ErrNotFound, нарушение уникальности (tender_id, version) транслируется
// в ErrConflict.
type Storage interface {
	GetEmployeeByUsername(ctx context.Context, username string) (*models.Employee, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error)

	CreateTender(ctx context.Context, t *models.Tender) error
	GetTender(ctx context.Context, id uuid.UUID) (*models.Tender, error)
	GetTenders(ctx context.Context, serviceTypes []string, limit, offset int) ([]models.Tender, error)
	GetTendersByCreator(ctx context.Context, username string, limit, offset int) ([]models.Tender, error)
	GetTenderVersions(ctx context.Context, tenderID uuid.UUID) ([]models.TenderVersion, error)
	InTenderTx(ctx context.Context, fn func(tx TenderTx) error) error

	CreateBid(ctx context.Context, b *models.Bid) error
	GetBid(ctx context.Context, id uuid.UUID) (*models.Bid, error)
	GetBidsByCreator(ctx context.Context, username string, limit, offset int) ([]models.Bid, error)
	GetBidsForTender(ctx context.Context, tenderID uuid.UUID, limit, offset int) ([]models.Bid, error)
	GetBidVersions(ctx context.Context, bidID uuid.UUID) ([]models.BidVersion, error)
	InBidTx(ctx context.Context, fn func(tx BidTx) error) error

	CreateBidReview(ctx context.Context, r *models.BidReview) error
	GetBidReviews(ctx context.Context, tenderID uuid.UUID, authorUsername string, organizationID uuid.UUID) ([]models.BidReview, error)
}

// TenderTx — операции над одним тендером внутри транзакции. LockTender
// блокирует head до конца транзакции, поэтому номер версии вычисляется
// без гонок: конкурентные правки одного тендера сериализуются, разных —
// не мешают друг другу.
type TenderTx interface {
	LockTender(ctx context.Context, id uuid.UUID) (*models.Tender, error)
	MaxTenderVersion(ctx context.Context, id uuid.UUID) (int, error)
	InsertTenderVersion(ctx context.Context, v *models.TenderVersion) error
	UpdateTenderHead(ctx context.Context, t *models.Tender) error
	GetTenderVersion(ctx context.Context, id uuid.UUID, version int) (*models.TenderVersion, error)
}

// BidTx — то же для предложения
type BidTx interface {
	LockBid(ctx context.Context, id uuid.UUID) (*models.Bid, error)
	MaxBidVersion(ctx context.Context, id uuid.UUID) (int, error)
	InsertBidVersion(ctx context.Context, v *models.BidVersion) error
	UpdateBidHead(ctx context.Context, b *models.Bid) error
	GetBidVersion(ctx context.Context, id uuid.UUID, version int) (*models.BidVersion, error)
}

// Service — ядро: операции над тендерами и предложениями с историей
// версий и откатом. Само ничего не логирует и не повторяет — все ошибки
// возвращаются вызывающему как типизированные.
type Service struct {
	store Storage
}

func New(store Storage) *Service {
	return &Service{store: store}
}
