package db

import (
	"context"

	"tenderhub/internal/service"
	"tenderhub/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func (s *Storage) CreateBid(ctx context.Context, b *models.Bid) error {
	query := `
        INSERT INTO bid
            (name, description, status, tender_id, organization_id, creator_username)
        VALUES
            ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query,
		b.Name, b.Description, b.Status, b.TenderID, b.OrganizationID, b.CreatorUsername).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return wrapErr(err)
}

func (s *Storage) GetBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	b := &models.Bid{}
	query := `SELECT * FROM bid WHERE id=$1`
	if err := s.db.GetContext(ctx, b, query, id); err != nil {
		return nil, wrapErr(err)
	}
	return b, nil
}

func (s *Storage) GetBidsByCreator(ctx context.Context, username string, limit, offset int) ([]models.Bid, error) {
	query := `
        SELECT * FROM bid
        WHERE creator_username = $1
        ORDER BY created_at ASC
        LIMIT $2 OFFSET $3`
	bids := []models.Bid{}
	if err := s.db.SelectContext(ctx, &bids, query, username, limit, offset); err != nil {
		return nil, wrapErr(err)
	}
	return bids, nil
}

func (s *Storage) GetBidsForTender(ctx context.Context, tenderID uuid.UUID, limit, offset int) ([]models.Bid, error) {
	query := `
        SELECT * FROM bid
        WHERE tender_id = $1
        ORDER BY created_at ASC
        LIMIT $2 OFFSET $3`
	bids := []models.Bid{}
	if err := s.db.SelectContext(ctx, &bids, query, tenderID, limit, offset); err != nil {
		return nil, wrapErr(err)
	}
	return bids, nil
}

func (s *Storage) GetBidVersions(ctx context.Context, bidID uuid.UUID) ([]models.BidVersion, error) {
	query := `
        SELECT * FROM bid_version
        WHERE bid_id = $1
        ORDER BY version DESC`
	versions := []models.BidVersion{}
	if err := s.db.SelectContext(ctx, &versions, query, bidID); err != nil {
		return nil, wrapErr(err)
	}
	return versions, nil
}

func (s *Storage) InBidTx(ctx context.Context, fn func(tx service.BidTx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(&bidTx{tx: tx}); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

type bidTx struct {
	tx *sqlx.Tx
}

func (t *bidTx) LockBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	bid := &models.Bid{}
	query := `SELECT * FROM bid WHERE id=$1 FOR UPDATE`
	if err := t.tx.GetContext(ctx, bid, query, id); err != nil {
		return nil, wrapErr(err)
	}
	return bid, nil
}

func (t *bidTx) MaxBidVersion(ctx context.Context, id uuid.UUID) (int, error) {
	var last int
	query := `SELECT COALESCE(MAX(version), 0) FROM bid_version WHERE bid_id=$1`
	if err := t.tx.GetContext(ctx, &last, query, id); err != nil {
		return 0, wrapErr(err)
	}
	return last, nil
}

func (t *bidTx) InsertBidVersion(ctx context.Context, v *models.BidVersion) error {
	query := `
        INSERT INTO bid_version (bid_id, version, name, description)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at`
	err := t.tx.QueryRowContext(ctx, query, v.BidID, v.Version, v.Name, v.Description).
		Scan(&v.CreatedAt)
	return wrapErr(err)
}

func (t *bidTx) UpdateBidHead(ctx context.Context, bid *models.Bid) error {
	query := `
        UPDATE bid
        SET name=$1, description=$2, status=$3, updated_at=NOW()
        WHERE id=$4
        RETURNING updated_at`
	err := t.tx.QueryRowContext(ctx, query,
		bid.Name, bid.Description, bid.Status, bid.ID).
		Scan(&bid.UpdatedAt)
	return wrapErr(err)
}

func (t *bidTx) GetBidVersion(ctx context.Context, id uuid.UUID, version int) (*models.BidVersion, error) {
	v := &models.BidVersion{}
	query := `SELECT * FROM bid_version WHERE bid_id=$1 AND version=$2`
	if err := t.tx.GetContext(ctx, v, query, id, version); err != nil {
		return nil, wrapErr(err)
	}
	return v, nil
}

// BidReview (отзывы)

func (s *Storage) CreateBidReview(ctx context.Context, r *models.BidReview) error {
	query := `
        INSERT INTO bid_review (bid_id, author_username, content)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	err := s.db.QueryRowContext(ctx, query, r.BidID, r.AuthorUsername, r.Content).
		Scan(&r.ID, &r.CreatedAt)
	return wrapErr(err)
}

// GetBidReviews — тройной фильтр: тендер предложения, организация
// предложения и автор отзыва должны совпасть одновременно.
func (s *Storage) GetBidReviews(ctx context.Context, tenderID uuid.UUID, authorUsername string, organizationID uuid.UUID) ([]models.BidReview, error) {
	query := `
        SELECT r.*
        FROM bid_review r
        JOIN bid b ON r.bid_id = b.id
        WHERE b.tender_id = $1 AND r.author_username = $2 AND b.organization_id = $3
        ORDER BY r.created_at ASC`
	reviews := []models.BidReview{}
	if err := s.db.SelectContext(ctx, &reviews, query, tenderID, authorUsername, organizationID); err != nil {
		return nil, wrapErr(err)
	}
	return reviews, nil
}
