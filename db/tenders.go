package db

import (
	"context"
	"fmt"
	"strings"

	"tenderhub/internal/service"
	"tenderhub/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func (s *Storage) CreateTender(ctx context.Context, t *models.Tender) error {
	query := `
        INSERT INTO tender
            (name, description, service_type, status, organization_id, creator_username)
        VALUES
            ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query,
		t.Name, t.Description, t.ServiceType, t.Status, t.OrganizationID, t.CreatorUsername).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return wrapErr(err)
}

func (s *Storage) GetTender(ctx context.Context, id uuid.UUID) (*models.Tender, error) {
	t := &models.Tender{}
	query := `SELECT * FROM tender WHERE id=$1`
	if err := s.db.GetContext(ctx, t, query, id); err != nil {
		return nil, wrapErr(err)
	}
	return t, nil
}

func (s *Storage) GetTenders(ctx context.Context, serviceTypes []string, limit, offset int) ([]models.Tender, error) {
	baseQuery := `SELECT * FROM tender`
	var args []interface{}
	filter := ""

	if len(serviceTypes) > 0 {
		placeholders := make([]string, len(serviceTypes))
		for i := range serviceTypes {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}
		filter = fmt.Sprintf(" WHERE service_type IN (%s)", strings.Join(placeholders, ", "))
		for _, v := range serviceTypes {
			args = append(args, v)
		}
	}

	// Порядок вставки, стабильный для пагинации
	query := baseQuery + filter + " ORDER BY created_at ASC"
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	tenders := []models.Tender{}
	if err := s.db.SelectContext(ctx, &tenders, query, args...); err != nil {
		return nil, wrapErr(err)
	}
	return tenders, nil
}

func (s *Storage) GetTendersByCreator(ctx context.Context, username string, limit, offset int) ([]models.Tender, error) {
	query := `
        SELECT * FROM tender
        WHERE creator_username = $1
        ORDER BY created_at ASC
        LIMIT $2 OFFSET $3`
	tenders := []models.Tender{}
	if err := s.db.SelectContext(ctx, &tenders, query, username, limit, offset); err != nil {
		return nil, wrapErr(err)
	}
	return tenders, nil
}

// GetTenderVersions — история правок, новые версии первыми
func (s *Storage) GetTenderVersions(ctx context.Context, tenderID uuid.UUID) ([]models.TenderVersion, error) {
	query := `
        SELECT * FROM tender_version
        WHERE tender_id = $1
        ORDER BY version DESC`
	versions := []models.TenderVersion{}
	if err := s.db.SelectContext(ctx, &versions, query, tenderID); err != nil {
		return nil, wrapErr(err)
	}
	return versions, nil
}

// InTenderTx выполняет fn в одной транзакции: либо снимок и правка head
// применяются вместе, либо не применяется ничего.
func (s *Storage) InTenderTx(ctx context.Context, fn func(tx service.TenderTx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(&tenderTx{tx: tx}); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

type tenderTx struct {
	tx *sqlx.Tx
}

// LockTender читает head с блокировкой строки до конца транзакции:
// конкурентные правки одного тендера сериализуются здесь.
func (t *tenderTx) LockTender(ctx context.Context, id uuid.UUID) (*models.Tender, error) {
	tender := &models.Tender{}
	query := `SELECT * FROM tender WHERE id=$1 FOR UPDATE`
	if err := t.tx.GetContext(ctx, tender, query, id); err != nil {
		return nil, wrapErr(err)
	}
	return tender, nil
}

func (t *tenderTx) MaxTenderVersion(ctx context.Context, id uuid.UUID) (int, error) {
	var last int
	query := `SELECT COALESCE(MAX(version), 0) FROM tender_version WHERE tender_id=$1`
	if err := t.tx.GetContext(ctx, &last, query, id); err != nil {
		return 0, wrapErr(err)
	}
	return last, nil
}

func (t *tenderTx) InsertTenderVersion(ctx context.Context, v *models.TenderVersion) error {
	query := `
        INSERT INTO tender_version (tender_id, version, name, description)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at`
	err := t.tx.QueryRowContext(ctx, query, v.TenderID, v.Version, v.Name, v.Description).
		Scan(&v.CreatedAt)
	return wrapErr(err)
}

func (t *tenderTx) UpdateTenderHead(ctx context.Context, tender *models.Tender) error {
	query := `
        UPDATE tender
        SET name=$1, description=$2, service_type=$3, status=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING updated_at`
	err := t.tx.QueryRowContext(ctx, query,
		tender.Name, tender.Description, tender.ServiceType, tender.Status, tender.ID).
		Scan(&tender.UpdatedAt)
	return wrapErr(err)
}

func (t *tenderTx) GetTenderVersion(ctx context.Context, id uuid.UUID, version int) (*models.TenderVersion, error) {
	v := &models.TenderVersion{}
	query := `SELECT * FROM tender_version WHERE tender_id=$1 AND version=$2`
	if err := t.tx.GetContext(ctx, v, query, id, version); err != nil {
		return nil, wrapErr(err)
	}
	return v, nil
}
