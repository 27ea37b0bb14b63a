package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tenderhub/internal/service"
	"tenderhub/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Storage реализует service.Storage поверх Postgres
type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// wrapErr переводит ошибки драйвера в таксономию ядра: промах по строке —
// ErrNotFound, нарушение уникальности (entity_id, version) — ErrConflict,
// нарушение внешнего ключа — ErrValidation.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return service.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return fmt.Errorf("%w: %s", service.ErrConflict, pqErr.Constraint)
		case "foreign_key_violation":
			return fmt.Errorf("%w: %s", service.ErrValidation, pqErr.Constraint)
		}
	}
	return err
}

// Employee (создатели тендеров)

func (s *Storage) CreateEmployee(ctx context.Context, e *models.Employee) error {
	query := `
        INSERT INTO employee (username, first_name, last_name)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query, e.Username, e.FirstName, e.LastName).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return wrapErr(err)
}

func (s *Storage) GetEmployeeByUsername(ctx context.Context, username string) (*models.Employee, error) {
	e := &models.Employee{}
	query := `SELECT * FROM employee WHERE username=$1`
	if err := s.db.GetContext(ctx, e, query, username); err != nil {
		return nil, wrapErr(err)
	}
	return e, nil
}

// User (авторы предложений и отзывов — отдельное от сотрудников
// пространство имен)

func (s *Storage) CreateUser(ctx context.Context, u *models.User) error {
	query := `
        INSERT INTO app_user (username, first_name, last_name)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query, u.Username, u.FirstName, u.LastName).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	return wrapErr(err)
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u := &models.User{}
	query := `SELECT * FROM app_user WHERE username=$1`
	if err := s.db.GetContext(ctx, u, query, username); err != nil {
		return nil, wrapErr(err)
	}
	return u, nil
}

// Organization

func (s *Storage) CreateOrganization(ctx context.Context, o *models.Organization) error {
	query := `
        INSERT INTO organization (name, description, type)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query, o.Name, o.Description, o.Type).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	return wrapErr(err)
}

func (s *Storage) GetOrganization(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	o := &models.Organization{}
	query := `SELECT * FROM organization WHERE id=$1`
	if err := s.db.GetContext(ctx, o, query, id); err != nil {
		return nil, wrapErr(err)
	}
	return o, nil
}

// IsUserResponsibleForOrganization — справочная связка «ответственный за
// организацию». Ядро ее не применяет (проверка владения тендером —
// открытый вопрос продукта), лукап отдан внешнему слою авторизации.
func (s *Storage) IsUserResponsibleForOrganization(ctx context.Context, employeeID, orgID uuid.UUID) (bool, error) {
	var count int
	query := `SELECT COUNT(1) FROM organization_responsible WHERE employee_id=$1 AND organization_id=$2`
	if err := s.db.GetContext(ctx, &count, query, employeeID, orgID); err != nil {
		return false, wrapErr(err)
	}
	return count > 0, nil
}
