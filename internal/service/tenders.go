package service

import (
	"context"
	"errors"
	"fmt"

	"tenderhub/models"

	"github.com/google/uuid"
)

type CreateTenderInput struct {
	Name            string
	Description     string
	ServiceType     string
	Status          string
	OrganizationID  uuid.UUID
	CreatorUsername string
}

// TenderPatch — частичное обновление: nil-поля сохраняют текущее значение
type TenderPatch struct {
	Name        *string
	Description *string
	ServiceType *string
	Status      *string
}

// CreateTender создает тендер. Организация и сотрудник-создатель должны
// существовать до вставки, иначе ErrValidation — создание не применяется
// частично. Версии при создании не пишутся: счетчик начинается с первой
// правки.
func (s *Service) CreateTender(ctx context.Context, in CreateTenderInput) (*models.Tender, error) {
	if in.Status == "" {
		in.Status = models.TenderStatusCreated
	}
	if !models.IsValidTenderStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown tender status %q", ErrValidation, in.Status)
	}
	if !models.IsValidServiceType(in.ServiceType) {
		return nil, fmt.Errorf("%w: unknown service type %q", ErrValidation, in.ServiceType)
	}

	if _, err := s.store.GetOrganization(ctx, in.OrganizationID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: organization %s not found", ErrValidation, in.OrganizationID)
		}
		return nil, err
	}
	if _, err := s.store.GetEmployeeByUsername(ctx, in.CreatorUsername); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: employee %q not found", ErrValidation, in.CreatorUsername)
		}
		return nil, err
	}

	t := &models.Tender{
		Name:            in.Name,
		Description:     in.Description,
		ServiceType:     in.ServiceType,
		Status:          in.Status,
		OrganizationID:  in.OrganizationID,
		CreatorUsername: in.CreatorUsername,
	}
	if err := s.store.CreateTender(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) GetTender(ctx context.Context, id uuid.UUID) (*models.Tender, error) {
	return s.store.GetTender(ctx, id)
}

func (s *Service) ListTenders(ctx context.Context, serviceTypes []string, limit, offset int) ([]models.Tender, error) {
	return s.store.GetTenders(ctx, serviceTypes, limit, offset)
}

func (s *Service) ListTendersByCreator(ctx context.Context, username string, limit, offset int) ([]models.Tender, error) {
	return s.store.GetTendersByCreator(ctx, username, limit, offset)
}

// UpdateTender выполняет правку в одной транзакции: сначала снимок
// текущих name/description в новую версию (max+1, с 1 если версий нет),
// затем слияние patch поверх head. Порядок важен: head без снимка
// означал бы потерю точки отката, обратное — лишь недостижимый снимок.
func (s *Service) UpdateTender(ctx context.Context, id uuid.UUID, patch TenderPatch) (*models.Tender, error) {
	if patch.Status != nil && !models.IsValidTenderStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: unknown tender status %q", ErrValidation, *patch.Status)
	}
	if patch.ServiceType != nil && !models.IsValidServiceType(*patch.ServiceType) {
		return nil, fmt.Errorf("%w: unknown service type %q", ErrValidation, *patch.ServiceType)
	}

	var updated *models.Tender
	err := s.store.InTenderTx(ctx, func(tx TenderTx) error {
		head, err := tx.LockTender(ctx, id)
		if err != nil {
			return err
		}
		last, err := tx.MaxTenderVersion(ctx, id)
		if err != nil {
			return err
		}
		snapshot := &models.TenderVersion{
			TenderID:    id,
			Version:     last + 1,
			Name:        head.Name,
			Description: head.Description,
		}
		if err := tx.InsertTenderVersion(ctx, snapshot); err != nil {
			return err
		}
		if patch.Name != nil {
			head.Name = *patch.Name
		}
		if patch.Description != nil {
			head.Description = *patch.Description
		}
		if patch.ServiceType != nil {
			head.ServiceType = *patch.ServiceType
		}
		if patch.Status != nil {
			head.Status = *patch.Status
		}
		if err := tx.UpdateTenderHead(ctx, head); err != nil {
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

// RollbackTender восстанавливает head из версии version. Новая версия при
// этом не пишется: повторный откат к той же версии дает тот же результат,
// а журнал версий не растет и не сокращается.
func (s *Service) RollbackTender(ctx context.Context, id uuid.UUID, version int) (*models.Tender, error) {
	var updated *models.Tender
	err := s.store.InTenderTx(ctx, func(tx TenderTx) error {
		head, err := tx.LockTender(ctx, id)
		if err != nil {
			return err
		}
		v, err := tx.GetTenderVersion(ctx, id, version)
		if err != nil {
			return err
		}
		head.Name = v.Name
		head.Description = v.Description
		if err := tx.UpdateTenderHead(ctx, head); err != nil {
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

// ListTenderVersions возвращает историю правок, новые сверху
func (s *Service) ListTenderVersions(ctx context.Context, id uuid.UUID) ([]models.TenderVersion, error) {
	if _, err := s.store.GetTender(ctx, id); err != nil {
		return nil, err
	}
	return s.store.GetTenderVersions(ctx, id)
}
