package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы тендера (единый канонический набор)
const (
	TenderStatusCreated   = "Created"
	TenderStatusPublished = "Published"
	TenderStatusClosed    = "Closed"
)

// Статусы предложения
const (
	BidStatusSubmitted = "Submitted"
	BidStatusPublished = "Published"
	BidStatusCanceled  = "Canceled"
)

// Виды услуг тендера; пустое значение допустимо
const (
	ServiceTypeConstruction = "Construction"
	ServiceTypeDelivery     = "Delivery"
	ServiceTypeManufacture  = "Manufacture"
)

func IsValidTenderStatus(s string) bool {
	switch s {
	case TenderStatusCreated, TenderStatusPublished, TenderStatusClosed:
		return true
	}
	return false
}

func IsValidBidStatus(s string) bool {
	switch s {
	case BidStatusSubmitted, BidStatusPublished, BidStatusCanceled:
		return true
	}
	return false
}

func IsValidServiceType(s string) bool {
	switch s {
	case "", ServiceTypeConstruction, ServiceTypeDelivery, ServiceTypeManufacture:
		return true
	}
	return false
}

// Сущность Тендера (текущее состояние, head)
type Tender struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name" validate:"required,max=100"`
	Description     string    `db:"description" json:"description" validate:"required,max=500"`
	ServiceType     string    `db:"service_type" json:"serviceType" validate:"omitempty,oneof=Construction Delivery Manufacture"`
	Status          string    `db:"status" json:"status" validate:"required,oneof=Created Published Closed"`
	OrganizationID  uuid.UUID `db:"organization_id" json:"organizationId" validate:"required"`
	CreatorUsername string    `db:"creator_username" json:"creatorUsername" validate:"required"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// Версия тендера — неизменяемый снимок редактируемых полей head
type TenderVersion struct {
	TenderID    uuid.UUID `db:"tender_id" json:"tenderId"`
	Version     int       `db:"version" json:"version"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Сущность Предложения
type Bid struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name" validate:"required,max=100"`
	Description     string    `db:"description" json:"description" validate:"required,max=500"`
	Status          string    `db:"status" json:"status" validate:"required,oneof=Submitted Published Canceled"`
	TenderID        uuid.UUID `db:"tender_id" json:"tenderId" validate:"required"`
	OrganizationID  uuid.UUID `db:"organization_id" json:"organizationId" validate:"required"`
	CreatorUsername string    `db:"creator_username" json:"creatorUsername" validate:"required"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// Версия предложения
type BidVersion struct {
	BidID       uuid.UUID `db:"bid_id" json:"bidId"`
	Version     int       `db:"version" json:"version"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Сущность Отзыва — только добавление, без версий
type BidReview struct {
	ID             uuid.UUID `db:"id" json:"id"`
	BidID          uuid.UUID `db:"bid_id" json:"bidId"`
	AuthorUsername string    `db:"author_username" json:"authorUsername"`
	Content        string    `db:"content" json:"content" validate:"required,max=1000"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// Сотрудник — создатель тендеров (отдельное пространство имен от User)
type Employee struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// Пользователь — автор предложений и отзывов
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// Сущность Организации
type Organization struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Type        string    `db:"type" json:"type"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}
