package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNameRequired     = errors.New("service name is required")
	ErrCategoryRequired = errors.New("service category is required")
	ErrNegativePrice    = errors.New("price must not be negative")
)

type Service struct {
	id          uuid.UUID
	name        string
	category    string
	price       decimal.Decimal
	unit        string
	description string
	imageURL    string
	createdBy   string
	createdAt   time.Time
	updatedAt   time.Time
}

type Details struct {
	Name        string
	Category    string
	Price       decimal.Decimal
	Unit        string
	Description string
	ImageURL    string
}

func (d Details) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(d.Category) == "" {
		return ErrCategoryRequired
	}
	if d.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

func NewService(d Details, createdBy string, now time.Time) (*Service, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	s := &Service{id: uuid.New(), createdBy: createdBy, createdAt: now}
	s.apply(d, now)
	return s, nil
}

func ReconstructService(id uuid.UUID, d Details, createdBy string, createdAt, updatedAt time.Time) *Service {
	s := &Service{id: id, createdBy: createdBy, createdAt: createdAt}
	s.apply(d, updatedAt)
	return s
}

// Revise replaces the editable details.
func (s *Service) Revise(d Details, now time.Time) error {
	if err := d.validate(); err != nil {
		return err
	}
	s.apply(d, now)
	return nil
}

func (s *Service) apply(d Details, now time.Time) {
	s.name = strings.TrimSpace(d.Name)
	s.category = strings.TrimSpace(d.Category)
	s.price = d.Price
	s.unit = d.Unit
	s.description = d.Description
	s.imageURL = d.ImageURL
	s.updatedAt = now
}

func (s *Service) ID() uuid.UUID          { return s.id }
func (s *Service) Name() string           { return s.name }
func (s *Service) Category() string       { return s.category }
func (s *Service) Price() decimal.Decimal { return s.price }
func (s *Service) Unit() string           { return s.unit }
func (s *Service) Description() string    { return s.description }
func (s *Service) ImageURL() string       { return s.imageURL }
func (s *Service) CreatedBy() string      { return s.createdBy }
func (s *Service) CreatedAt() time.Time   { return s.createdAt }
func (s *Service) UpdatedAt() time.Time   { return s.updatedAt }

func (s *Service) Details() Details {
	return Details{
		Name:        s.name,
		Category:    s.category,
		Price:       s.price,
		Unit:        s.unit,
		Description: s.description,
		ImageURL:    s.imageURL,
	}
}
