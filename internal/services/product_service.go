package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stockroom/internal/domain"
	"stockroom/internal/repos"
	"stockroom/internal/validate"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("product not found")

// ValidationError names the field that failed so handlers can surface it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error { return &ValidationError{Field: field, Reason: reason} }

// ProductInput carries the fields a client may set on create.
type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	SKU         string  `json:"sku"`
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	SKU         *string  `json:"sku"`
}

type ProductService struct {
	Prods *repos.ProductRepo
}

func NewProductService(prods *repos.ProductRepo) *ProductService {
	return &ProductService{Prods: prods}
}

func (s *ProductService) List() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *ProductService) Get(id string) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

func (s *ProductService) Create(in ProductInput) (domain.Product, error) {
	name, ok := validate.ProductName(in.Name)
	if !ok {
		return domain.Product{}, invalid("name", "required, at most 100 characters")
	}
	if in.Price < 0 {
		return domain.Product{}, invalid("price", "must be >= 0")
	}
	if in.Quantity < 0 {
		return domain.Product{}, invalid("quantity", "must be >= 0")
	}
	desc, ok := validate.Description(in.Description)
	if !ok {
		return domain.Product{}, invalid("description", "at most 500 characters")
	}
	category := in.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	now := time.Now().UTC().Format(time.RFC3339)
	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Description: desc,
		Category:    category,
		SKU:         in.SKU,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Prods.Insert(&p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Update merges the patch into the stored record and refreshes updated_at.
// Concurrent updates to the same product are last-write-wins.
func (s *ProductService) Update(id string, patch ProductPatch) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}

	if patch.Name != nil {
		name, ok := validate.ProductName(*patch.Name)
		if !ok {
			return domain.Product{}, invalid("name", "required, at most 100 characters")
		}
		p.Name = name
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return domain.Product{}, invalid("price", "must be >= 0")
		}
		p.Price = *patch.Price
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return domain.Product{}, invalid("quantity", "must be >= 0")
		}
		p.Quantity = *patch.Quantity
	}
	if patch.Description != nil {
		desc, ok := validate.Description(*patch.Description)
		if !ok {
			return domain.Product{}, invalid("description", "at most 500 characters")
		}
		p.Description = desc
	}
	if patch.Category != nil && *patch.Category != "" {
		p.Category = *patch.Category
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	n, err := s.Prods.Update(&p)
	if err != nil {
		return domain.Product{}, err
	}
	if n == 0 {
		// Deleted between read and write.
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *ProductService) Delete(id string) error {
	n, err := s.Prods.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
