package service

import (
	"context"
	"errors"

	"github.com/jameszjgao/vouchap-crm/internal/domain"
	"github.com/jameszjgao/vouchap-crm/internal/repository"
)

var ErrInvalidSkuInput = errors.New("invalid sku input")

// SkuService maintains the edition and add-on catalogs.
type SkuService struct {
	skus repository.SkuRepository
}

func NewSkuService(skus repository.SkuRepository) *SkuService {
	return &SkuService{skus: skus}
}

func (s *SkuService) ListEditions(_ context.Context) ([]domain.SkuEdition, error) {
	return s.skus.ListEditions()
}

func (s *SkuService) CreateEdition(_ context.Context, e *domain.SkuEdition) error {
	if e.Code == "" || e.Name == "" || e.PriceCents < 0 {
		return ErrInvalidSkuInput
	}
	return s.skus.CreateEdition(e)
}

func (s *SkuService) UpdateEdition(_ context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return ErrInvalidSkuInput
	}
	return s.skus.UpdateEdition(id, fields)
}

func (s *SkuService) DeleteEdition(_ context.Context, id uint) error {
	return s.skus.DeleteEdition(id)
}

func (s *SkuService) ListAddons(_ context.Context) ([]domain.SkuAddon, error) {
	return s.skus.ListAddons()
}

func (s *SkuService) CreateAddon(_ context.Context, a *domain.SkuAddon) error {
	if a.Code == "" || a.Name == "" || a.PriceCents < 0 {
		return ErrInvalidSkuInput
	}
	return s.skus.CreateAddon(a)
}

func (s *SkuService) UpdateAddon(_ context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return ErrInvalidSkuInput
	}
	return s.skus.UpdateAddon(id, fields)
}

func (s *SkuService) DeleteAddon(_ context.Context, id uint) error {
	return s.skus.DeleteAddon(id)
}
