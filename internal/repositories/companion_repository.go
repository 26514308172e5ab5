package repositories

import (
	"slices"

	"frebud/internal/models/domain_models"
)

type CompanionRepository interface {
	List() []domain_models.Companion
	GetByID(id string) *domain_models.Companion
}

type companionRepository struct {
	companions []domain_models.Companion
}

func NewCompanionRepository(companions []domain_models.Companion) CompanionRepository {
	return &companionRepository{companions: companions}
}

func (r *companionRepository) List() []domain_models.Companion {
	return slices.Clone(r.companions)
}

func (r *companionRepository) GetByID(id string) *domain_models.Companion {
	for _, c := range r.companions {
		if c.ID == id {
			companion := c
			return &companion
		}
	}
	return nil
}
