package repositories

import (
	"slices"

	"frebud/internal/models/domain_models"
)

type DestinationRepository interface {
	List() []domain_models.Destination
	GetByID(id string) *domain_models.Destination
}

type destinationRepository struct {
	destinations []domain_models.Destination
}

func NewDestinationRepository(destinations []domain_models.Destination) DestinationRepository {
	return &destinationRepository{destinations: destinations}
}

func (r *destinationRepository) List() []domain_models.Destination {
	return slices.Clone(r.destinations)
}

func (r *destinationRepository) GetByID(id string) *domain_models.Destination {
	for _, d := range r.destinations {
		if d.ID == id {
			destination := d
			return &destination
		}
	}
	return nil
}
