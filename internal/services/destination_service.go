package services

import (
	"context"
	"sort"
	"time"

	"frebud/internal/models/domain_models"
	"frebud/internal/models/request_models"
	"frebud/internal/repositories"
	"frebud/pkg/utils"
)

const (
	destinationListDelay      = 600 * time.Millisecond
	destinationLookupDelay    = 300 * time.Millisecond
	destinationSearchDelay    = 400 * time.Millisecond
	destinationPopularDelay   = 400 * time.Millisecond
	destinationRecommendDelay = 500 * time.Millisecond
)

const (
	destinationSearchMinQuery = 2
	destinationSearchLimit    = 10
	destinationPopularLimit   = 6
	destinationRecommendLimit = 8
)

type DestinationServiceInterface interface {
	FetchDestinations(filters request_models.DestinationFilters, ctx context.Context) ([]domain_models.Destination, error)
	FetchDestinationByID(id string, ctx context.Context) (domain_models.Destination, error)
	SearchDestinations(query string, ctx context.Context) ([]domain_models.Destination, error)
	GetPopularDestinations(ctx context.Context) ([]domain_models.Destination, error)
	GetRecommendedDestinations(interests []string, ctx context.Context) ([]domain_models.ScoredDestination, error)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	delayer         Delayer
}

func NewDestinationService(destinationRepo repositories.DestinationRepository, delayer Delayer) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		delayer:         delayer,
	}
}

func (s *DestinationService) FetchDestinations(filters request_models.DestinationFilters, ctx context.Context) ([]domain_models.Destination, error) {
	if err := s.delayer.Wait(ctx, destinationListDelay); err != nil {
		return nil, err
	}

	filtered := make([]domain_models.Destination, 0)
	for _, dest := range s.destinationRepo.List() {
		if filterActive(filters.Category) && dest.Category != filters.Category {
			continue
		}
		if filterActive(filters.Budget) && dest.Budget != filters.Budget {
			continue
		}
		if filters.Search != "" &&
			!containsFold(dest.Name, filters.Search) &&
			!containsFold(dest.Country, filters.Search) &&
			!containsFold(dest.Description, filters.Search) {
			continue
		}
		filtered = append(filtered, dest)
	}

	sortByRating(filtered)
	return filtered, nil
}

func (s *DestinationService) FetchDestinationByID(id string, ctx context.Context) (domain_models.Destination, error) {
	if err := s.delayer.Wait(ctx, destinationLookupDelay); err != nil {
		return domain_models.Destination{}, err
	}

	dest := s.destinationRepo.GetByID(id)
	if dest == nil {
		return domain_models.Destination{}, utils.ErrDestinationNotFound
	}
	return *dest, nil
}

func (s *DestinationService) SearchDestinations(query string, ctx context.Context) ([]domain_models.Destination, error) {
	if err := s.delayer.Wait(ctx, destinationSearchDelay); err != nil {
		return nil, err
	}

	if len(query) < destinationSearchMinQuery {
		return []domain_models.Destination{}, nil
	}

	results := make([]domain_models.Destination, 0)
	for _, dest := range s.destinationRepo.List() {
		if containsFold(dest.Name, query) ||
			containsFold(dest.Country, query) ||
			anyActivityContains(dest.Activities, query) {
			results = append(results, dest)
		}
		if len(results) == destinationSearchLimit {
			break
		}
	}
	return results, nil
}

func (s *DestinationService) GetPopularDestinations(ctx context.Context) ([]domain_models.Destination, error) {
	if err := s.delayer.Wait(ctx, destinationPopularDelay); err != nil {
		return nil, err
	}

	top := s.destinationRepo.List()
	sortByRating(top)
	if len(top) > destinationPopularLimit {
		top = top[:destinationPopularLimit]
	}
	return top, nil
}

func (s *DestinationService) GetRecommendedDestinations(interests []string, ctx context.Context) ([]domain_models.ScoredDestination, error) {
	if err := s.delayer.Wait(ctx, destinationRecommendDelay); err != nil {
		return nil, err
	}

	if len(interests) == 0 {
		popular := s.destinationRepo.List()
		sortByRating(popular)
		if len(popular) > destinationPopularLimit {
			popular = popular[:destinationPopularLimit]
		}
		scored := make([]domain_models.ScoredDestination, 0, len(popular))
		for _, dest := range popular {
			scored = append(scored, domain_models.ScoredDestination{Destination: dest})
		}
		return scored, nil
	}

	scored := make([]domain_models.ScoredDestination, 0)
	for _, dest := range s.destinationRepo.List() {
		scored = append(scored, domain_models.ScoredDestination{
			Destination: dest,
			Score:       DestinationScore(dest, interests),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > destinationRecommendLimit {
		scored = scored[:destinationRecommendLimit]
	}
	return scored, nil
}

// DestinationScore weights the activity/interest overlap by the
// destination's own rating, so equally-matched places rank by quality.
func DestinationScore(dest domain_models.Destination, interests []string) float64 {
	return float64(crossMatchCount(dest.Activities, interests)) * dest.Rating
}

func sortByRating(destinations []domain_models.Destination) {
	sort.SliceStable(destinations, func(i, j int) bool {
		return destinations[i].Rating > destinations[j].Rating
	})
}

func anyActivityContains(activities []string, query string) bool {
	for _, activity := range activities {
		if containsFold(activity, query) {
			return true
		}
	}
	return false
}
