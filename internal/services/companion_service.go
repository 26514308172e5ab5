package services

import (
	"context"
	"sort"
	"time"

	"frebud/internal/models/domain_models"
	"frebud/internal/models/request_models"
	"frebud/internal/models/response_models"
	"frebud/internal/repositories"
	"frebud/pkg/utils"
)

// Simulated latencies per operation.
const (
	companionListDelay    = 700 * time.Millisecond
	companionLookupDelay  = 300 * time.Millisecond
	companionRequestDelay = 800 * time.Millisecond
	companionMatchDelay   = 600 * time.Millisecond
	companionReportDelay  = 400 * time.Millisecond
)

// Match score weights. The score only ranks the list; its absolute
// value carries no meaning.
const (
	matchRatingWeight  = 2.0
	matchStyleBonus    = 3.0
	matchBudgetBonus   = 2.0
	matchInterestBonus = 1.0
	matchLanguageBonus = 0.5
	matchResultLimit   = 10
)

type CompanionServiceInterface interface {
	FetchCompanions(filters request_models.CompanionFilters, ctx context.Context) ([]domain_models.Companion, error)
	FetchCompanionByID(id string, ctx context.Context) (domain_models.Companion, error)
	SendCompanionRequest(id string, message string, ctx context.Context) (response_models.CompanionRequestAck, error)
	GetMatchingCompanions(prefs domain_models.TravelPreferences, ctx context.Context) ([]domain_models.ScoredCompanion, error)
	ReportCompanion(id string, reason string, ctx context.Context) (response_models.ReportCompanionAck, error)
}

type CompanionService struct {
	companionRepo repositories.CompanionRepository
	delayer       Delayer
}

func NewCompanionService(companionRepo repositories.CompanionRepository, delayer Delayer) CompanionServiceInterface {
	return &CompanionService{
		companionRepo: companionRepo,
		delayer:       delayer,
	}
}

func (s *CompanionService) FetchCompanions(filters request_models.CompanionFilters, ctx context.Context) ([]domain_models.Companion, error) {
	if err := s.delayer.Wait(ctx, companionListDelay); err != nil {
		return nil, err
	}

	filtered := make([]domain_models.Companion, 0)
	for _, companion := range s.companionRepo.List() {
		if filters.Destination != "" && !containsFold(companion.Destination, filters.Destination) {
			continue
		}
		if filterActive(filters.TravelStyle) && companion.TravelStyle != filters.TravelStyle {
			continue
		}
		if filterActive(filters.Budget) && companion.Budget != filters.Budget {
			continue
		}
		if len(filters.Languages) > 0 && !anyOverlap(companion.Languages, filters.Languages) {
			continue
		}
		filtered = append(filtered, companion)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Rating > filtered[j].Rating
	})

	return filtered, nil
}

func (s *CompanionService) FetchCompanionByID(id string, ctx context.Context) (domain_models.Companion, error) {
	if err := s.delayer.Wait(ctx, companionLookupDelay); err != nil {
		return domain_models.Companion{}, err
	}

	companion := s.companionRepo.GetByID(id)
	if companion == nil {
		return domain_models.Companion{}, utils.ErrCompanionNotFound
	}
	return *companion, nil
}

func (s *CompanionService) SendCompanionRequest(id string, message string, ctx context.Context) (response_models.CompanionRequestAck, error) {
	if err := s.delayer.Wait(ctx, companionRequestDelay); err != nil {
		return response_models.CompanionRequestAck{}, err
	}

	return response_models.CompanionRequestAck{
		Success:     true,
		CompanionID: id,
		Message:     message,
		Status:      "sent",
		Timestamp:   time.Now().UTC(),
	}, nil
}

func (s *CompanionService) GetMatchingCompanions(prefs domain_models.TravelPreferences, ctx context.Context) ([]domain_models.ScoredCompanion, error) {
	if err := s.delayer.Wait(ctx, companionMatchDelay); err != nil {
		return nil, err
	}

	scored := make([]domain_models.ScoredCompanion, 0)
	for _, companion := range s.companionRepo.List() {
		scored = append(scored, domain_models.ScoredCompanion{
			Companion:  companion,
			MatchScore: MatchScore(companion, prefs),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if len(scored) > matchResultLimit {
		scored = scored[:matchResultLimit]
	}
	return scored, nil
}

func (s *CompanionService) ReportCompanion(id string, reason string, ctx context.Context) (response_models.ReportCompanionAck, error) {
	if err := s.delayer.Wait(ctx, companionReportDelay); err != nil {
		return response_models.ReportCompanionAck{}, err
	}

	return response_models.ReportCompanionAck{
		Success:     true,
		CompanionID: id,
		Reason:      reason,
		Timestamp:   time.Now().UTC(),
	}, nil
}

// MatchScore is the companion compatibility heuristic: a rating base
// plus flat bonuses for style and budget matches and per-item bonuses
// for shared interests and languages.
func MatchScore(companion domain_models.Companion, prefs domain_models.TravelPreferences) float64 {
	score := companion.Rating * matchRatingWeight

	if prefs.TravelStyle != "" && prefs.TravelStyle == companion.TravelStyle {
		score += matchStyleBonus
	}
	if prefs.Budget != "" && prefs.Budget == companion.Budget {
		score += matchBudgetBonus
	}
	score += float64(sharedCount(prefs.Interests, companion.Interests)) * matchInterestBonus
	score += float64(sharedCount(prefs.Languages, companion.Languages)) * matchLanguageBonus

	return score
}
