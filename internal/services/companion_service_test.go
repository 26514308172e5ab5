package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frebud/internal/models/domain_models"
	"frebud/internal/models/request_models"
	"frebud/internal/repositories"
	"frebud/pkg/utils"
)

func testCompanions() []domain_models.Companion {
	return []domain_models.Companion{
		{
			ID:          "c1",
			Username:    "maria_wanderlust",
			Destination: "Bali, Indonesia",
			TravelStyle: domain_models.StyleAdventure,
			Budget:      domain_models.BudgetMedium,
			Rating:      4.8,
			Languages:   []string{"English", "Spanish"},
			Interests:   []string{"hiking", "photography", "food"},
		},
		{
			ID:          "c2",
			Username:    "kenji_explorer",
			Destination: "Tokyo, Japan",
			TravelStyle: domain_models.StyleCultural,
			Budget:      domain_models.BudgetHigh,
			Rating:      4.9,
			Languages:   []string{"Japanese", "English"},
			Interests:   []string{"temples", "food"},
		},
		{
			ID:          "c3",
			Username:    "lena_beachlife",
			Destination: "Lisbon, Portugal",
			TravelStyle: domain_models.StyleRelaxation,
			Budget:      domain_models.BudgetLow,
			Rating:      4.5,
			Languages:   []string{"Portuguese"},
			Interests:   []string{"surfing", "beaches"},
		},
	}
}

func newTestCompanionService() CompanionServiceInterface {
	repo := repositories.NewCompanionRepository(testCompanions())
	return NewCompanionService(repo, NewNoDelayer())
}

func TestFetchCompanions_Filters(t *testing.T) {
	svc := newTestCompanionService()

	tests := []struct {
		name    string
		filters request_models.CompanionFilters
		wantIDs []string
	}{
		{
			name:    "no filters returns all sorted by rating",
			filters: request_models.CompanionFilters{},
			wantIDs: []string{"c2", "c1", "c3"},
		},
		{
			name:    "all sentinel disables a filter",
			filters: request_models.CompanionFilters{TravelStyle: "all", Budget: "all"},
			wantIDs: []string{"c2", "c1", "c3"},
		},
		{
			name:    "destination is a case-insensitive substring",
			filters: request_models.CompanionFilters{Destination: "bali"},
			wantIDs: []string{"c1"},
		},
		{
			name:    "style and budget combine as AND",
			filters: request_models.CompanionFilters{TravelStyle: domain_models.StyleAdventure, Budget: domain_models.BudgetHigh},
			wantIDs: []string{},
		},
		{
			name:    "language overlap keeps any shared speaker",
			filters: request_models.CompanionFilters{Languages: []string{"English"}},
			wantIDs: []string{"c2", "c1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.FetchCompanions(tt.filters, context.Background())
			require.NoError(t, err)

			gotIDs := make([]string, 0, len(got))
			for _, c := range got {
				gotIDs = append(gotIDs, c.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFetchCompanionByID(t *testing.T) {
	svc := newTestCompanionService()

	companion, err := svc.FetchCompanionByID("c2", context.Background())
	require.NoError(t, err)
	assert.Equal(t, "kenji_explorer", companion.Username)

	_, err = svc.FetchCompanionByID("nope", context.Background())
	assert.ErrorIs(t, err, utils.ErrCompanionNotFound)
}

func TestMatchScore_Weights(t *testing.T) {
	companion := domain_models.Companion{
		Rating:      4.0,
		TravelStyle: domain_models.StyleAdventure,
		Budget:      domain_models.BudgetMedium,
		Interests:   []string{"hiking", "food", "photography"},
		Languages:   []string{"English", "Spanish"},
	}

	prefs := domain_models.TravelPreferences{
		TravelStyle: domain_models.StyleAdventure,
		Budget:      domain_models.BudgetMedium,
		Interests:   []string{"hiking", "food"},
		Languages:   []string{"English"},
	}

	// rating*2 + style 3 + budget 2 + 2 interests + 0.5 language
	assert.InDelta(t, 15.5, MatchScore(companion, prefs), 1e-9)

	// Empty preference fields contribute nothing.
	assert.InDelta(t, 8.0, MatchScore(companion, domain_models.TravelPreferences{}), 1e-9)
}

func TestGetMatchingCompanions_RanksByScore(t *testing.T) {
	svc := newTestCompanionService()

	prefs := domain_models.TravelPreferences{
		TravelStyle: domain_models.StyleAdventure,
		Interests:   []string{"hiking", "photography"},
	}

	matches, err := svc.GetMatchingCompanions(prefs, context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 3)

	// c1 matches style and both interests, beating c2's higher rating.
	assert.Equal(t, "c1", matches[0].ID)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchScore, matches[i].MatchScore)
	}
}

func TestSendCompanionRequest_Ack(t *testing.T) {
	svc := newTestCompanionService()

	ack, err := svc.SendCompanionRequest("c1", "Trip to Bali?", context.Background())
	require.NoError(t, err)
	assert.True(t, ack.Success)
	assert.Equal(t, "c1", ack.CompanionID)
	assert.Equal(t, "sent", ack.Status)
}

func TestReportCompanion_Ack(t *testing.T) {
	svc := newTestCompanionService()

	ack, err := svc.ReportCompanion("c3", "spam", context.Background())
	require.NoError(t, err)
	assert.True(t, ack.Success)
	assert.Equal(t, "c3", ack.CompanionID)
	assert.Equal(t, "spam", ack.Reason)
}

func TestFetchCompanions_CancelledContext(t *testing.T) {
	svc := newTestCompanionService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.FetchCompanions(request_models.CompanionFilters{}, ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
