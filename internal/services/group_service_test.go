package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frebud/internal/models/domain_models"
	"frebud/internal/models/request_models"
	"frebud/internal/repositories"
	"frebud/pkg/utils"
)

func testActingUser() domain_models.User {
	return domain_models.User{
		ID:       "u1",
		Username: "demo_user",
		Name:     "Alex Johnson",
		Avatar:   "https://example.com/avatar.jpg",
	}
}

func testGroups(now time.Time) []domain_models.Group {
	return []domain_models.Group{
		{
			ID:         "g1",
			Name:       "Bali Backpackers",
			Status:     domain_models.GroupStatusOpen,
			MaxMembers: 8,
			Activities: []string{"hiking", "surfing"},
			Members:    make([]domain_models.Member, 4),
			Created:    now.Add(-2 * 24 * time.Hour),
		},
		{
			ID:         "g2",
			Name:       "Tokyo Foodies",
			Status:     domain_models.GroupStatusOpen,
			MaxMembers: 6,
			Activities: []string{"food tours"},
			Members:    make([]domain_models.Member, 1),
			Created:    now.Add(-30 * 24 * time.Hour),
		},
		{
			ID:         "g3",
			Name:       "Closed Crew",
			Status:     domain_models.GroupStatusClosed,
			MaxMembers: 4,
			Activities: []string{"hiking"},
			Members:    make([]domain_models.Member, 2),
			Created:    now.Add(-1 * 24 * time.Hour),
		},
		{
			ID:         "g4",
			Name:       "Full House",
			Status:     domain_models.GroupStatusOpen,
			MaxMembers: 2,
			Activities: []string{"hiking"},
			Members:    make([]domain_models.Member, 2),
			Created:    now.Add(-1 * time.Hour),
		},
	}
}

func newTestGroupService(now time.Time) GroupServiceInterface {
	repo := repositories.NewGroupRepository(testGroups(now))
	return NewGroupService(repo, testActingUser, NewNoDelayer())
}

func TestFetchGroups_Filters(t *testing.T) {
	now := time.Now()
	svc := newTestGroupService(now)

	t.Run("newest first by default", func(t *testing.T) {
		got, err := svc.FetchGroups(request_models.GroupFilters{}, context.Background())
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, "g4", got[0].ID)
		assert.Equal(t, "g3", got[1].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		got, err := svc.FetchGroups(request_models.GroupFilters{Status: domain_models.GroupStatusClosed}, context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "g3", got[0].ID)
	})

	t.Run("availableOnly drops full rosters", func(t *testing.T) {
		got, err := svc.FetchGroups(request_models.GroupFilters{AvailableOnly: true}, context.Background())
		require.NoError(t, err)
		for _, g := range got {
			assert.True(t, g.HasSpace())
		}
		assert.Len(t, got, 3)
	})
}

func TestFetchGroupByID(t *testing.T) {
	svc := newTestGroupService(time.Now())

	group, err := svc.FetchGroupByID("g2", context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tokyo Foodies", group.Name)

	_, err = svc.FetchGroupByID("missing", context.Background())
	assert.ErrorIs(t, err, utils.ErrGroupNotFound)
}

func TestCreateGroup_SynthesizesOrganizer(t *testing.T) {
	svc := newTestGroupService(time.Now())

	group, err := svc.CreateGroup(request_models.CreateGroupRequest{
		Name:        "Patagonia Trek",
		Destination: "Patagonia, Chile",
		MaxMembers:  6,
		Activities:  []string{"hiking"},
	}, context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, group.ID)
	assert.Equal(t, domain_models.GroupStatusOpen, group.Status)
	assert.Equal(t, "demo_user", group.Organizer.Username)
	assert.Equal(t, domain_models.RoleOrganizer, group.Organizer.Role)
	require.Len(t, group.Members, 1)
	assert.Equal(t, group.Organizer, group.Members[0])
	assert.NotNil(t, group.Polls)
	assert.Empty(t, group.Polls)
}

func TestJoinAndLeaveGroup_Acks(t *testing.T) {
	svc := newTestGroupService(time.Now())

	joinAck, err := svc.JoinGroup("g1", context.Background())
	require.NoError(t, err)
	assert.True(t, joinAck.Success)
	assert.Equal(t, "g1", joinAck.GroupID)
	assert.Equal(t, domain_models.RoleMember, joinAck.Member.Role)

	leaveAck, err := svc.LeaveGroup("g1", context.Background())
	require.NoError(t, err)
	assert.True(t, leaveAck.Success)
	assert.Equal(t, "g1", leaveAck.GroupID)
}

func TestCreatePoll_ZeroVoteOptions(t *testing.T) {
	svc := newTestGroupService(time.Now())

	poll, err := svc.CreatePoll("g1", request_models.CreatePollRequest{
		Question: "Where first?",
		Options:  []string{"Ubud", "Canggu"},
	}, context.Background())
	require.NoError(t, err)

	assert.Equal(t, "demo_user", poll.CreatedBy)
	require.Len(t, poll.Options, 2)
	for _, opt := range poll.Options {
		assert.Zero(t, opt.Votes)
	}
}

func TestVoteInPoll_Ack(t *testing.T) {
	svc := newTestGroupService(time.Now())

	ack, err := svc.VoteInPoll("g1", "p1", 1, context.Background())
	require.NoError(t, err)
	assert.True(t, ack.Success)
	assert.Equal(t, 1, ack.OptionIndex)
	assert.Equal(t, "demo_user", ack.Voter)
}

func TestGetRecommendedGroups_OpenWithSpaceOnly(t *testing.T) {
	now := time.Now()
	svc := newTestGroupService(now)

	got, err := svc.GetRecommendedGroups(domain_models.TravelPreferences{
		Interests: []string{"hiking"},
	}, context.Background())
	require.NoError(t, err)

	// g3 is closed, g4 is full; only g1 and g2 qualify.
	require.Len(t, got, 2)
	assert.Equal(t, "g1", got[0].ID)
	assert.Equal(t, "g2", got[1].ID)
	assert.Greater(t, got[0].RecommendationScore, got[1].RecommendationScore)
}

func TestGroupScore_Components(t *testing.T) {
	now := time.Now()
	prefs := domain_models.TravelPreferences{Interests: []string{"hiking"}}

	base := domain_models.Group{
		MaxMembers: 10,
		Members:    make([]domain_models.Member, 1),
		Created:    now.Add(-30 * 24 * time.Hour),
	}
	assert.InDelta(t, 5.0, GroupScore(base, prefs, now), 1e-9)

	withActivity := base
	withActivity.Activities = []string{"hiking"}
	assert.InDelta(t, 7.0, GroupScore(withActivity, prefs, now), 1e-9)

	recent := base
	recent.Created = now.Add(-2 * 24 * time.Hour)
	assert.InDelta(t, 7.0, GroupScore(recent, prefs, now), 1e-9)

	halfFull := base
	halfFull.Members = make([]domain_models.Member, 5)
	assert.InDelta(t, 6.0, GroupScore(halfFull, prefs, now), 1e-9)
}
