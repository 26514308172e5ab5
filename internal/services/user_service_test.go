package services

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frebud/internal/models/domain_models"
	"frebud/internal/repositories"
	"frebud/pkg/utils"
)

func testUsers() []domain_models.User {
	return []domain_models.User{
		{ID: "u1", Username: "demo_user", Name: "Alex Johnson", Bio: "Travel enthusiast", Followers: 234, Following: 189, Posts: 42},
		{ID: "u2", Username: "maria_wanderlust", Name: "Maria Santos", Bio: "Beach lover"},
		{ID: "u3", Username: "kenji_explorer", Name: "Kenji Tanaka", Bio: "Exploring temples"},
	}
}

func newTestUserService() UserServiceInterface {
	repo := repositories.NewUserRepository(testUsers())
	return NewUserService(repo, NewNoDelayer(), rand.New(rand.NewSource(1)))
}

func TestFetchUserProfile(t *testing.T) {
	svc := newTestUserService()

	user, err := svc.FetchUserProfile("maria_wanderlust", context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", user.Name)

	_, err = svc.FetchUserProfile("ghost", context.Background())
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestSearchUsers(t *testing.T) {
	svc := newTestUserService()

	t.Run("short query returns nothing", func(t *testing.T) {
		got, err := svc.SearchUsers("m", context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("matches username name and bio", func(t *testing.T) {
		got, err := svc.SearchUsers("temples", context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "kenji_explorer", got[0].Username)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		got, err := svc.SearchUsers("MARIA", context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "maria_wanderlust", got[0].Username)
	})
}

func TestGetUserStats_RangesAndPassthrough(t *testing.T) {
	svc := newTestUserService()

	stats, err := svc.GetUserStats("demo_user", context.Background())
	require.NoError(t, err)

	assert.Equal(t, 234, stats.Followers)
	assert.Equal(t, 189, stats.Following)
	assert.Equal(t, 42, stats.Posts)

	assert.GreaterOrEqual(t, stats.CountriesVisited, 5)
	assert.LessOrEqual(t, stats.CountriesVisited, 29)
	assert.GreaterOrEqual(t, stats.TripsCompleted, 3)
	assert.LessOrEqual(t, stats.TripsCompleted, 17)
	assert.GreaterOrEqual(t, stats.GroupsJoined, 1)
	assert.LessOrEqual(t, stats.GroupsJoined, 10)

	rating, err := strconv.ParseFloat(stats.AverageRating, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rating, 3.5)
	assert.LessOrEqual(t, rating, 5.0)

	_, err = svc.GetUserStats("ghost", context.Background())
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestGetUserStats_ConcurrentCalls(t *testing.T) {
	svc := newTestUserService()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				stats, err := svc.GetUserStats("demo_user", context.Background())
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, stats.CountriesVisited, 5)
			}
		}()
	}
	wg.Wait()
}

func TestUpdateUserProfile_EchoesPatch(t *testing.T) {
	svc := newTestUserService()

	updates := map[string]interface{}{"bio": "New bio", "location": "Lisbon"}
	ack, err := svc.UpdateUserProfile("u1", updates, context.Background())
	require.NoError(t, err)

	assert.True(t, ack.Success)
	assert.Equal(t, "u1", ack.UserID)
	assert.Equal(t, updates, ack.Updates)
}

func TestFollowUnfollow_Acks(t *testing.T) {
	svc := newTestUserService()

	follow, err := svc.FollowUser("maria_wanderlust", context.Background())
	require.NoError(t, err)
	assert.True(t, follow.Success)
	assert.True(t, follow.Following)

	unfollow, err := svc.UnfollowUser("maria_wanderlust", context.Background())
	require.NoError(t, err)
	assert.True(t, unfollow.Success)
	assert.False(t, unfollow.Following)
}
