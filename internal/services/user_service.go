package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"frebud/internal/models/domain_models"
	"frebud/internal/models/response_models"
	"frebud/internal/repositories"
	"frebud/pkg/utils"
)

const (
	userProfileDelay = 500 * time.Millisecond
	userUpdateDelay  = 600 * time.Millisecond
	userFollowDelay  = 400 * time.Millisecond
	userSearchDelay  = 500 * time.Millisecond
	userStatsDelay   = 300 * time.Millisecond
)

const (
	userSearchMinQuery = 2
	userSearchLimit    = 10
)

type UserServiceInterface interface {
	FetchUserProfile(username string, ctx context.Context) (domain_models.User, error)
	UpdateUserProfile(userID string, updates map[string]interface{}, ctx context.Context) (response_models.ProfileUpdateAck, error)
	FollowUser(username string, ctx context.Context) (response_models.FollowAck, error)
	UnfollowUser(username string, ctx context.Context) (response_models.FollowAck, error)
	SearchUsers(query string, ctx context.Context) ([]domain_models.User, error)
	GetUserStats(username string, ctx context.Context) (response_models.UserStats, error)
}

type UserService struct {
	userRepo repositories.UserRepository
	delayer  Delayer

	// rngMu serializes the shared rand.Rand; handlers run concurrently
	// and rand.Rand is not goroutine-safe.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewUserService(userRepo repositories.UserRepository, delayer Delayer, rng *rand.Rand) UserServiceInterface {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &UserService{
		userRepo: userRepo,
		delayer:  delayer,
		rng:      rng,
	}
}

func (s *UserService) FetchUserProfile(username string, ctx context.Context) (domain_models.User, error) {
	if err := s.delayer.Wait(ctx, userProfileDelay); err != nil {
		return domain_models.User{}, err
	}

	user := s.userRepo.GetByUsername(username)
	if user == nil {
		return domain_models.User{}, utils.ErrUserNotFound
	}
	return *user, nil
}

func (s *UserService) UpdateUserProfile(userID string, updates map[string]interface{}, ctx context.Context) (response_models.ProfileUpdateAck, error) {
	if err := s.delayer.Wait(ctx, userUpdateDelay); err != nil {
		return response_models.ProfileUpdateAck{}, err
	}

	return response_models.ProfileUpdateAck{
		Success:   true,
		UserID:    userID,
		Updates:   updates,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (s *UserService) FollowUser(username string, ctx context.Context) (response_models.FollowAck, error) {
	if err := s.delayer.Wait(ctx, userFollowDelay); err != nil {
		return response_models.FollowAck{}, err
	}

	return response_models.FollowAck{
		Success:   true,
		Username:  username,
		Following: true,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (s *UserService) UnfollowUser(username string, ctx context.Context) (response_models.FollowAck, error) {
	if err := s.delayer.Wait(ctx, userFollowDelay); err != nil {
		return response_models.FollowAck{}, err
	}

	return response_models.FollowAck{
		Success:   true,
		Username:  username,
		Following: false,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (s *UserService) SearchUsers(query string, ctx context.Context) ([]domain_models.User, error) {
	if err := s.delayer.Wait(ctx, userSearchDelay); err != nil {
		return nil, err
	}

	if len(query) < userSearchMinQuery {
		return []domain_models.User{}, nil
	}

	results := make([]domain_models.User, 0)
	for _, user := range s.userRepo.List() {
		if containsFold(user.Username, query) ||
			containsFold(user.Name, query) ||
			containsFold(user.Bio, query) {
			results = append(results, user)
		}
		if len(results) == userSearchLimit {
			break
		}
	}
	return results, nil
}

// GetUserStats pads the fixture counters with randomized travel stats a
// real backend would aggregate.
func (s *UserService) GetUserStats(username string, ctx context.Context) (response_models.UserStats, error) {
	if err := s.delayer.Wait(ctx, userStatsDelay); err != nil {
		return response_models.UserStats{}, err
	}

	user := s.userRepo.GetByUsername(username)
	if user == nil {
		return response_models.UserStats{}, utils.ErrUserNotFound
	}

	s.rngMu.Lock()
	countries := s.rng.Intn(25) + 5
	trips := s.rng.Intn(15) + 3
	groups := s.rng.Intn(10) + 1
	rating := s.rng.Float64()*1.5 + 3.5
	s.rngMu.Unlock()

	return response_models.UserStats{
		Username:         user.Username,
		Followers:        user.Followers,
		Following:        user.Following,
		Posts:            user.Posts,
		CountriesVisited: countries,
		TripsCompleted:   trips,
		GroupsJoined:     groups,
		AverageRating:    fmt.Sprintf("%.1f", rating),
	}, nil
}
