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

// CurrentUserFunc resolves the acting user for operations that
// synthesize authored records (group creation, comments, votes).
type CurrentUserFunc func() domain_models.User

const (
	groupListDelay       = 600 * time.Millisecond
	groupLookupDelay     = 300 * time.Millisecond
	groupCreateDelay     = 800 * time.Millisecond
	groupJoinDelay       = 500 * time.Millisecond
	groupLeaveDelay      = 400 * time.Millisecond
	groupPollCreateDelay = 600 * time.Millisecond
	groupVoteDelay       = 300 * time.Millisecond
	groupRecommendDelay  = 700 * time.Millisecond
)

// Group recommendation weights.
const (
	groupBaseScore      = 5.0
	groupActivityBonus  = 2.0
	groupRecencyBonus   = 2.0
	groupFillBandBonus  = 1.0
	groupRecencyWindow  = 7 * 24 * time.Hour
	groupFillBandLow    = 0.3
	groupFillBandHigh   = 0.8
	groupRecommendLimit = 6
)

type GroupServiceInterface interface {
	FetchGroups(filters request_models.GroupFilters, ctx context.Context) ([]domain_models.Group, error)
	FetchGroupByID(id string, ctx context.Context) (domain_models.Group, error)
	CreateGroup(req request_models.CreateGroupRequest, ctx context.Context) (domain_models.Group, error)
	JoinGroup(id string, ctx context.Context) (response_models.JoinGroupAck, error)
	LeaveGroup(id string, ctx context.Context) (response_models.LeaveGroupAck, error)
	CreatePoll(groupID string, req request_models.CreatePollRequest, ctx context.Context) (domain_models.Poll, error)
	VoteInPoll(groupID, pollID string, optionIndex int, ctx context.Context) (response_models.VoteAck, error)
	GetRecommendedGroups(prefs domain_models.TravelPreferences, ctx context.Context) ([]domain_models.ScoredGroup, error)
}

type GroupService struct {
	groupRepo   repositories.GroupRepository
	currentUser CurrentUserFunc
	delayer     Delayer
}

func NewGroupService(groupRepo repositories.GroupRepository, currentUser CurrentUserFunc, delayer Delayer) GroupServiceInterface {
	return &GroupService{
		groupRepo:   groupRepo,
		currentUser: currentUser,
		delayer:     delayer,
	}
}

func (s *GroupService) FetchGroups(filters request_models.GroupFilters, ctx context.Context) ([]domain_models.Group, error) {
	if err := s.delayer.Wait(ctx, groupListDelay); err != nil {
		return nil, err
	}

	filtered := make([]domain_models.Group, 0)
	for _, group := range s.groupRepo.List() {
		if filters.Destination != "" && !containsFold(group.Destination, filters.Destination) {
			continue
		}
		if filterActive(filters.Status) && group.Status != filters.Status {
			continue
		}
		if filters.AvailableOnly && !group.HasSpace() {
			continue
		}
		filtered = append(filtered, group)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Created.After(filtered[j].Created)
	})

	return filtered, nil
}

func (s *GroupService) FetchGroupByID(id string, ctx context.Context) (domain_models.Group, error) {
	if err := s.delayer.Wait(ctx, groupLookupDelay); err != nil {
		return domain_models.Group{}, err
	}

	group := s.groupRepo.GetByID(id)
	if group == nil {
		return domain_models.Group{}, utils.ErrGroupNotFound
	}
	return *group, nil
}

// CreateGroup synthesizes a group owned by the acting user. Nothing is
// written anywhere; the travel store decides whether to keep it.
func (s *GroupService) CreateGroup(req request_models.CreateGroupRequest, ctx context.Context) (domain_models.Group, error) {
	if err := s.delayer.Wait(ctx, groupCreateDelay); err != nil {
		return domain_models.Group{}, err
	}

	now := time.Now().UTC()
	organizer := memberOf(s.currentUser(), domain_models.RoleOrganizer, now)

	return domain_models.Group{
		ID:          utils.NewTimeID(),
		Name:        req.Name,
		Destination: req.Destination,
		Description: req.Description,
		TravelDates: req.TravelDates,
		Budget:      req.Budget,
		MaxMembers:  req.MaxMembers,
		Activities:  req.Activities,
		Image:       req.Image,
		Status:      domain_models.GroupStatusOpen,
		Organizer:   organizer,
		Members:     []domain_models.Member{organizer},
		Polls:       []domain_models.Poll{},
		Created:     now,
	}, nil
}

func (s *GroupService) JoinGroup(id string, ctx context.Context) (response_models.JoinGroupAck, error) {
	if err := s.delayer.Wait(ctx, groupJoinDelay); err != nil {
		return response_models.JoinGroupAck{}, err
	}

	return response_models.JoinGroupAck{
		Success: true,
		GroupID: id,
		Member:  memberOf(s.currentUser(), domain_models.RoleMember, time.Now().UTC()),
	}, nil
}

func (s *GroupService) LeaveGroup(id string, ctx context.Context) (response_models.LeaveGroupAck, error) {
	if err := s.delayer.Wait(ctx, groupLeaveDelay); err != nil {
		return response_models.LeaveGroupAck{}, err
	}

	return response_models.LeaveGroupAck{
		Success:   true,
		GroupID:   id,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (s *GroupService) CreatePoll(groupID string, req request_models.CreatePollRequest, ctx context.Context) (domain_models.Poll, error) {
	if err := s.delayer.Wait(ctx, groupPollCreateDelay); err != nil {
		return domain_models.Poll{}, err
	}

	options := make([]domain_models.PollOption, 0, len(req.Options))
	for _, label := range req.Options {
		options = append(options, domain_models.PollOption{Label: label})
	}

	return domain_models.Poll{
		ID:        utils.NewTimeID(),
		Question:  req.Question,
		Options:   options,
		CreatedBy: s.currentUser().Username,
		Created:   time.Now().UTC(),
	}, nil
}

func (s *GroupService) VoteInPoll(groupID, pollID string, optionIndex int, ctx context.Context) (response_models.VoteAck, error) {
	if err := s.delayer.Wait(ctx, groupVoteDelay); err != nil {
		return response_models.VoteAck{}, err
	}

	return response_models.VoteAck{
		Success:     true,
		GroupID:     groupID,
		PollID:      pollID,
		OptionIndex: optionIndex,
		Voter:       s.currentUser().Username,
		Timestamp:   time.Now().UTC(),
	}, nil
}

func (s *GroupService) GetRecommendedGroups(prefs domain_models.TravelPreferences, ctx context.Context) ([]domain_models.ScoredGroup, error) {
	if err := s.delayer.Wait(ctx, groupRecommendDelay); err != nil {
		return nil, err
	}

	scored := make([]domain_models.ScoredGroup, 0)
	for _, group := range s.groupRepo.List() {
		if group.Status != domain_models.GroupStatusOpen || !group.HasSpace() {
			continue
		}
		scored = append(scored, domain_models.ScoredGroup{
			Group:               group,
			RecommendationScore: GroupScore(group, prefs, time.Now()),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RecommendationScore > scored[j].RecommendationScore
	})

	if len(scored) > groupRecommendLimit {
		scored = scored[:groupRecommendLimit]
	}
	return scored, nil
}

// GroupScore ranks open groups: activity overlap with the user's
// interests, a flat bonus for groups younger than a week, and another
// for rosters in the 30-80% fill band.
func GroupScore(group domain_models.Group, prefs domain_models.TravelPreferences, now time.Time) float64 {
	score := groupBaseScore

	score += float64(crossMatchCount(group.Activities, prefs.Interests)) * groupActivityBonus

	if now.Sub(group.Created) < groupRecencyWindow {
		score += groupRecencyBonus
	}

	ratio := group.FillRatio()
	if ratio > groupFillBandLow && ratio < groupFillBandHigh {
		score += groupFillBandBonus
	}

	return score
}

func memberOf(user domain_models.User, role string, joinedAt time.Time) domain_models.Member {
	return domain_models.Member{
		Username: user.Username,
		Name:     user.Name,
		Avatar:   user.Avatar,
		Role:     role,
		JoinedAt: joinedAt,
	}
}
