package stores

import (
	"encoding/json"
	"log"
	"slices"
	"sync"
	"time"

	"frebud/internal/infra"
	"frebud/internal/models/domain_models"
	"frebud/internal/models/request_models"
	"frebud/pkg/utils"
)

const recentSearchLimit = 10

// travelPersisted is the durable projection: the user-owned collections
// only. Hydrated service results (groups, companions) are session state.
type travelPersisted struct {
	Wishlist          []domain_models.WishlistItem     `json:"wishlist"`
	SavedDestinations []domain_models.SavedDestination `json:"savedDestinations"`
	RecentSearches    []string                         `json:"recentSearches"`
	MyGroups          []domain_models.Group            `json:"myGroups"`
}

// TravelStore is the authoritative in-memory table of the user's travel
// collections. Commands are synchronous; every mutation re-serializes
// the persisted projection and notifies subscribers.
type TravelStore struct {
	mu          sync.RWMutex
	storage     infra.Storage
	currentUser func() domain_models.User
	subs        subscribers

	wishlist          []domain_models.WishlistItem
	groups            []domain_models.Group
	myGroups          []domain_models.Group
	companions        []domain_models.Companion
	savedDestinations []domain_models.SavedDestination
	recentSearches    []string
}

func NewTravelStore(storage infra.Storage, currentUser func() domain_models.User) *TravelStore {
	s := &TravelStore{
		storage:     storage,
		currentUser: currentUser,
	}

	if raw, ok := storage.Load(infra.TravelStorageKey); ok {
		var p travelPersisted
		if err := json.Unmarshal(raw, &p); err != nil {
			log.Printf("Discarding malformed travel state: %v", err)
		} else {
			s.wishlist = p.Wishlist
			s.savedDestinations = p.SavedDestinations
			s.recentSearches = p.RecentSearches
			s.myGroups = p.MyGroups
		}
	}
	return s
}

func (s *TravelStore) toPersisted() travelPersisted {
	return travelPersisted{
		Wishlist:          s.wishlist,
		SavedDestinations: s.savedDestinations,
		RecentSearches:    s.recentSearches,
		MyGroups:          s.myGroups,
	}
}

func (s *TravelStore) persistAndNotify(p travelPersisted) {
	if err := s.storage.Save(infra.TravelStorageKey, p); err != nil {
		log.Printf("Error persisting travel state: %v", err)
	}
	s.subs.notify()
}

func (s *TravelStore) Subscribe(fn func()) func() {
	return s.subs.add(fn)
}

// ── Wishlist ──────────────────────────────────────────────────────

// AddToWishlist inserts unless an item with the same (id, type) pair
// already exists; reports whether the insert happened.
func (s *TravelStore) AddToWishlist(req request_models.WishlistAddRequest) bool {
	s.mu.Lock()
	for _, item := range s.wishlist {
		if item.ID == req.ID && item.Type == req.Type {
			s.mu.Unlock()
			return false
		}
	}
	s.wishlist = append(s.wishlist, domain_models.WishlistItem{
		ID:       req.ID,
		Type:     req.Type,
		Title:    req.Title,
		Image:    req.Image,
		Location: req.Location,
		AddedAt:  utils.NowUnixMillis(),
	})
	p := s.toPersisted()
	s.mu.Unlock()

	s.persistAndNotify(p)
	return true
}

// RemoveFromWishlist is a no-op when the pair is absent.
func (s *TravelStore) RemoveFromWishlist(id, itemType string) {
	s.mu.Lock()
	s.wishlist = slices.DeleteFunc(s.wishlist, func(item domain_models.WishlistItem) bool {
		return item.ID == id && item.Type == itemType
	})
	p := s.toPersisted()
	s.mu.Unlock()

	s.persistAndNotify(p)
}

func (s *TravelStore) IsInWishlist(id, itemType string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.wishlist {
		if item.ID == id && item.Type == itemType {
			return true
		}
	}
	return false
}

func (s *TravelStore) Wishlist() []domain_models.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.wishlist)
}

// ── Groups ────────────────────────────────────────────────────────

// SetGroups replaces the session group list with hydrated service
// results.
func (s *TravelStore) SetGroups(groups []domain_models.Group) {
	s.mu.Lock()
	s.groups = slices.Clone(groups)
	s.mu.Unlock()
	s.subs.notify()
}

func (s *TravelStore) Groups() []domain_models.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.groups)
}

func (s *TravelStore) MyGroups() []domain_models.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.myGroups)
}

// CreateGroup synthesizes a group with the acting user as organizer and
// appends it to the owned-groups collection.
func (s *TravelStore) CreateGroup(req request_models.CreateGroupRequest) domain_models.Group {
	now := time.Now().UTC()
	organizer := domain_models.Member{
		Username: s.currentUser().Username,
		Name:     s.currentUser().Name,
		Avatar:   s.currentUser().Avatar,
		Role:     domain_models.RoleOrganizer,
		JoinedAt: now,
	}

	group := domain_models.Group{
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
	}

	s.mu.Lock()
	s.myGroups = append(s.myGroups, group)
	p := s.toPersisted()
	s.mu.Unlock()

	s.persistAndNotify(p)
	return group
}

// JoinGroup appends the acting user to the matching session group's
// roster. maxMembers is not checked here; the view layer warns instead.
func (s *TravelStore) JoinGroup(groupID string) bool {
	user := s.currentUser()
	member := domain_models.Member{
		Username: user.Username,
		Name:     user.Name,
		Avatar:   user.Avatar,
		Role:     domain_models.RoleMember,
		JoinedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	for i := range s.groups {
		if s.groups[i].ID == groupID {
			s.groups[i].Members = append(s.groups[i].Members, member)
		}
	}
	p := s.toPersisted()
	s.mu.Unlock()

	s.persistAndNotify(p)
	return true
}

// LeaveGroup drops the group from the owned collection and strips the
// acting user from the session group's roster.
func (s *TravelStore) LeaveGroup(groupID string) {
	username := s.currentUser().Username

	s.mu.Lock()
	s.myGroups = slices.DeleteFunc(s.myGroups, func(g domain_models.Group) bool {
		return g.ID == groupID
	})
	for i := range s.groups {
		if s.groups[i].ID == groupID {
			s.groups[i].Members = slices.DeleteFunc(s.groups[i].Members, func(m domain_models.Member) bool {
				return m.Username == username
			})
		}
	}
	p := s.toPersisted()
	s.mu.Unlock()

	s.persistAndNotify(p)
}

// ── Polls ─────────────────────────────────────────────────────────

func (s *TravelStore) AddPollToGroup(groupID string, question string, options []string) *domain_models.Poll {
	opts := make([]domain_models.PollOption, 0, len(options))
	for _, label := range options {
		opts = append(opts, domain_models.PollOption{Label: label})
	}
	poll := domain_models.Poll{
		ID:        utils.NewTimeID(),
		Question:  question,
		Options:   opts,
		CreatedBy: s.currentUser().Username,
		Created:   time.Now().UTC(),
	}

	s.mu.Lock()
	added := false
	for i := range s.myGroups {
		if s.myGroups[i].ID == groupID {
			s.myGroups[i].Polls = append(s.myGroups[i].Polls, poll)
			added = true
		}
	}
	p := s.toPersisted()
	s.mu.Unlock()

	if !added {
		return nil
	}
	s.persistAndNotify(p)
	return &poll
}

// VoteInPoll increments one option's counter. Votes only ever grow;
// there is no per-user duplicate-vote guard.
func (s *TravelStore) VoteInPoll(groupID, pollID string, optionIndex int) bool {
	s.mu.Lock()
	voted := false
	for i := range s.myGroups {
		if s.myGroups[i].ID != groupID {
			continue
		}
		for j := range s.myGroups[i].Polls {
			poll := &s.myGroups[i].Polls[j]
			if poll.ID == pollID && optionIndex >= 0 && optionIndex < len(poll.Options) {
				poll.Options[optionIndex].Votes++
				voted = true
			}
		}
	}
	p := s.toPersisted()
	s.mu.Unlock()

	if voted {
		s.persistAndNotify(p)
	}
	return voted
}

// ── Saved destinations ────────────────────────────────────────────

// SaveDestination inserts unless the destination id is already saved.
func (s *TravelStore) SaveDestination(dest domain_models.Destination) bool {
	s.mu.Lock()
	for _, saved := range s.savedDestinations {
		if saved.ID == dest.ID {
			s.mu.Unlock()
			return false
		}
	}
	s.savedDestinations = append(s.savedDestinations, domain_models.SavedDestination{
		Destination: dest,
		SavedAt:     utils.NowUnixMillis(),
	})
	p := s.toPersisted()
	s.mu.Unlock()

	s.persistAndNotify(p)
	return true
}

func (s *TravelStore) RemoveSavedDestination(id string) {
	s.mu.Lock()
	s.savedDestinations = slices.DeleteFunc(s.savedDestinations, func(d domain_models.SavedDestination) bool {
		return d.ID == id
	})
	p := s.toPersisted()
	s.mu.Unlock()

	s.persistAndNotify(p)
}

func (s *TravelStore) SavedDestinations() []domain_models.SavedDestination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.savedDestinations)
}

// ── Recent searches ───────────────────────────────────────────────

// AddRecentSearch de-duplicates by exact match, moves the term to the
// front and caps the history at ten entries.
func (s *TravelStore) AddRecentSearch(term string) {
	s.mu.Lock()
	filtered := make([]string, 0, len(s.recentSearches)+1)
	filtered = append(filtered, term)
	for _, t := range s.recentSearches {
		if t != term {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) > recentSearchLimit {
		filtered = filtered[:recentSearchLimit]
	}
	s.recentSearches = filtered
	p := s.toPersisted()
	s.mu.Unlock()

	s.persistAndNotify(p)
}

func (s *TravelStore) ClearRecentSearches() {
	s.mu.Lock()
	s.recentSearches = []string{}
	p := s.toPersisted()
	s.mu.Unlock()

	s.persistAndNotify(p)
}

func (s *TravelStore) RecentSearches() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.recentSearches)
}

// ── Companions ────────────────────────────────────────────────────

func (s *TravelStore) SetCompanions(companions []domain_models.Companion) {
	s.mu.Lock()
	s.companions = slices.Clone(companions)
	s.mu.Unlock()
	s.subs.notify()
}

func (s *TravelStore) Companions() []domain_models.Companion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.companions)
}
