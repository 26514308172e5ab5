package stores

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"frebud/internal/infra"
	"frebud/internal/models/domain_models"
	"frebud/internal/models/request_models"
	"frebud/internal/models/response_models"
	"frebud/internal/services"
	"frebud/pkg/utils"
)

const authCallDelay = 1000 * time.Millisecond

// authPersisted is the durable projection of the auth store: the
// session flag and user record, never the transient loading/error pair.
type authPersisted struct {
	IsAuthenticated bool                `json:"isAuthenticated"`
	User            *domain_models.User `json:"user"`
}

// AuthStore holds exactly one simulated session. Demo mode: sessions
// start authenticated as the fixture user, and login/signup always
// succeed regardless of credentials. The Result contract stays intact
// so views render failure states uniformly once a real backend exists.
type AuthStore struct {
	mu      sync.RWMutex
	storage infra.Storage
	delayer services.Delayer
	subs    subscribers

	demoUser domain_models.User

	isAuthenticated bool
	user            *domain_models.User
	passwordHash    string
	loading         bool
	lastError       string
}

func NewAuthStore(storage infra.Storage, delayer services.Delayer, demoUser domain_models.User) *AuthStore {
	s := &AuthStore{
		storage:  storage,
		delayer:  delayer,
		demoUser: demoUser,
	}

	// Demo default: session starts authenticated as the fixture user.
	demo := demoUser
	s.isAuthenticated = true
	s.user = &demo

	if raw, ok := storage.Load(infra.AuthStorageKey); ok {
		s.fromPersisted(raw)
	}
	return s
}

func (s *AuthStore) fromPersisted(raw json.RawMessage) {
	var p authPersisted
	if err := json.Unmarshal(raw, &p); err != nil {
		// Malformed payload at startup is the one recovered error:
		// discard and keep defaults.
		log.Printf("Discarding malformed auth state: %v", err)
		return
	}
	s.isAuthenticated = p.IsAuthenticated
	s.user = p.User
}

func (s *AuthStore) toPersisted() authPersisted {
	return authPersisted{
		IsAuthenticated: s.isAuthenticated,
		User:            s.user,
	}
}

func (s *AuthStore) persistAndNotify(p authPersisted) {
	if err := s.storage.Save(infra.AuthStorageKey, p); err != nil {
		log.Printf("Error persisting auth state: %v", err)
	}
	s.subs.notify()
}

// Subscribe registers a change listener and returns its unsubscribe.
func (s *AuthStore) Subscribe(fn func()) func() {
	return s.subs.add(fn)
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

func (s *AuthStore) User() *domain_models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *AuthStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *AuthStore) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// Login simulates the auth round trip. Demo mode always succeeds and
// keeps the demo user as the session identity.
func (s *AuthStore) Login(credentials request_models.LoginRequest, ctx context.Context) response_models.AuthResult {
	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()
	s.subs.notify()

	if err := s.delayer.Wait(ctx, authCallDelay); err != nil {
		s.mu.Lock()
		s.loading = false
		s.lastError = err.Error()
		s.mu.Unlock()
		s.subs.notify()
		return response_models.AuthResult{Success: false, Error: err.Error()}
	}

	s.mu.Lock()
	if s.user == nil {
		demo := s.demoUser
		s.user = &demo
	}
	s.isAuthenticated = true
	s.loading = false
	p := s.toPersisted()
	s.mu.Unlock()

	s.persistAndNotify(p)
	return response_models.AuthResult{Success: true}
}

// Signup merges the supplied profile fields onto the demo template,
// zeroes the social counters and stamps today's join date.
func (s *AuthStore) Signup(req request_models.SignupRequest, ctx context.Context) response_models.AuthResult {
	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()
	s.subs.notify()

	if err := s.delayer.Wait(ctx, authCallDelay); err != nil {
		s.mu.Lock()
		s.loading = false
		s.lastError = err.Error()
		s.mu.Unlock()
		s.subs.notify()
		return response_models.AuthResult{Success: false, Error: err.Error()}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.mu.Lock()
		s.loading = false
		s.lastError = err.Error()
		s.mu.Unlock()
		s.subs.notify()
		return response_models.AuthResult{Success: false, Error: err.Error()}
	}

	newUser := s.demoUser
	newUser.ID = utils.NewTimeID()
	newUser.Username = req.Username
	newUser.Email = req.Email
	newUser.Name = req.Name
	newUser.Verified = false
	newUser.Followers = 0
	newUser.Following = 0
	newUser.Posts = 0
	newUser.JoinDate = time.Now().UTC().Format("2006-01-02")
	if req.Location != "" {
		newUser.Location = req.Location
	}
	if req.Bio != "" {
		newUser.Bio = req.Bio
	}
	if req.TravelStyle != "" {
		newUser.TravelStyle = req.TravelStyle
	}
	if len(req.Interests) > 0 {
		newUser.Interests = req.Interests
	}
	if len(req.Languages) > 0 {
		newUser.Languages = req.Languages
	}

	s.mu.Lock()
	s.isAuthenticated = true
	s.user = &newUser
	s.passwordHash = hash
	s.loading = false
	p := s.toPersisted()
	s.mu.Unlock()

	s.persistAndNotify(p)
	return response_models.AuthResult{Success: true}
}

// Logout clears the session synchronously; no simulated round trip.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	s.isAuthenticated = false
	s.user = nil
	s.passwordHash = ""
	s.lastError = ""
	p := s.toPersisted()
	s.mu.Unlock()

	s.persistAndNotify(p)
}

// UpdateProfile shallow-merges the patch into the current user.
func (s *AuthStore) UpdateProfile(patch request_models.UpdateProfileRequest) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	if patch.Name != nil {
		s.user.Name = *patch.Name
	}
	if patch.Avatar != nil {
		s.user.Avatar = *patch.Avatar
	}
	if patch.Bio != nil {
		s.user.Bio = *patch.Bio
	}
	if patch.Location != nil {
		s.user.Location = *patch.Location
	}
	if patch.TravelStyle != nil {
		s.user.TravelStyle = *patch.TravelStyle
	}
	if patch.Interests != nil {
		s.user.Interests = *patch.Interests
	}
	if patch.Languages != nil {
		s.user.Languages = *patch.Languages
	}
	p := s.toPersisted()
	s.mu.Unlock()

	s.persistAndNotify(p)
}

func (s *AuthStore) ClearError() {
	s.mu.Lock()
	s.lastError = ""
	s.mu.Unlock()
	s.subs.notify()
}

// CurrentUser satisfies the acting-user dependency of the simulated
// services; an unauthenticated session falls back to the demo identity.
func (s *AuthStore) CurrentUser() domain_models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user != nil {
		return *s.user
	}
	return s.demoUser
}
