package stores

import (
	"encoding/json"
	"log"
	"sync"

	"frebud/internal/infra"
	"frebud/internal/models/domain_models"
)

// ThemeApplier reacts to theme changes at the visual root, the stand-in
// for writing a data-theme attribute on the document element.
type ThemeApplier interface {
	Apply(theme string)
}

// ThemeApplierFunc adapts a plain function to ThemeApplier.
type ThemeApplierFunc func(theme string)

func (f ThemeApplierFunc) Apply(theme string) { f(theme) }

// UIStore holds presentation state with no business meaning. The
// preferences slice persists; modal, story and navigation state is
// session-only.
type UIStore struct {
	mu      sync.RWMutex
	storage infra.Storage
	applier ThemeApplier
	subs    subscribers

	state domain_models.UIState
}

func NewUIStore(storage infra.Storage, applier ThemeApplier) *UIStore {
	s := &UIStore{
		storage: storage,
		applier: applier,
		state:   domain_models.DefaultUIState(),
	}

	if raw, ok := storage.Load(infra.UIStorageKey); ok {
		var p domain_models.UIPreferences
		if err := json.Unmarshal(raw, &p); err != nil {
			log.Printf("Discarding malformed ui state: %v", err)
		} else {
			s.state.UIPreferences = p
		}
	}

	if applier != nil {
		applier.Apply(s.state.Theme)
	}
	return s
}

func (s *UIStore) persistAndNotify(p domain_models.UIPreferences) {
	if err := s.storage.Save(infra.UIStorageKey, p); err != nil {
		log.Printf("Error persisting ui state: %v", err)
	}
	s.subs.notify()
}

func (s *UIStore) Subscribe(fn func()) func() {
	return s.subs.add(fn)
}

func (s *UIStore) State() domain_models.UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetTheme also pushes the theme to the injected applier so the visual
// root reacts without the state being threaded through views.
func (s *UIStore) SetTheme(theme string) {
	s.mu.Lock()
	s.state.Theme = theme
	s.state.DarkMode = theme == domain_models.ThemeDark
	p := s.state.UIPreferences
	s.mu.Unlock()

	if s.applier != nil {
		s.applier.Apply(theme)
	}
	s.persistAndNotify(p)
}

func (s *UIStore) ToggleDarkMode() {
	s.mu.RLock()
	theme := s.state.Theme
	s.mu.RUnlock()

	if theme == domain_models.ThemeLight {
		s.SetTheme(domain_models.ThemeDark)
	} else {
		s.SetTheme(domain_models.ThemeLight)
	}
}

func (s *UIStore) SetLanguage(language string) {
	s.mu.Lock()
	s.state.Language = language
	p := s.state.UIPreferences
	s.mu.Unlock()
	s.persistAndNotify(p)
}

func (s *UIStore) SetCurrency(currency string) {
	s.mu.Lock()
	s.state.Currency = currency
	p := s.state.UIPreferences
	s.mu.Unlock()
	s.persistAndNotify(p)
}

func (s *UIStore) ToggleNotifications() {
	s.mu.Lock()
	s.state.Notifications = !s.state.Notifications
	p := s.state.UIPreferences
	s.mu.Unlock()
	s.persistAndNotify(p)
}

func (s *UIStore) ToggleLocation() {
	s.mu.Lock()
	s.state.Location = !s.state.Location
	p := s.state.UIPreferences
	s.mu.Unlock()
	s.persistAndNotify(p)
}

// Modal state is session-only: mutations below notify without
// persisting.

func (s *UIStore) ShowLogin() {
	s.mu.Lock()
	s.state.ShowLoginModal = true
	s.state.ShowSignupModal = false
	s.mu.Unlock()
	s.subs.notify()
}

func (s *UIStore) ShowSignup() {
	s.mu.Lock()
	s.state.ShowSignupModal = true
	s.state.ShowLoginModal = false
	s.mu.Unlock()
	s.subs.notify()
}

func (s *UIStore) HideAuthModals() {
	s.mu.Lock()
	s.state.ShowLoginModal = false
	s.state.ShowSignupModal = false
	s.mu.Unlock()
	s.subs.notify()
}

func (s *UIStore) ShowCreateGroup() {
	s.mu.Lock()
	s.state.ShowCreateGroupModal = true
	s.mu.Unlock()
	s.subs.notify()
}

func (s *UIStore) HideCreateGroup() {
	s.mu.Lock()
	s.state.ShowCreateGroupModal = false
	s.mu.Unlock()
	s.subs.notify()
}

func (s *UIStore) ShowStory(story domain_models.Story) {
	s.mu.Lock()
	s.state.ShowStoryModal = true
	s.state.CurrentStory = &story
	s.mu.Unlock()
	s.subs.notify()
}

func (s *UIStore) HideStory() {
	s.mu.Lock()
	s.state.ShowStoryModal = false
	s.state.CurrentStory = nil
	s.mu.Unlock()
	s.subs.notify()
}

func (s *UIStore) SetActiveTab(tab string) {
	s.mu.Lock()
	s.state.ActiveTab = tab
	s.mu.Unlock()
	s.subs.notify()
}

func (s *UIStore) SetLoading(loading bool) {
	s.mu.Lock()
	s.state.IsLoading = loading
	s.mu.Unlock()
	s.subs.notify()
}
