package stores

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frebud/internal/infra"
	"frebud/internal/models/domain_models"
)

func TestUIStore_Defaults(t *testing.T) {
	store := NewUIStore(infra.NewMemoryStorage(), nil)

	state := store.State()
	assert.Equal(t, domain_models.ThemeLight, state.Theme)
	assert.Equal(t, "en", state.Language)
	assert.Equal(t, "USD", state.Currency)
	assert.True(t, state.Notifications)
	assert.True(t, state.Location)
	assert.False(t, state.DarkMode)
	assert.Equal(t, "feed", state.ActiveTab)
}

func TestSetTheme_DrivesApplierAndDarkMode(t *testing.T) {
	var applied []string
	applier := ThemeApplierFunc(func(theme string) { applied = append(applied, theme) })

	store := NewUIStore(infra.NewMemoryStorage(), applier)
	require.Equal(t, []string{domain_models.ThemeLight}, applied)

	store.SetTheme(domain_models.ThemeDark)
	assert.True(t, store.State().DarkMode)
	assert.Equal(t, []string{domain_models.ThemeLight, domain_models.ThemeDark}, applied)

	store.ToggleDarkMode()
	assert.Equal(t, domain_models.ThemeLight, store.State().Theme)
	assert.False(t, store.State().DarkMode)

	store.ToggleDarkMode()
	assert.Equal(t, domain_models.ThemeDark, store.State().Theme)
}

func TestUIStore_PersistsPreferencesOnly(t *testing.T) {
	storage := infra.NewMemoryStorage()
	store := NewUIStore(storage, nil)

	store.SetTheme(domain_models.ThemeDark)
	store.SetLanguage("es")
	store.SetCurrency("EUR")
	store.ToggleNotifications()
	store.SetActiveTab("explore")
	store.ShowCreateGroup()

	reloaded := NewUIStore(storage, nil)
	state := reloaded.State()

	assert.Equal(t, domain_models.ThemeDark, state.Theme)
	assert.True(t, state.DarkMode)
	assert.Equal(t, "es", state.Language)
	assert.Equal(t, "EUR", state.Currency)
	assert.False(t, state.Notifications)

	// Session-only navigation and modal flags reset.
	assert.Equal(t, "feed", state.ActiveTab)
	assert.False(t, state.ShowCreateGroupModal)
}

func TestUIStore_DiscardsMalformedState(t *testing.T) {
	storage := infra.NewMemoryStorage()
	storage.Seed(infra.UIStorageKey, json.RawMessage(`{"theme": 42`))

	store := NewUIStore(storage, nil)
	assert.Equal(t, domain_models.ThemeLight, store.State().Theme)
}

func TestUIStore_ModalFlow(t *testing.T) {
	store := NewUIStore(infra.NewMemoryStorage(), nil)

	store.ShowLogin()
	assert.True(t, store.State().ShowLoginModal)
	assert.False(t, store.State().ShowSignupModal)

	// The two auth modals are mutually exclusive.
	store.ShowSignup()
	assert.False(t, store.State().ShowLoginModal)
	assert.True(t, store.State().ShowSignupModal)

	store.HideAuthModals()
	assert.False(t, store.State().ShowLoginModal)
	assert.False(t, store.State().ShowSignupModal)

	story := domain_models.Story{ID: "s1"}
	store.ShowStory(story)
	assert.True(t, store.State().ShowStoryModal)
	require.NotNil(t, store.State().CurrentStory)
	assert.Equal(t, "s1", store.State().CurrentStory.ID)

	store.HideStory()
	assert.False(t, store.State().ShowStoryModal)
	assert.Nil(t, store.State().CurrentStory)
}

func TestUIStore_NotifiesSubscribers(t *testing.T) {
	store := NewUIStore(infra.NewMemoryStorage(), nil)

	calls := 0
	unsubscribe := store.Subscribe(func() { calls++ })

	store.SetLanguage("fr")
	store.SetActiveTab("groups")
	assert.Equal(t, 2, calls)

	unsubscribe()
	store.SetLanguage("de")
	assert.Equal(t, 2, calls)
}
