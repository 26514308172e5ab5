package domain_models

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UIPreferences is the persisted slice of presentation state.
type UIPreferences struct {
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Currency      string `json:"currency"`
	Notifications bool   `json:"notifications"`
	Location      bool   `json:"location"`
	DarkMode      bool   `json:"darkMode"`
}

// UIState is the full presentation state: persisted preferences plus
// session-only modal, story and navigation flags.
type UIState struct {
	UIPreferences

	ShowLoginModal       bool   `json:"showLoginModal"`
	ShowSignupModal      bool   `json:"showSignupModal"`
	ShowCreateGroupModal bool   `json:"showCreateGroupModal"`
	ShowStoryModal       bool   `json:"showStoryModal"`
	CurrentStory         *Story `json:"currentStory"`
	ActiveTab            string `json:"activeTab"`
	IsLoading            bool   `json:"isLoading"`
}

func DefaultUIState() UIState {
	return UIState{
		UIPreferences: UIPreferences{
			Theme:         ThemeLight,
			Language:      "en",
			Currency:      "USD",
			Notifications: true,
			Location:      true,
		},
		ActiveTab: "feed",
	}
}
