package domain_models

// TravelStyle values accepted across profiles, companions and filters.
const (
	StyleAdventure   = "adventure"
	StyleCultural    = "cultural"
	StyleRelaxation  = "relaxation"
	StyleSocial      = "social"
	StylePhotography = "photography"
)

// Budget tiers shared by companions, destinations and groups.
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Avatar      string   `json:"avatar"`
	Bio         string   `json:"bio"`
	Location    string   `json:"location"`
	Verified    bool     `json:"verified"`
	Followers   int      `json:"followers"`
	Following   int      `json:"following"`
	Posts       int      `json:"posts"`
	JoinDate    string   `json:"joinDate"`
	Interests   []string `json:"interests"`
	TravelStyle string   `json:"travelStyle"`
	Languages   []string `json:"languages"`
}

// UserLite is the author shape embedded in posts, stories and comments.
type UserLite struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Avatar   string `json:"avatar"`
	Verified bool   `json:"verified,omitempty"`
}

func (u User) Lite() UserLite {
	return UserLite{
		Username: u.Username,
		Name:     u.Name,
		Avatar:   u.Avatar,
		Verified: u.Verified,
	}
}

// TravelPreferences is the matching input for companion and group
// recommendations.
type TravelPreferences struct {
	TravelStyle string   `json:"travelStyle"`
	Budget      string   `json:"budget"`
	Interests   []string `json:"interests"`
	Languages   []string `json:"languages"`
}
