package domain_models

import "time"

const (
	GroupStatusOpen   = "open"
	GroupStatusClosed = "closed"
)

const (
	RoleOrganizer = "organizer"
	RoleMember    = "member"
)

type Member struct {
	Username string    `json:"username"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt,omitzero"`
}

type PollOption struct {
	Label string `json:"label"`
	Votes int    `json:"votes"`
}

type Poll struct {
	ID        string       `json:"id"`
	Question  string       `json:"question"`
	Options   []PollOption `json:"options"`
	CreatedBy string       `json:"createdBy"`
	Created   time.Time    `json:"created"`
}

type Group struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Destination string   `json:"destination"`
	Description string   `json:"description"`
	TravelDates string   `json:"travelDates"`
	Budget      string   `json:"budget"`
	MaxMembers  int      `json:"maxMembers"`
	Activities  []string `json:"activities"`
	Image       string   `json:"image"`
	Status      string   `json:"status"`
	Organizer   Member   `json:"organizer"`
	Members     []Member `json:"members"`
	Polls       []Poll   `json:"polls"`

	Created time.Time `json:"created"`
}

// HasSpace reports whether the roster is below the soft member limit.
// Join flows do not enforce this at the store layer; it only gates
// recommendation and availability filters.
func (g Group) HasSpace() bool {
	return len(g.Members) < g.MaxMembers
}

// FillRatio is the roster occupancy in [0, 1+]. A ratio above 1 is
// possible because joins are not capacity checked.
func (g Group) FillRatio() float64 {
	if g.MaxMembers == 0 {
		return 0
	}
	return float64(len(g.Members)) / float64(g.MaxMembers)
}

type ScoredGroup struct {
	Group
	RecommendationScore float64 `json:"recommendationScore"`
}
