package domain_models

type Companion struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Avatar      string   `json:"avatar"`
	Destination string   `json:"destination"`
	TravelDates string   `json:"travelDates"`
	Rating      float64  `json:"rating"`
	Trips       int      `json:"trips"`
	Bio         string   `json:"bio"`
	Budget      string   `json:"budget"`
	TravelStyle string   `json:"travelStyle"`
	Languages   []string `json:"languages"`
	Interests   []string `json:"interests"`
	Verified    bool     `json:"verified"`
}

// ScoredCompanion annotates a companion with its transient match score.
// The score exists only on recommendation results, never on the fixture.
type ScoredCompanion struct {
	Companion
	MatchScore float64 `json:"matchScore"`
}
