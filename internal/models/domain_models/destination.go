package domain_models

type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Category    string   `json:"category"`
	Budget      string   `json:"budget"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
	Duration    string   `json:"duration"`
	Image       string   `json:"image"`
}

type ScoredDestination struct {
	Destination
	Score float64 `json:"score"`
}

// SavedDestination is a destination pinned by the user, stamped at save time.
type SavedDestination struct {
	Destination
	SavedAt int64 `json:"savedAt"`
}
