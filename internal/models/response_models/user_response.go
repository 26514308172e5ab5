package response_models

// UserStats blends fixture counters with mocked travel statistics.
type UserStats struct {
	Username         string `json:"username"`
	Followers        int    `json:"followers"`
	Following        int    `json:"following"`
	Posts            int    `json:"posts"`
	CountriesVisited int    `json:"countriesVisited"`
	TripsCompleted   int    `json:"tripsCompleted"`
	GroupsJoined     int    `json:"groupsJoined"`
	AverageRating    string `json:"averageRating"`
}
