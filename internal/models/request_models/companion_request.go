package request_models

// CompanionFilters narrows the companion listing. Empty or "all" fields
// disable their predicate; set fields are combined with AND.
type CompanionFilters struct {
	Destination string   `form:"destination" json:"destination"`
	TravelStyle string   `form:"travelStyle" json:"travelStyle"`
	Budget      string   `form:"budget" json:"budget"`
	Languages   []string `form:"languages" json:"languages"`
}

type CompanionRequestInput struct {
	Message string `json:"message" binding:"required,max=500"`
}

type ReportCompanionRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type MatchPreferencesRequest struct {
	TravelStyle string   `json:"travelStyle" binding:"omitempty,oneof=adventure cultural relaxation social photography"`
	Budget      string   `json:"budget" binding:"omitempty,oneof=low medium high"`
	Interests   []string `json:"interests"`
	Languages   []string `json:"languages"`
}
