package request_models

type GroupFilters struct {
	Destination   string `form:"destination" json:"destination"`
	Status        string `form:"status" json:"status"`
	AvailableOnly bool   `form:"availableOnly" json:"availableOnly"`
}

type CreateGroupRequest struct {
	Name        string   `json:"name" binding:"required,min=3,max=80"`
	Destination string   `json:"destination" binding:"required"`
	Description string   `json:"description" binding:"max=1000"`
	TravelDates string   `json:"travelDates"`
	Budget      string   `json:"budget" binding:"omitempty,oneof=low medium high"`
	MaxMembers  int      `json:"maxMembers" binding:"required,gte=2"`
	Activities  []string `json:"activities"`
	Image       string   `json:"image"`
}

type CreatePollRequest struct {
	Question string   `json:"question" binding:"required,max=200"`
	Options  []string `json:"options" binding:"required,min=2,dive,required"`
}

type VoteRequest struct {
	OptionIndex int `json:"optionIndex" binding:"gte=0"`
}
