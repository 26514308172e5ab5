package request_models

type DestinationFilters struct {
	Category string `form:"category" json:"category"`
	Budget   string `form:"budget" json:"budget"`
	Search   string `form:"search" json:"search"`
}
