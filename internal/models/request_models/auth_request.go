package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignupRequest struct {
	Username    string   `json:"username" binding:"required,min=3,max=30"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	Name        string   `json:"name" binding:"required,min=2,max=50"`
	Location    string   `json:"location"`
	Bio         string   `json:"bio"`
	TravelStyle string   `json:"travelStyle" binding:"omitempty,oneof=adventure cultural relaxation social photography"`
	Interests   []string `json:"interests"`
	Languages   []string `json:"languages"`
}

// UpdateProfileRequest is a shallow patch: nil fields are left untouched.
type UpdateProfileRequest struct {
	Name        *string   `json:"name"`
	Avatar      *string   `json:"avatar"`
	Bio         *string   `json:"bio"`
	Location    *string   `json:"location"`
	TravelStyle *string   `json:"travelStyle" binding:"omitempty,oneof=adventure cultural relaxation social photography"`
	Interests   *[]string `json:"interests"`
	Languages   *[]string `json:"languages"`
}
