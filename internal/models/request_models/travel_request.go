package request_models

type WishlistAddRequest struct {
	ID       string `json:"id" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=post destination"`
	Title    string `json:"title" binding:"required"`
	Image    string `json:"image"`
	Location string `json:"location"`
}

type RecentSearchRequest struct {
	Term string `json:"term" binding:"required"`
}
