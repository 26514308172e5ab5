package domain_models

// Wishlist item kinds. Items are keyed by (ID, Type), so the same id can
// exist once as a post and once as a destination.
const (
	WishlistTypePost        = "post"
	WishlistTypeDestination = "destination"
)

type WishlistItem struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Location string `json:"location"`
	AddedAt  int64  `json:"addedAt"`
}
