package domain_models

import "time"

type Post struct {
	ID        string    `json:"id"`
	User      UserLite  `json:"user"`
	Image     string    `json:"image"`
	Caption   string    `json:"caption"`
	Location  string    `json:"location"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"`
	Timestamp time.Time `json:"timestamp"`
}

type Comment struct {
	ID        string    `json:"id"`
	User      UserLite  `json:"user"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Likes     int       `json:"likes"`
}

type Story struct {
	ID        string    `json:"id"`
	User      UserLite  `json:"user"`
	Image     string    `json:"image"`
	Timestamp time.Time `json:"timestamp"`
	Viewed    bool      `json:"viewed"`
}
