package response_models

import (
	"time"

	"frebud/internal/models/domain_models"
)

// Acknowledgments returned by simulated write operations. A real backend
// would replace the bodies; the shapes are the view contract.

type CompanionRequestAck struct {
	Success     bool      `json:"success"`
	CompanionID string    `json:"companionId"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

type ReportCompanionAck struct {
	Success     bool      `json:"success"`
	CompanionID string    `json:"companionId"`
	Reason      string    `json:"reason"`
	Timestamp   time.Time `json:"timestamp"`
}

type JoinGroupAck struct {
	Success bool                 `json:"success"`
	GroupID string               `json:"groupId"`
	Member  domain_models.Member `json:"member"`
}

type LeaveGroupAck struct {
	Success   bool      `json:"success"`
	GroupID   string    `json:"groupId"`
	Timestamp time.Time `json:"timestamp"`
}

type VoteAck struct {
	Success     bool      `json:"success"`
	GroupID     string    `json:"groupId"`
	PollID      string    `json:"pollId"`
	OptionIndex int       `json:"optionIndex"`
	Voter       string    `json:"voter"`
	Timestamp   time.Time `json:"timestamp"`
}

type LikePostAck struct {
	Success bool   `json:"success"`
	PostID  string `json:"postId"`
}

type StoryViewedAck struct {
	Success bool   `json:"success"`
	StoryID string `json:"storyId"`
}

type FollowAck struct {
	Success   bool      `json:"success"`
	Username  string    `json:"username"`
	Following bool      `json:"following"`
	Timestamp time.Time `json:"timestamp"`
}

type ProfileUpdateAck struct {
	Success   bool                   `json:"success"`
	UserID    string                 `json:"userId"`
	Updates   map[string]interface{} `json:"updates"`
	Timestamp time.Time              `json:"timestamp"`
}
