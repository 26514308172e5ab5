package response_models

import "frebud/internal/models/domain_models"

// AuthResult mirrors the store contract: views branch on Success and
// render Error verbatim.
type AuthResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type SessionResponse struct {
	AuthResult
	Token string              `json:"token,omitempty"`
	User  *domain_models.User `json:"user,omitempty"`
}
