package dto

import "github.com/habtamu/memberdesk/internal/app/models"

// StatusResponse is the generic success/message envelope the membership
// API wraps every operation in.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// UserListResponse is the payload of GET /user.
type UserListResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Users   []models.User `json:"users"`
}

// UserResponse is the payload of POST /user: the server echoes the
// created entity.
type UserResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

// UserUpdateResponse is the payload of PUT /user/:id.
type UserUpdateResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message,omitempty"`
	UpdatedUser *models.User `json:"updatedUser,omitempty"`
}
