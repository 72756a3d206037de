package dto

import "github.com/habtamu/memberdesk/internal/app/models"

// AdminListResponse is the payload of GET /admin.
type AdminListResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Admins  []models.Admin `json:"admins"`
}

// RegisterAdminRequest is the body of POST /admin/register.
type RegisterAdminRequest struct {
	StudentID string `json:"studentid"`
	Username  string `json:"adminusername"`
	Password  string `json:"adminpassword"`
}

// UpdateAdminRequest is the partial-patch body of PUT /admin/:id. A nil
// Password means "leave the stored password unchanged"; the field is
// omitted from the request entirely. Empty string is never sent.
type UpdateAdminRequest struct {
	Username string  `json:"adminusername,omitempty"`
	Password *string `json:"adminpassword,omitempty"`
}

// AdminUpdateResponse is the payload of PUT /admin/:id.
type AdminUpdateResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message,omitempty"`
	UpdatedAdmin *models.Admin `json:"updatedAdmin,omitempty"`
}
