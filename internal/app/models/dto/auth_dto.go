package dto

import "github.com/habtamu/memberdesk/internal/app/models"

// CurrentUserResponse is the payload of GET /auth/current on the
// membership API. A 200 with Success=false means "not signed in", not an
// error.
type CurrentUserResponse struct {
	Success bool         `json:"success"`
	User    *CurrentUser `json:"user,omitempty"`
}

// CurrentUser carries the authenticated admin's projection.
type CurrentUser struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	StudentID       string `json:"studentid"`
	Username        string `json:"adminusername"`
	IsSuperAdmin    bool   `json:"isSuperAdmin"`
}

// Identity converts the wire projection into the session identity.
func (u *CurrentUser) Identity() *models.Identity {
	return &models.Identity{
		StudentID:    u.StudentID,
		Username:     u.Username,
		IsSuperAdmin: u.IsSuperAdmin,
	}
}

// LoginRequest is the body of POST /admin/login. The same struct binds the
// console's login form.
type LoginRequest struct {
	StudentID string `json:"studentid" form:"studentid" binding:"required"`
	Password  string `json:"adminpassword" form:"adminpassword" binding:"required"`
}

// LoginResponse is the payload of a successful POST /admin/login. The
// session rides on the cookie the API sets; Token is a legacy artifact the
// console never uses for authorization.
type LoginResponse struct {
	Admin models.Admin `json:"admin"`
	Token string       `json:"token"`
}
