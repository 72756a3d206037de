package forms

import "github.com/habtamu/memberdesk/internal/app/models/dto"

// AdminFormData binds the add/edit admin form. The password is optional
// at the binding layer because edit mode treats an empty value as "leave
// unchanged"; add mode enforces it in the handler.
type AdminFormData struct {
	StudentID string `form:"studentid" binding:"required,studentid"`
	Username  string `form:"adminusername" binding:"required"`
	Password  string `form:"adminpassword"`
}

// Register converts the form into a registration request (add mode).
func (f *AdminFormData) Register() dto.RegisterAdminRequest {
	return dto.RegisterAdminRequest{
		StudentID: f.StudentID,
		Username:  f.Username,
		Password:  f.Password,
	}
}

// Patch converts the form into a partial update (edit mode). An empty
// password becomes an absent field, meaning "no change requested",
// never "set password to empty".
func (f *AdminFormData) Patch() dto.UpdateAdminRequest {
	req := dto.UpdateAdminRequest{Username: f.Username}
	if f.Password != "" {
		pw := f.Password
		req.Password = &pw
	}
	return req
}
