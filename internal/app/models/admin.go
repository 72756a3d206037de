package models

import "time"

// Admin defines an administrator account on the membership API.
// Password is write-only: the server never round-trips it, and the store
// scrubs whatever the fetch returned back to the empty string so it can
// never be displayed.
type Admin struct {
	StudentID    string     `json:"studentid" example:"UGR-0001-15"` // Natural key, shared with the roster
	Username     string     `json:"adminusername" example:"abel"`
	Password     string     `json:"adminpassword,omitempty"` // Only ever populated on the way out
	IsSuperAdmin bool       `json:"isSuperAdmin"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

// Identity is the projection of the authenticated admin cached on the
// console session after a successful resolve. Navigation (sidebar links)
// and the super-admin guard read it; it is never trusted past the current
// request without re-resolving.
type Identity struct {
	StudentID    string `json:"studentid"`
	Username     string `json:"adminusername"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
}
