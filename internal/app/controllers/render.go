package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/habtamu/memberdesk/internal/app/store"
	"github.com/habtamu/memberdesk/internal/session"
)

// viewData assembles the fields every screen template expects: the
// identity projection for the sidebar, drained notifications, and the
// store error surfaced as a blocking dialog. The error is cleared here;
// rendering it once is its dismissal.
func viewData(state *session.State, title string) gin.H {
	data := gin.H{
		"Title": title,
	}
	if state == nil {
		return data
	}

	data["Identity"] = state.Identity()

	notifications := state.TakeNotifications()
	if msg := state.Users.Error(); msg != "" {
		notifications = append(notifications, store.Notification{
			Kind: store.NotifyError, Title: "Error", Text: msg,
		})
		state.Users.ClearError()
	}
	if msg := state.Admins.Error(); msg != "" {
		notifications = append(notifications, store.Notification{
			Kind: store.NotifyError, Title: "Error", Text: msg,
		})
		state.Admins.ClearError()
	}
	data["Notifications"] = notifications
	return data
}

// validationMessage renders a binding failure as one human-readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Please fill in all required fields correctly"
	}

	e := verrs[0]
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return e.Field() + " must be a valid email address"
	case "studentid":
		return e.Field() + " must match the PREFIX-0000-00 format"
	case "phone":
		return e.Field() + " must be a valid phone number"
	default:
		return e.Field() + " is invalid"
	}
}
