package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/habtamu/memberdesk/internal/app/forms"
	"github.com/habtamu/memberdesk/internal/app/models"
	"github.com/habtamu/memberdesk/internal/app/store"
	"github.com/habtamu/memberdesk/internal/middleware"
)

// UsersController drives the member management screen: search, table and
// the add/edit/delete modals.
type UsersController struct{}

// NewUsersController creates a new UsersController
func NewUsersController() *UsersController {
	return &UsersController{}
}

// Index renders the screen. Modal state is carried in the query string
// (?modal=add|edit|delete&id=...): closed by default, opened by explicit
// user action, closed again by cancel/confirm/submit redirecting back to
// the bare path.
func (uc *UsersController) Index(c *gin.Context) {
	state := middleware.StateFromContext(c)

	_ = state.Users.EnsureFresh(c.Request.Context())

	term := c.Query("q")
	filtered := state.Users.Filter(term)

	modal := c.Query("modal")
	var selected *models.User
	if id := c.Query("id"); id != "" {
		for i := range filtered {
			if filtered[i].StudentID == id {
				selected = &filtered[i]
				break
			}
		}
	}
	if selected == nil && (modal == "edit" || modal == "delete") {
		modal = ""
	}

	formSeed := forms.DefaultUser()
	if selected != nil {
		formSeed = *selected
	}
	if formSeed.University == nil {
		formSeed.University = &models.UniversityUser{}
	}

	data := viewData(state, "Manage Users")
	data["Active"] = "users"
	data["Users"] = filtered
	data["Search"] = term
	data["Modal"] = modal
	data["Selected"] = selected
	data["Form"] = formSeed
	data["Loading"] = state.Users.Loading()
	c.HTML(http.StatusOK, "users.html", data)
}

// Create handles the add-user form. Nothing is appended locally until the
// server confirms; outcome dialogs are queued by the store.
func (uc *UsersController) Create(c *gin.Context) {
	state := middleware.StateFromContext(c)

	var form forms.UserFormData
	if err := c.ShouldBind(&form); err != nil {
		state.Notify(store.Notification{
			Kind: store.NotifyError, Title: "Validation Error", Text: validationMessage(err),
		})
		c.Redirect(http.StatusSeeOther, "/admin/users?modal=add")
		return
	}

	_ = state.Users.Add(c.Request.Context(), form.User())
	c.Redirect(http.StatusSeeOther, "/admin/users")
}

// Update handles the edit-user form: whole-record replace keyed by the
// studentid in the path, merged over the cached record so untouched
// nested fields survive.
func (uc *UsersController) Update(c *gin.Context) {
	state := middleware.StateFromContext(c)
	id := c.Param("id")

	var existing models.User
	for _, u := range state.Users.Items() {
		if u.StudentID == id {
			existing = u
			break
		}
	}

	var form forms.UserFormData
	if err := c.ShouldBind(&form); err != nil {
		state.Notify(store.Notification{
			Kind: store.NotifyError, Title: "Validation Error", Text: validationMessage(err),
		})
		c.Redirect(http.StatusSeeOther, "/admin/users?modal=edit&id="+url.QueryEscape(id))
		return
	}

	merged, err := form.Merge(existing)
	if err != nil {
		state.Notify(store.Notification{
			Kind: store.NotifyError, Title: "Validation Error", Text: err.Error(),
		})
		c.Redirect(http.StatusSeeOther, "/admin/users?modal=edit&id="+url.QueryEscape(id))
		return
	}

	_ = state.Users.Update(c.Request.Context(), id, merged)
	c.Redirect(http.StatusSeeOther, "/admin/users")
}

// Delete handles the confirmed delete action. The confirmation modal is
// the only way here; row actions never delete directly.
func (uc *UsersController) Delete(c *gin.Context) {
	state := middleware.StateFromContext(c)

	_ = state.Users.Delete(c.Request.Context(), c.Param("id"))
	c.Redirect(http.StatusSeeOther, "/admin/users")
}

// DeleteAll clears the whole roster.
func (uc *UsersController) DeleteAll(c *gin.Context) {
	state := middleware.StateFromContext(c)

	_ = state.Users.DeleteAll(c.Request.Context())
	c.Redirect(http.StatusSeeOther, "/admin/users")
}
