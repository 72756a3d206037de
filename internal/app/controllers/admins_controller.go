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

// AdminsController drives the admin management screen. The route is
// behind the super-admin guard; the delete affordance is additionally
// disabled per row for super-admin accounts.
type AdminsController struct{}

// NewAdminsController creates a new AdminsController
func NewAdminsController() *AdminsController {
	return &AdminsController{}
}

// Index renders the screen.
func (ac *AdminsController) Index(c *gin.Context) {
	state := middleware.StateFromContext(c)

	_ = state.Admins.EnsureFresh(c.Request.Context())

	term := c.Query("q")
	filtered := state.Admins.Filter(term)

	modal := c.Query("modal")
	var selected *models.Admin
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
	// The delete modal never opens for a super-admin record.
	if modal == "delete" && selected != nil && selected.IsSuperAdmin {
		modal = ""
	}

	data := viewData(state, "Manage Admins")
	data["Active"] = "admins"
	data["Admins"] = filtered
	data["Search"] = term
	data["Modal"] = modal
	data["Selected"] = selected
	data["Loading"] = state.Admins.Loading()
	c.HTML(http.StatusOK, "admins.html", data)
}

// Create registers a new admin. Add mode requires a password; the store
// refetches the collection because registration echoes only success.
func (ac *AdminsController) Create(c *gin.Context) {
	state := middleware.StateFromContext(c)

	var form forms.AdminFormData
	if err := c.ShouldBind(&form); err != nil {
		state.Notify(store.Notification{
			Kind: store.NotifyError, Title: "Validation Error", Text: validationMessage(err),
		})
		c.Redirect(http.StatusSeeOther, "/admin/admins?modal=add")
		return
	}
	if form.Password == "" {
		state.Notify(store.Notification{
			Kind: store.NotifyError, Title: "Validation Error", Text: "Password is required",
		})
		c.Redirect(http.StatusSeeOther, "/admin/admins?modal=add")
		return
	}

	_ = state.Admins.Add(c.Request.Context(), form.Register())
	c.Redirect(http.StatusSeeOther, "/admin/admins")
}

// Update partial-patches an admin. An empty password field means "leave
// the stored password unchanged" and is omitted from the request.
func (ac *AdminsController) Update(c *gin.Context) {
	state := middleware.StateFromContext(c)
	id := c.Param("id")

	var form forms.AdminFormData
	if err := c.ShouldBind(&form); err != nil {
		state.Notify(store.Notification{
			Kind: store.NotifyError, Title: "Validation Error", Text: validationMessage(err),
		})
		c.Redirect(http.StatusSeeOther, "/admin/admins?modal=edit&id="+url.QueryEscape(id))
		return
	}

	_ = state.Admins.Update(c.Request.Context(), id, form.Patch())
	c.Redirect(http.StatusSeeOther, "/admin/admins")
}

// Delete removes an admin after the confirmation step. The store refuses
// super-admin records even if a crafted request reaches this far.
func (ac *AdminsController) Delete(c *gin.Context) {
	state := middleware.StateFromContext(c)

	_ = state.Admins.Delete(c.Request.Context(), c.Param("id"))
	c.Redirect(http.StatusSeeOther, "/admin/admins")
}
