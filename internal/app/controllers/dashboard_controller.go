package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habtamu/memberdesk/internal/app/stats"
	"github.com/habtamu/memberdesk/internal/middleware"
)

// DashboardController renders the overview screen.
type DashboardController struct{}

// NewDashboardController creates a new DashboardController
func NewDashboardController() *DashboardController {
	return &DashboardController{}
}

// Dashboard derives the participation metrics from the roster cache.
// The fetch is the silent background kind: errors land in the store and
// surface as a dialog, the screen itself still renders.
func (dc *DashboardController) Dashboard(c *gin.Context) {
	state := middleware.StateFromContext(c)

	_ = state.Users.EnsureFresh(c.Request.Context())
	summary := stats.Summarize(state.Users.Items())

	data := viewData(state, "Dashboard")
	data["Summary"] = summary
	data["Active"] = "dashboard"
	c.HTML(http.StatusOK, "dashboard.html", data)
}
