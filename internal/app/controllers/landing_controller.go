package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LandingController serves the public landing page.
type LandingController struct{}

// NewLandingController creates a new LandingController
func NewLandingController() *LandingController {
	return &LandingController{}
}

// Landing renders the public page with the fellowship's contact details.
func (lc *LandingController) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", gin.H{
		"Title":        "Fellowship Membership",
		"ContactEmail": "contact@6kilogibi.org",
		"ContactPhone": "+251912345678",
	})
}
