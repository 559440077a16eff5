package controller

import (
	"github.com/gin-gonic/gin"

	"zerodefect-backend/models"
)

// GetSettings serves the store profile to both the storefront footer and
// the admin settings page.
func (ct *Controller) GetSettings(c *gin.Context) {
	c.JSON(200, ct.svc.Settings.Load(c.Request.Context()))
}

func (ct *Controller) SaveSettings(c *gin.Context) {
	var req models.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if err := ct.svc.Settings.Save(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, ct.svc.Settings.Load(c.Request.Context()))
}
