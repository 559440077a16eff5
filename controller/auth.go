package controller

import (
	"github.com/gin-gonic/gin"

	"zerodefect-backend/middleware"
)

// Login authenticates an admin and returns a signed session token.
func (ct *Controller) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	profile, err := ct.svc.Admins.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	token, err := middleware.IssueToken(ct.jwtSecret, profile.UserEmail)
	if err != nil {
		c.JSON(500, gin.H{"error": "could not generate token"})
		return
	}
	c.JSON(200, gin.H{"user": profile, "token": token})
}

// GetProfile returns the logged-in admin's account.
func (ct *Controller) GetProfile(c *gin.Context) {
	c.JSON(200, ct.svc.Admins.Profile(c.Request.Context(), c.GetString("adminEmail")))
}

// SaveAvatar stores the admin's avatar image URL or data URI.
func (ct *Controller) SaveAvatar(c *gin.Context) {
	var req struct {
		AvatarURL string `json:"avatarUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	email := c.GetString("adminEmail")
	if err := ct.svc.Admins.SaveAvatar(c.Request.Context(), email, req.AvatarURL); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, ct.svc.Admins.Profile(c.Request.Context(), email))
}

// ChangePassword rotates the admin password after checking the current one.
func (ct *Controller) ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if len(req.NewPassword) < 8 {
		c.JSON(400, gin.H{"error": "new password must be at least 8 characters"})
		return
	}
	email := c.GetString("adminEmail")
	if err := ct.svc.Admins.ChangePassword(c.Request.Context(), email, req.CurrentPassword, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": "changed"})
}
