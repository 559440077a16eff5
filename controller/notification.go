package controller

import "github.com/gin-gonic/gin"

// ListNotifications is the admin notification feed, newest first.
func (ct *Controller) ListNotifications(c *gin.Context) {
	items := ct.svc.Notifications.Load(c.Request.Context())
	c.JSON(200, gin.H{
		"items":  items,
		"unread": ct.svc.Notifications.Unread(items),
	})
}

func (ct *Controller) MarkNotificationRead(c *gin.Context) {
	if err := ct.svc.Notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": "read"})
}

func (ct *Controller) MarkAllNotificationsRead(c *gin.Context) {
	if err := ct.svc.Notifications.MarkAllRead(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": "read"})
}

func (ct *Controller) ClearNotifications(c *gin.Context) {
	if err := ct.svc.Notifications.Clear(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": "cleared"})
}
