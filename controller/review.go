package controller

import (
	"github.com/gin-gonic/gin"

	"zerodefect-backend/models"
	"zerodefect-backend/service"
)

// ListReviews is the storefront review wall: approved reviews only.
func (ct *Controller) ListReviews(c *gin.Context) {
	items := ct.svc.Reviews.Public(ct.svc.Reviews.Load(c.Request.Context()))
	c.JSON(200, gin.H{"items": items, "total": len(items)})
}

// CreateReview is the public review form; submissions wait for moderation.
func (ct *Controller) CreateReview(c *gin.Context) {
	var req models.Review
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	created, err := ct.svc.Reviews.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, created)
}

// AdminListReviews shows all reviews, pending ones included.
func (ct *Controller) AdminListReviews(c *gin.Context) {
	items := ct.svc.Reviews.Load(c.Request.Context())
	pageItems, page := service.Paginate(items, queryPage(c), service.AdminPageSize)
	c.JSON(200, gin.H{
		"items":      pageItems,
		"page":       page,
		"totalPages": service.PageCount(len(items), service.AdminPageSize),
		"total":      len(items),
	})
}

func (ct *Controller) ApproveReview(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Approved bool `json:"approved"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if err := ct.svc.Reviews.SetApproved(c.Request.Context(), id, req.Approved); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"approved": req.Approved})
}

func (ct *Controller) ReplyReview(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Reply string `json:"reply"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if err := ct.svc.Reviews.Reply(c.Request.Context(), id, req.Reply); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": "replied"})
}

func (ct *Controller) EditReview(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		ReviewText string  `json:"reviewText"`
		Rating     float64 `json:"rating"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if err := ct.svc.Reviews.Edit(c.Request.Context(), id, req.ReviewText, req.Rating); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": "updated"})
}

func (ct *Controller) DeleteReview(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ct.svc.Reviews.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": "deleted"})
}
