package controller

import (
	"github.com/gin-gonic/gin"

	"zerodefect-backend/models"
	"zerodefect-backend/service"
)

// CreateInquiry is the public contact form endpoint.
func (ct *Controller) CreateInquiry(c *gin.Context) {
	var req models.Inquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	created, err := ct.svc.Inquiries.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, created)
}

// AdminListInquiries is the back-office inquiry table.
func (ct *Controller) AdminListInquiries(c *gin.Context) {
	all := ct.svc.Inquiries.Load(c.Request.Context())
	items := ct.svc.Inquiries.Search(all, c.Query("q"))
	pageItems, page := service.Paginate(items, queryPage(c), service.AdminPageSize)
	c.JSON(200, gin.H{
		"items":      pageItems,
		"page":       page,
		"totalPages": service.PageCount(len(items), service.AdminPageSize),
		"total":      len(items),
		"counts":     ct.svc.Inquiries.Tally(all),
	})
}

func (ct *Controller) UpdateInquiryStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if err := ct.svc.Inquiries.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": req.Status})
}

func (ct *Controller) AssignInquiry(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req struct {
		AssignedTo string `json:"assignedTo"`
		Notes      string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	if err := ct.svc.Inquiries.Assign(c.Request.Context(), id, req.AssignedTo, req.Notes); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": "assigned"})
}

func (ct *Controller) DeleteInquiry(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ct.svc.Inquiries.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": "deleted"})
}
