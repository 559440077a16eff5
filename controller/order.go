package controller

import (
	"github.com/gin-gonic/gin"

	"zerodefect-backend/service"
	"zerodefect-backend/utils"
)

// AdminListOrders is the back-office order table with search, pagination
// and per-status counts for the dashboard cards.
func (ct *Controller) AdminListOrders(c *gin.Context) {
	all := ct.svc.Orders.Load(c.Request.Context())
	items := ct.svc.Orders.Search(all, c.Query("q"))
	pageItems, page := service.Paginate(items, queryPage(c), service.AdminPageSize)
	c.JSON(200, gin.H{
		"items":      pageItems,
		"page":       page,
		"totalPages": service.PageCount(len(items), service.AdminPageSize),
		"total":      len(items),
		"counts":     ct.svc.Orders.Tally(all),
	})
}

func (ct *Controller) UpdateOrderStatus(c *gin.Context) {
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
	if err := ct.svc.Orders.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": req.Status})
}

func (ct *Controller) DeleteOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ct.svc.Orders.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": "deleted"})
}

// ExportOrders streams the full order list as CSV.
func (ct *Controller) ExportOrders(c *gin.Context) {
	orders := ct.svc.Orders.Load(c.Request.Context())
	data, err := utils.OrdersCSV(orders)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="orders.csv"`)
	c.Data(200, "text/csv", data)
}
