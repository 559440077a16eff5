package controller

import (
	"github.com/gin-gonic/gin"

	"zerodefect-backend/service"
)

// Analytics feeds the dashboard charts: inquiries per country, orders per
// day and product interest across inquiries.
func (ct *Controller) Analytics(c *gin.Context) {
	ctx := c.Request.Context()
	inquiries := ct.svc.Inquiries.Load(ctx)
	orders := ct.svc.Orders.Load(ctx)
	c.JSON(200, gin.H{
		"inquiriesByCountry": service.InquiriesByCountry(inquiries),
		"ordersPerDay":       service.OrdersPerDay(orders),
		"productPopularity":  service.ProductPopularity(inquiries),
		"inquiryCounts":      ct.svc.Inquiries.Tally(inquiries),
		"orderCounts":        ct.svc.Orders.Tally(orders),
	})
}
