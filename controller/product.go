package controller

import (
	"github.com/gin-gonic/gin"

	"zerodefect-backend/models"
	"zerodefect-backend/service"
)

// ListProducts is the storefront catalog: category filter, sort, search and
// the 9-card grid pagination.
func (ct *Controller) ListProducts(c *gin.Context) {
	items := ct.svc.Products.Load(c.Request.Context())
	items = ct.svc.Products.Filter(items, c.DefaultQuery("category", "all"), c.DefaultQuery("sort", service.SortDefault))
	items = ct.svc.Products.Search(items, c.Query("q"))
	pageItems, page := service.Paginate(items, queryPage(c), service.StorefrontPageSize)
	c.JSON(200, gin.H{
		"items":      pageItems,
		"page":       page,
		"totalPages": service.PageCount(len(items), service.StorefrontPageSize),
		"total":      len(items),
	})
}

// AdminListProducts is the back-office product table, 10 rows per page.
func (ct *Controller) AdminListProducts(c *gin.Context) {
	items := ct.svc.Products.Load(c.Request.Context())
	items = ct.svc.Products.Search(items, c.Query("q"))
	pageItems, page := service.Paginate(items, queryPage(c), service.AdminPageSize)
	c.JSON(200, gin.H{
		"items":      pageItems,
		"page":       page,
		"totalPages": service.PageCount(len(items), service.AdminPageSize),
		"total":      len(items),
	})
}

func (ct *Controller) CreateProduct(c *gin.Context) {
	var req models.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	created, err := ct.svc.Products.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, created)
}

func (ct *Controller) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req models.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	req.ID = id
	if err := ct.svc.Products.Save(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, req)
}

func (ct *Controller) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := ct.svc.Products.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": "deleted"})
}
