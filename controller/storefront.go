package controller

import (
	"github.com/gin-gonic/gin"

	"zerodefect-backend/models"
	"zerodefect-backend/service"
)

// ----- Cart -----

func (ct *Controller) GetCart(c *gin.Context) {
	items := ct.svc.Cart.Items(c.Request.Context())
	c.JSON(200, gin.H{"items": items, "total": models.CartTotal(items)})
}

func (ct *Controller) AddToCart(c *gin.Context) {
	var req models.CartItem
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	items := ct.svc.Cart.Add(c.Request.Context(), req.Name, req.Price, req.Quantity)
	c.JSON(200, gin.H{"items": items, "total": models.CartTotal(items)})
}

func (ct *Controller) UpdateCartItem(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	items := ct.svc.Cart.SetQuantity(c.Request.Context(), c.Param("name"), req.Quantity)
	c.JSON(200, gin.H{"items": items, "total": models.CartTotal(items)})
}

func (ct *Controller) RemoveCartItem(c *gin.Context) {
	items := ct.svc.Cart.Remove(c.Request.Context(), c.Param("name"))
	c.JSON(200, gin.H{"items": items, "total": models.CartTotal(items)})
}

func (ct *Controller) ClearCart(c *gin.Context) {
	ct.svc.Cart.Clear(c.Request.Context())
	c.JSON(200, gin.H{"status": "cleared"})
}

// ----- Wishlist -----

func (ct *Controller) GetWishlist(c *gin.Context) {
	c.JSON(200, gin.H{"productIds": ct.svc.Cart.WishlistIDs(c.Request.Context())})
}

func (ct *Controller) ToggleWishlist(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	ids, added := ct.svc.Cart.ToggleWishlist(c.Request.Context(), id)
	c.JSON(200, gin.H{"productIds": ids, "added": added})
}

// ----- Checkout -----

func (ct *Controller) Checkout(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid input"})
		return
	}
	order, err := ct.svc.Checkout(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"order":   order,
	})
}
