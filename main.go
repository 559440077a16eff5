package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"zerodefect-backend/cache"
	"zerodefect-backend/config"
	"zerodefect-backend/controller"
	"zerodefect-backend/middleware"
	"zerodefect-backend/service"
	"zerodefect-backend/store"
)

func main() {
	cfg := config.Load()

	// Local cache: Redis when reachable, in-process memory otherwise.
	rdb := config.ConnectRedis(cfg)
	var kv cache.KV
	if rdb != nil {
		kv = cache.NewRedis(rdb)
	} else {
		kv = cache.NewMemory()
	}
	c := cache.New(kv)

	// Storage backend: picked once at startup. If the remote store is not
	// ready within the timeout the whole process runs local-only.
	var backend store.Backend
	db, err := config.ConnectMongo(cfg)
	if err != nil || db == nil {
		log.Printf("remote store not ready, running local-only: %v", err)
		backend = store.NewLocal(c)
	} else {
		log.Println("remote store connected")
		backend = store.NewMongo(db)
	}

	svc := service.New(backend, c)

	ctx := context.Background()
	if err := svc.Admins.EnsureDefault(ctx, cfg.AdminEmail, cfg.AdminPassword, "Admin"); err != nil {
		log.Fatal(err)
	}
	svc.Products.Load(ctx) // seeds the default catalog when empty

	// Change streams push remote edits into the cache mirror; pollers cover
	// the kinds without streams and any missed events.
	if w, ok := backend.(store.Watchable); ok {
		w.Watch(ctx, store.KindProducts, func() { svc.Products.Load(ctx) })
		w.Watch(ctx, store.KindSettings, func() { svc.Settings.Load(ctx) })
		w.Watch(ctx, store.KindReviews, func() { svc.Reviews.Load(ctx) })
	}
	service.NewPoller(5*time.Second, func() {
		svc.Orders.Load(ctx)
		svc.Inquiries.Load(ctx)
	})
	service.NewPoller(3*time.Second, func() { svc.Notifications.Load(ctx) })

	ct := controller.New(svc, cfg.JWTSecret)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Storefront
	r.GET("/api/products", ct.ListProducts)
	r.GET("/api/reviews", ct.ListReviews)
	r.POST("/api/reviews", ct.CreateReview)
	r.POST("/api/inquiries", ct.CreateInquiry)
	r.GET("/api/settings", ct.GetSettings)

	r.GET("/api/cart", ct.GetCart)
	r.POST("/api/cart", ct.AddToCart)
	r.PUT("/api/cart/:name", ct.UpdateCartItem)
	r.DELETE("/api/cart/:name", ct.RemoveCartItem)
	r.POST("/api/cart/clear", ct.ClearCart)
	r.POST("/api/checkout", ct.Checkout)

	r.GET("/api/wishlist", ct.GetWishlist)
	r.POST("/api/wishlist/:id", ct.ToggleWishlist)

	// Admin
	r.POST("/api/admin/login", middleware.RateLimiter(rdb), ct.Login)

	admin := r.Group("/api/admin", middleware.RequireAuth(cfg.JWTSecret))
	{
		admin.GET("/products", ct.AdminListProducts)
		admin.POST("/products", ct.CreateProduct)
		admin.PUT("/products/:id", ct.UpdateProduct)
		admin.DELETE("/products/:id", ct.DeleteProduct)

		admin.GET("/orders", ct.AdminListOrders)
		admin.GET("/orders/export", ct.ExportOrders)
		admin.PUT("/orders/:id/status", ct.UpdateOrderStatus)
		admin.DELETE("/orders/:id", ct.DeleteOrder)

		admin.GET("/inquiries", ct.AdminListInquiries)
		admin.PUT("/inquiries/:id/status", ct.UpdateInquiryStatus)
		admin.PUT("/inquiries/:id/assign", ct.AssignInquiry)
		admin.DELETE("/inquiries/:id", ct.DeleteInquiry)

		admin.GET("/reviews", ct.AdminListReviews)
		admin.PUT("/reviews/:id/approve", ct.ApproveReview)
		admin.PUT("/reviews/:id/reply", ct.ReplyReview)
		admin.PUT("/reviews/:id", ct.EditReview)
		admin.DELETE("/reviews/:id", ct.DeleteReview)

		admin.GET("/notifications", ct.ListNotifications)
		admin.PUT("/notifications/read-all", ct.MarkAllNotificationsRead)
		admin.PUT("/notifications/:id/read", ct.MarkNotificationRead)
		admin.DELETE("/notifications", ct.ClearNotifications)

		admin.GET("/settings", ct.GetSettings)
		admin.PUT("/settings", ct.SaveSettings)

		admin.GET("/profile", ct.GetProfile)
		admin.PUT("/profile/avatar", ct.SaveAvatar)
		admin.PUT("/profile/password", ct.ChangePassword)

		admin.GET("/analytics", ct.Analytics)
	}

	log.Println("listening on :" + cfg.Port)
	r.Run(":" + cfg.Port)
}
