package handler

import (
	"github.com/gin-gonic/gin"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Users    *UserHandler
	Products *ProductHandler
	Coupons  *CouponHandler
	Platform *PlatformHandler
}

// RegisterRoutes wires HTTP routes. The singular/plural path split and
// the /tproducts and /f-products prefixes are the wire contract
// existing clients were built against.
func RegisterRoutes(r *gin.Engine, cfg RouteConfig) {
	r.GET("/", cfg.Platform.Root)
	r.GET("/health", cfg.Platform.Health)
	r.POST("/jwt", cfg.Platform.IssueToken)
	r.POST("/create-payment-intent", cfg.Platform.CreatePaymentIntent)

	r.POST("/users", cfg.Users.Register)
	r.GET("/users/admin/:email", cfg.Users.IsAdmin)
	r.GET("/users/moderator/:email", cfg.Users.IsModerator)
	r.PATCH("/users/:id/role", cfg.Users.UpdateRole)
	r.GET("/user/profile", cfg.Users.Profile)
	r.PATCH("/user/subscribe", cfg.Users.Subscribe)
	r.GET("/user/eligibility", cfg.Users.Eligibility)

	r.GET("/product", cfg.Products.Search)
	r.POST("/products", cfg.Products.Create)
	r.GET("/products", cfg.Products.ListByOwner)
	r.GET("/products/review-queue", cfg.Products.ReviewQueue)
	r.GET("/products/:id", cfg.Products.Get)
	r.PUT("/products/:id", cfg.Products.Update)
	r.DELETE("/products/:id", cfg.Products.Delete)
	r.PATCH("/products/:id/upvote", cfg.Products.Upvote)
	r.PATCH("/products/:id/downvote", cfg.Products.Downvote)
	r.PATCH("/products/:id/report", cfg.Products.Report)
	r.PATCH("/products/:id/review", cfg.Products.Review)
	r.PATCH("/products/:id/status", cfg.Products.Status)
	r.PATCH("/products/:id/featured", cfg.Products.Feature)
	r.GET("/tproducts/trending", cfg.Products.Trending)
	r.GET("/f-products/featured", cfg.Products.FeaturedList)
	r.GET("/admin/stats", cfg.Products.Stats)

	r.POST("/coupons", cfg.Coupons.Create)
	r.GET("/coupons", cfg.Coupons.List)
	r.GET("/coupons/validate", cfg.Coupons.Validate)
	r.PATCH("/coupons/:id", cfg.Coupons.Update)
	r.DELETE("/coupons/:id", cfg.Coupons.Delete)
	r.GET("/valid", cfg.Coupons.ListValid)
}
