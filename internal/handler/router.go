package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
	"github.com/Vi-fly/vendor-elite-backend/internal/middleware"
)

// RegisterRoutes mounts the full API surface under /api/v1.
func RegisterRoutes(
	r *gin.Engine,
	tokens domain.TokenService,
	auth *AuthHandler,
	messaging *MessagingHandler,
	marketplace *MarketplaceHandler,
	settings *SettingsHandler,
) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")

	v1.POST("/auth/register", auth.Register)
	v1.POST("/auth/login", auth.Login)
	v1.POST("/auth/refresh", auth.Refresh)

	// The payment provider calls back without a user token.
	v1.POST("/payments/:id/callback", marketplace.PaymentCallback)

	authed := v1.Group("")
	authed.Use(middleware.JwtAuth(tokens))
	{
		authed.GET("/auth/me", auth.Me)

		authed.GET("/contacts", messaging.Contacts)
		authed.POST("/conversations", messaging.CreateConversation)
		authed.GET("/conversations/:id/messages", messaging.ListMessages)
		authed.POST("/conversations/:id/messages", messaging.SendMessage)
		authed.POST("/conversations/:id/read", messaging.MarkRead)
		authed.GET("/messages/unread-count", messaging.UnreadCount)

		authed.POST("/applications", middleware.RequireRole(domain.RoleSupplier), marketplace.SubmitApplication)
		authed.GET("/applications", marketplace.ListApplications)
		authed.PATCH("/applications/:id/status", middleware.RequireRole(domain.RoleSchool, domain.RoleAdmin), marketplace.UpdateApplicationStatus)

		authed.POST("/ratings", middleware.RequireRole(domain.RoleSchool), marketplace.SubmitRating)
		authed.GET("/suppliers/:id/ratings", marketplace.ListSupplierRatings)
		authed.DELETE("/ratings/:id", middleware.RequireRole(domain.RoleSchool), marketplace.DeleteRating)

		authed.POST("/payments", middleware.RequireRole(domain.RoleSupplier), marketplace.InitiatePayment)
		authed.GET("/payments", middleware.RequireRole(domain.RoleSupplier), marketplace.ListPayments)

		authed.POST("/complaints", marketplace.FileComplaint)
		authed.GET("/complaints", marketplace.ListComplaints)
		authed.PATCH("/complaints/:id/status", middleware.RequireRole(domain.RoleAdmin), marketplace.UpdateComplaintStatus)

		authed.GET("/settings", middleware.RequireRole(domain.RoleAdmin), settings.List)
		authed.PUT("/settings", middleware.RequireRole(domain.RoleAdmin), settings.Put)
	}
}
