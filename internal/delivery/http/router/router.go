// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inkspot/internal/delivery/http/middleware"
	"inkspot/internal/delivery/http/router/handler"
	"inkspot/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	ViewHandler    *handler.ViewHandler
	CatalogHandler *handler.CatalogHandler
	ChatHandler    *handler.ChatHandler
	BillingHandler *handler.BillingHandler
	AdminHandler   *handler.AdminHandler
	AIHandler      *handler.AIHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	account *handler.AccountHandler
	view    *handler.ViewHandler
	catalog *handler.CatalogHandler
	chat    *handler.ChatHandler
	billing *handler.BillingHandler
	admin   *handler.AdminHandler
	ai      *handler.AIHandler
	auth    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		account: params.AccountHandler,
		view:    params.ViewHandler,
		catalog: params.CatalogHandler,
		chat:    params.ChatHandler,
		billing: params.BillingHandler,
		admin:   params.AdminHandler,
		ai:      params.AIHandler,
		auth:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.account.SignUp)
		authGroup.POST("/login", r.account.Login)
	}

	// Public catalog reads
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/home", r.catalog.Home)
		catalogGroup.GET("/artists", r.catalog.Artists)
		catalogGroup.GET("/artists/:id", r.catalog.ArtistDetail)
		catalogGroup.GET("/artists/:id/qr", r.catalog.ShareQR)
		catalogGroup.GET("/tattoos/:id", r.catalog.TattooDetail, r.auth.AuthenticateOptional)
		catalogGroup.GET("/events", r.catalog.Events)
		catalogGroup.GET("/events/:id", r.catalog.EventDetail)
		catalogGroup.GET("/search", r.catalog.Search)
	}

	// Billing catalog is public, purchases are not
	e.GET("/billing/plans", r.billing.Plans)

	// AI generation endpoints
	aiGroup := e.Group("/ai")
	{
		aiGroup.POST("/idea", r.ai.GenerateIdea)
		aiGroup.POST("/image", r.ai.GenerateImage)
	}

	// Account routes that require authentication
	meGroup := e.Group("/me")
	meGroup.Use(r.auth.Authenticate)
	{
		meGroup.GET("", r.account.Me)
		meGroup.POST("/logout", r.account.Logout)
		meGroup.PUT("/profile", r.account.SaveProfile)
		meGroup.GET("/likes", r.catalog.LikedContent)
		meGroup.POST("/likes/tattoos/:id", r.catalog.ToggleLikeTattoo)
		meGroup.POST("/likes/artists/:id", r.catalog.ToggleLikeArtist)
		meGroup.GET("/dashboard", r.catalog.Dashboard)
		meGroup.POST("/billing/purchase", r.billing.PurchasePlan)
		meGroup.POST("/interacted", r.chat.MarkInteracted)
		meGroup.PUT("/notification-permission", r.chat.SetNotificationPermission)
		meGroup.PUT("/foreground", r.chat.SetForeground)
	}

	// Navigation state machine
	viewGroup := e.Group("/view")
	viewGroup.Use(r.auth.Authenticate)
	{
		viewGroup.GET("", r.view.State)
		viewGroup.POST("/navigate", r.view.Navigate)
		viewGroup.POST("/artists/:id", r.view.SelectArtist)
		viewGroup.POST("/tattoos/:id", r.view.SelectTattoo)
		viewGroup.POST("/events/:id", r.view.SelectEvent)
		viewGroup.POST("/search", r.view.Search)
		viewGroup.POST("/back", r.view.Back)
		viewGroup.POST("/back-to-artist", r.view.BackToArtist)
		viewGroup.POST("/footer", r.view.OpenFooterPage)
		viewGroup.POST("/footer/back", r.view.BackFromFooter)
		viewGroup.PUT("/my-page", r.view.SetMyPageView)
		viewGroup.PUT("/creating-event", r.view.SetCreatingEvent)
		viewGroup.PUT("/uploading-tattoo", r.view.SetUploadingTattoo)
	}

	// Content commands for logged-in accounts
	contentGroup := e.Group("/content")
	contentGroup.Use(r.auth.Authenticate)
	{
		contentGroup.POST("/tattoos", r.catalog.UploadTattoo)
		contentGroup.POST("/events", r.catalog.CreateEvent)
		contentGroup.POST("/reviews", r.catalog.SubmitReview)
	}

	// Chat routes
	chatGroup := e.Group("/chats")
	chatGroup.Use(r.auth.Authenticate)
	{
		chatGroup.GET("", r.chat.Rooms)
		chatGroup.POST("", r.chat.Start)
		chatGroup.GET("/:id/messages", r.chat.Messages)
		chatGroup.POST("/:id/messages", r.chat.Send)
		chatGroup.POST("/:id/select", r.chat.Select)
		chatGroup.POST("/close", r.chat.Close)
		chatGroup.POST("/:id/open-notification", r.chat.OpenNotification)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.auth.Authenticate)
	adminGroup.Use(r.auth.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/overview", r.admin.Overview)
		adminGroup.GET("/artists", r.admin.Artists)
		adminGroup.GET("/artists/pending", r.admin.PendingArtists)
		adminGroup.POST("/artists/:id/approve", r.admin.ApproveArtist)
		adminGroup.POST("/artists/:id/reject", r.admin.RejectArtist)
		adminGroup.PUT("/artists/:id/subscription", r.admin.SetSubscription)
		adminGroup.DELETE("/tattoos/:id", r.admin.DeleteTattoo)
		adminGroup.DELETE("/events/:id", r.admin.DeleteEvent)
		adminGroup.DELETE("/reviews/:id", r.admin.DeleteReview)
		adminGroup.GET("/payments", r.admin.Payments)
	}
}
