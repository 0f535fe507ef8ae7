package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"hostel-warden-backend/config"
	"hostel-warden-backend/internal/domain"
	"hostel-warden-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, svc *domain.Service) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(cfg, svc)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	// Read-side caching for the dashboard aggregate only; entity lists
	// change on every compound operation and are cheap to recompute.
	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/rooms", handler.GetRooms)
		api.GET("/rooms/:id", handler.GetRoom)
		api.GET("/rooms/:id/students", handler.GetRoomStudents)

		api.GET("/students", handler.GetStudents)
		api.GET("/students/:id", handler.GetStudent)
		api.POST("/students", handler.AllocateStudent)
		api.POST("/students/:id/deallocate", handler.DeallocateStudent)
		api.POST("/students/:id/payments", handler.RecordPayment)
		api.GET("/payments", handler.GetPayments)

		api.GET("/maintenance", handler.GetMaintenanceRequests)
		api.POST("/maintenance", handler.ReportMaintenance)
		api.POST("/maintenance/:id/start", handler.StartMaintenance)
		api.PATCH("/maintenance/:id/progress", handler.UpdateMaintenanceProgress)
		api.POST("/maintenance/:id/resolve", handler.ResolveMaintenance)

		api.GET("/complaints", handler.GetComplaints)
		api.POST("/complaints", handler.FileComplaint)
		api.POST("/complaints/:id/resolve", handler.ResolveComplaint)

		api.GET("/menus", handler.GetMenus)
		api.POST("/menus/:id/dishes", handler.AddDish)
		api.DELETE("/menus/:id/dishes", handler.RemoveDish)

		api.GET("/food-requests", handler.GetFoodRequests)
		api.POST("/food-requests", handler.SubmitFoodRequest)
		api.POST("/food-requests/:id/votes", handler.VoteFoodRequest)
		api.POST("/food-requests/:id/close", handler.CloseFoodRequest)

		api.GET("/announcements", handler.GetAnnouncements)
		api.POST("/announcements", handler.CreateAnnouncement)
		api.POST("/announcements/:id/publish", handler.PublishAnnouncement)
		api.POST("/announcements/:id/views", handler.RecordAnnouncementView)
		api.POST("/announcements/:id/archive", handler.ArchiveAnnouncement)

		api.GET("/activities", handler.GetActivities)
		api.GET("/reports/stats", caching, handler.GetDashboardStats)
		api.GET("/reports/export", handler.ExportCSV)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)

		api.POST("/admin/reset", handler.ResetData)
	}

	return r
}
