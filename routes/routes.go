package routes

import (
	"time"

	"github.com/Jgauri24/fitfusion-backend/controllers"
	"github.com/Jgauri24/fitfusion-backend/middlewares"
	"github.com/Jgauri24/fitfusion-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(gw *services.RecordGateway) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	analyticsCtl := controllers.NewAnalyticsController(services.NewAnalyticsService(gw))
	notificationCtl := controllers.NewNotificationController(
		services.NewNotificationService(gw, services.DefaultThresholds()))
	activityCtl := controllers.NewActivityController(gw)
	nutritionCtl := controllers.NewNutritionController(gw)
	moodCtl := controllers.NewMoodController(gw)
	journalCtl := controllers.NewJournalController(gw)
	environmentCtl := controllers.NewEnvironmentController(gw)
	eventCtl := controllers.NewEventController(services.NewEventService(gw))
	reportCtl := controllers.NewReportController(services.NewReportService(gw))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/analytics/weekly", analyticsCtl.GetWeeklyActivity)
		api.GET("/analytics/mood", analyticsCtl.GetMoodTrend)
		api.GET("/dashboard/stats", analyticsCtl.GetDashboardStats)
		api.GET("/notifications", notificationCtl.GetNotifications)

		api.POST("/activities", activityCtl.LogActivity)
		api.GET("/activities", activityCtl.ListActivities)
		api.DELETE("/activities/:id", activityCtl.DeleteActivity)

		api.POST("/meals", nutritionCtl.LogMeal)
		api.GET("/meals", nutritionCtl.ListMeals)
		api.DELETE("/meals/:id", nutritionCtl.DeleteMeal)

		api.POST("/moods", moodCtl.CheckIn)
		api.GET("/moods", moodCtl.ListCheckIns)

		api.POST("/journals", journalCtl.CreateEntry)
		api.GET("/journals", journalCtl.ListEntries)

		api.POST("/environment", environmentCtl.IngestReading)
		api.GET("/environment/current", environmentCtl.CurrentReadings)

		api.GET("/events", eventCtl.ListEvents)
		api.POST("/events/:id/join", eventCtl.JoinEvent)
		api.DELETE("/events/:id/join", eventCtl.LeaveEvent)

		api.POST("/reports", reportCtl.SubmitReport)
		api.GET("/reports", reportCtl.RecentReports)
	}

	return r
}
