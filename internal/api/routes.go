package api

import (
	"net/http"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	trackerService service.TrackerService,
	activityService service.ActivityService,
	nutritionService service.NutritionService,
	emotionService service.EmotionService,
	adminService service.AdminService,
) {
	authHandler := NewAuthHandler(authService)
	trackerHandler := NewTrackerHandler(trackerService)
	activityHandler := NewActivityHandler(activityService)
	nutritionHandler := NewNutritionHandler(nutritionService)
	emotionHandler := NewEmotionHandler(emotionService)
	adminHandler := NewAdminHandler(adminService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/forgot-password", authHandler.ForgotPassword)
			authGroup.POST("/reset-password", authHandler.ResetPassword)
		}

		// Separate credential realm for admins.
		adminAuthGroup := apiV1.Group("/admin")
		{
			adminAuthGroup.POST("/register", adminHandler.Register)
			adminAuthGroup.POST("/login", adminHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Account ---
		protected.GET("/profile", RoleMiddleware(domain.RoleUser), authHandler.GetProfile)
		protected.PUT("/profile", RoleMiddleware(domain.RoleUser), authHandler.UpdateProfile)
		protected.PUT("/profile/restrictions", RoleMiddleware(domain.RoleUser), authHandler.UpdateRestrictions)

		// --- Weight-management tracker ---
		trackerGroup := protected.Group("/tracker")
		trackerGroup.Use(RoleMiddleware(domain.RoleUser))
		{
			trackerGroup.GET("", trackerHandler.GetOverview)
			trackerGroup.DELETE("", trackerHandler.Reset)
			trackerGroup.POST("/calculate", trackerHandler.CalculatePlan)
			trackerGroup.POST("/entries", trackerHandler.RecordEntry)
			trackerGroup.GET("/entries", trackerHandler.GetEntries)
			trackerGroup.GET("/stats/weekly", trackerHandler.GetWeeklyStats)
			trackerGroup.GET("/stats/monthly", trackerHandler.GetMonthlyStats)
			trackerGroup.GET("/progress", trackerHandler.GetWeeklyProgress)
		}

		// --- Exercise log ---
		activityGroup := protected.Group("/activities")
		activityGroup.Use(RoleMiddleware(domain.RoleUser))
		{
			activityGroup.GET("", activityHandler.ListActivities)
			activityGroup.POST("", activityHandler.AddActivity)
			activityGroup.DELETE("/:id", activityHandler.DeleteActivity)
		}

		// --- Food log ---
		nutritionGroup := protected.Group("/nutrition")
		nutritionGroup.Use(RoleMiddleware(domain.RoleUser))
		{
			nutritionGroup.GET("", nutritionHandler.ListEntries)
			nutritionGroup.POST("", nutritionHandler.AddEntry)
			nutritionGroup.GET("/today", nutritionHandler.TodaySummary)
		}

		// --- Emotion check-ins ---
		emotionGroup := protected.Group("/emotion")
		emotionGroup.Use(RoleMiddleware(domain.RoleUser))
		{
			emotionGroup.POST("/check-in", emotionHandler.CheckIn)
			emotionGroup.POST("/tips", emotionHandler.SaveTips)
			emotionGroup.GET("/tips", emotionHandler.ListSavedTips)
			emotionGroup.DELETE("/tips/:id", emotionHandler.DeleteTip)
		}

		// --- Administration ---
		adminGroup := protected.Group("/admin")
		adminGroup.Use(RoleMiddleware(domain.RoleAdmin))
		{
			adminGroup.GET("/users", adminHandler.ListUsers)
			adminGroup.DELETE("/users/:id", adminHandler.DeleteUser)
			adminGroup.GET("/admins", adminHandler.ListAdmins)
			adminGroup.DELETE("/admins/:id", adminHandler.DeleteAdmin)
		}
	}
}
