package routes

import (
    "net/http"

    "github.com/anilkaliya/LifeOs/config"
    "github.com/anilkaliya/LifeOs/controllers"
    "github.com/anilkaliya/LifeOs/middlewares"
    "github.com/anilkaliya/LifeOs/services"

    "github.com/gin-contrib/cors"
    "github.com/gin-contrib/sessions"
    "github.com/gin-contrib/sessions/cookie"
    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.New()
    r.Use(gin.Recovery(), middlewares.RequestLogger())

    // The SPA lives on its own origin and sends the session cookie.
    r.Use(cors.New(cors.Config{
        AllowOrigins:     []string{config.App.ClientURL},
        AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
        AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
        AllowCredentials: true,
    }))

    store := cookie.NewStore([]byte(config.App.SessionSecret))
    store.Options(sessions.Options{
        Path:     "/",
        MaxAge:   86400,
        HttpOnly: true,
        Secure:   config.App.Env == "production",
        SameSite: http.SameSiteLaxMode,
    })
    r.Use(sessions.Sessions("lifeos_session", store))

    r.GET("/", func(c *gin.Context) {
        c.String(http.StatusOK, "LifeOS API is running")
    })

    // Public auth routes
    auth := r.Group("/api/auth")
    {
        auth.POST("/register", controllers.Register)
        auth.POST("/login", controllers.Login)
        auth.GET("/google", controllers.GoogleLogin)
        auth.GET("/callback/google", controllers.GoogleCallback)
        auth.GET("/logout", controllers.Logout)
        auth.GET("/me", middlewares.AuthMiddleware(), controllers.Me)
    }

    // Protected log + analytics routes
    api := r.Group("/api")
    api.Use(middlewares.AuthMiddleware())
    {
        api.POST("/meals", controllers.LogMeal)
        api.GET("/meals", controllers.ListMeals)
        api.DELETE("/meals/:id", controllers.DeleteMeal)

        api.POST("/workouts", controllers.LogWorkout)
        api.GET("/workouts", controllers.ListWorkouts)
        api.DELETE("/workouts/:id", controllers.DeleteWorkout)

        api.POST("/learning", controllers.LogLearningSession)
        api.GET("/learning", controllers.ListLearningSessions)
        api.DELETE("/learning/:id", controllers.DeleteLearningSession)

        api.GET("/skincare/:date", controllers.GetSkinCareLog)
        api.POST("/skincare", controllers.UpsertSkinCareLog)

        analytics := controllers.NewAnalyticsController(services.NewAnalyticsService(config.DB))
        api.GET("/analytics", analytics.GetAnalytics)
    }

    return r
}
