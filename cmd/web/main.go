package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Hao186188/parttime-job-frontend/internal/api"
	"github.com/Hao186188/parttime-job-frontend/internal/config"
	"github.com/Hao186188/parttime-job-frontend/internal/handlers"
	"github.com/Hao186188/parttime-job-frontend/internal/models"
	"github.com/Hao186188/parttime-job-frontend/internal/services"
	"github.com/Hao186188/parttime-job-frontend/internal/session"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("[web] No .env file found — using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[web] Config error: %v", err)
	}

	ctx := context.Background()

	// 2. Durable session storage + session store
	storage, err := session.NewRedisStorage(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[web] Redis error: %v", err)
	}
	defer storage.Close()

	store := session.NewStore(storage)
	if err := store.Load(ctx); err != nil {
		log.Fatalf("[web] Session load error: %v", err)
	}

	// 3. Remote API client (attributes the session's bearer token)
	client := api.NewClient(cfg.APIBaseURL, store)

	// 4. Re-validate any restored identity. A stale token just leaves the
	// session anonymous; it is not fatal.
	if store.IsAuthenticated() {
		if err := store.Reconcile(ctx, client); err != nil {
			log.Printf("[web] Stored session rejected: %v", err)
		}
	}

	// 5. Job collection: initial fetch + periodic background refresh
	listingService := services.NewListingService(client)
	if err := listingService.Refresh(ctx); err != nil {
		log.Printf("[web] Initial job fetch failed (will retry on schedule): %v", err)
	}
	if err := listingService.StartRefresher(ctx, cfg.RefreshIntervalMinutes); err != nil {
		log.Fatalf("[web] Refresher error: %v", err)
	}
	defer listingService.Stop()

	// 6. Handlers
	jobHandler := handlers.NewJobHandler(listingService, client)
	authHandler := handlers.NewAuthHandler(client, store)
	appHandler := handlers.NewApplicationHandler(client)
	savedHandler := handlers.NewSavedJobHandler(client)

	// 7. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 8. Routes
	root := r.Group("/api")
	{
		root.GET("/health", handlers.HealthCheck)

		auth := root.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		jobs := root.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.GET("/featured", jobHandler.FeaturedJobs)
			jobs.GET("/employer/my-jobs",
				handlers.RequireRole(store, models.RoleEmployer), jobHandler.EmployerJobs)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.POST("",
				handlers.RequireRole(store, models.RoleEmployer), jobHandler.CreateJob)
			jobs.PUT("/:id",
				handlers.RequireRole(store, models.RoleEmployer), jobHandler.UpdateJob)
			jobs.DELETE("/:id",
				handlers.RequireRole(store, models.RoleEmployer), jobHandler.DeleteJob)
		}

		apps := root.Group("/applications")
		{
			apps.POST("",
				handlers.RequireRole(store, models.RoleStudent), appHandler.Apply)
			apps.GET("/student/my-applications",
				handlers.RequireRole(store, models.RoleStudent), appHandler.MyApplications)
			apps.GET("/employer/job-applications",
				handlers.RequireRole(store, models.RoleEmployer), appHandler.EmployerApplications)
			apps.GET("/employer/statistics",
				handlers.RequireRole(store, models.RoleEmployer), appHandler.Statistics)
			apps.PUT("/:id/status",
				handlers.RequireRole(store, models.RoleEmployer), appHandler.UpdateStatus)
			apps.DELETE("/:id",
				handlers.RequireRole(store, models.RoleStudent), appHandler.Withdraw)
		}

		saved := root.Group("/users/saved-jobs", handlers.RequireAuth(store))
		{
			saved.GET("", savedHandler.List)
			saved.POST("/:id", savedHandler.Save)
			saved.DELETE("/:id", savedHandler.Remove)
		}
	}

	log.Printf("[web] Listening on :%s (API: %s)", cfg.Port, cfg.APIBaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[web] Server failed: %v", err)
	}
}
