package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sorveteria-backend/config"
	"sorveteria-backend/handlers"
	"sorveteria-backend/middleware"
	"sorveteria-backend/routes"
	"sorveteria-backend/scheduler"
	"sorveteria-backend/services"
	"sorveteria-backend/store"
	"sorveteria-backend/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables
	if err := config.LoadEnv(); err != nil {
		log.Fatal("Error loading .env file:", err)
	}

	// Validate critical environment variables
	if err := config.ValidateEnv(); err != nil {
		log.Fatal("Environment validation failed: ", err)
	}

	// The profile lives in memory only; a restart starts from an empty store.
	st := store.New()
	svc := services.New(st)

	authHandler, err := handlers.NewAuthHandler()
	if err != nil {
		log.Fatal("Failed to initialize auth:", err)
	}

	// Setup Gin router
	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())
	r.Use(middleware.RequestID())

	// CORS configuration - filter out empty strings from AllowOrigins
	origins := []string{os.Getenv("FRONTEND_URL"), os.Getenv("ADMIN_URL")}
	var filteredOrigins []string
	for _, o := range origins {
		if o != "" {
			filteredOrigins = append(filteredOrigins, o)
		}
	}
	if len(filteredOrigins) == 0 {
		filteredOrigins = []string{"http://localhost:3000"}
		log.Println("WARNING: No CORS origins configured, defaulting to http://localhost:3000")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     filteredOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	// Setup routes
	routes.SetupRoutes(r, svc, authHandler)

	// Internal scheduler for the maintenance jobs; the HTTP cron endpoints
	// remain available for external triggering either way.
	var sched *scheduler.Scheduler
	if config.GetEnv("CRON_ENABLED", "true") != "false" {
		sched = scheduler.New(svc)
		if err := sched.Start(); err != nil {
			log.Fatal("Failed to start scheduler:", err)
		}
	}

	// Start server with graceful shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Run server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if sched != nil {
		sched.Stop()
	}

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited gracefully")
}
