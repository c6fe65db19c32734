package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bootcamp-go/internal/api/middleware"
	"github.com/linskybing/bootcamp-go/internal/api/routes"
	"github.com/linskybing/bootcamp-go/internal/application"
	"github.com/linskybing/bootcamp-go/internal/config"
	"github.com/linskybing/bootcamp-go/internal/config/db"
	"github.com/linskybing/bootcamp-go/internal/cron"
	"github.com/linskybing/bootcamp-go/internal/mail"
	"github.com/linskybing/bootcamp-go/internal/media"
	"github.com/linskybing/bootcamp-go/internal/repository"
	"github.com/linskybing/bootcamp-go/internal/tokenstore"
)

// @title Bootcamp API
// @version 1.0
// @description Public submission intake and admin moderation for the bootcamp site.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokens, err := tokenstore.FromConfig()
	if err != nil {
		log.Fatalf("Failed to open token store: %v", err)
	}
	switch store := tokens.(type) {
	case *tokenstore.Memory:
		cron.StartSweepTask(ctx, store, time.Hour)
	case *tokenstore.Valkey:
		defer store.Close()
	}
	middleware.Init(tokens)

	// Connect and auto migrate
	db.Init()

	store, err := media.FromConfig(ctx)
	if err != nil {
		log.Fatalf("Failed to open media store: %v", err)
	}
	if store == nil {
		log.Println("MINIO_ENDPOINT not set, testimonial uploads disabled")
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, application.Deps{
		Mailer:       mail.FromConfig(),
		Media:        store,
		ServiceTypes: config.ServiceTypes,
		AdminEmail:   config.AdminNotifyEmail,
		TokenTTL:     config.AccessTokenTTL,
	})

	if config.AdminUsername != "" {
		if err := services.User.SeedAdmin(config.AdminUsername, config.AdminPassword, config.AdminEmail); err != nil {
			log.Printf("Warning: failed to seed admin account: %v", err)
		}
	}

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.MaxMultipartMemory = 32 << 20

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, repos, services)

	srv := &http.Server{Addr: ":" + config.ServerPort, Handler: router}
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan
		log.Println("Shutdown signal")
		cancel()

		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start: %v", err)
	}
}
