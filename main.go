package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-inventory-service/controllers"
	"clinic-inventory-service/logger"
	"clinic-inventory-service/repository"
	"clinic-inventory-service/routes"
	"clinic-inventory-service/sender"
	"clinic-inventory-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := LoadConfig()

	logger.Initialize(cfg.Env)
	log := logger.Log
	defer log.Sync()

	repo := repository.NewStateRepository(context.Background(), cfg.MongoURI, cfg.MongoDB, cfg.DataFile, log)

	var emailSender sender.EmailSender
	if cfg.EmailEnabled() {
		s, err := sender.NewSMTPSender(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword)
		if err != nil {
			log.Warn("SMTP sender init failed, email notifications disabled", zap.Error(err))
		} else {
			emailSender = s
		}
	} else {
		log.Info("SMTP credentials not set, email notifications disabled")
	}

	notifier := services.NewNotifier(emailSender, log)
	reservationService := services.NewReservationService(repo, notifier, log)
	itemService := services.NewItemService(repo, notifier, reservationService, log)
	orgService := services.NewOrgService(repo, log)

	reservationController := controllers.NewReservationController(reservationService)
	itemController := controllers.NewItemController(itemService)
	orgController := controllers.NewOrgController(orgService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	routes.RegisterRoutes(r, reservationController, itemController, orgController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}
