package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pawsitive/config"
	"pawsitive/handlers"
	"pawsitive/middleware"
	"pawsitive/routes"
	"pawsitive/services/bans"
	"pawsitive/services/chat"
	"pawsitive/services/enquiries"
	ai "pawsitive/services/intelligence"
	"pawsitive/services/scheduling"
	"pawsitive/services/visitors"
	"pawsitive/store"
	"pawsitive/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Stores. All state is process-lifetime only; a restart starts clean.
	schedulerStore := store.NewSchedulerStore()
	visitorStore := store.NewVisitorStore()
	chatStore := store.NewChatStore()
	banStore := store.NewBanStore()
	enquiryStore := store.NewEnquiryStore()

	// Services.
	visitorService := &visitors.DefaultVisitorService{Store: visitorStore}
	banService := &bans.DefaultBanService{Store: banStore, Logger: logger}
	enquiryService := &enquiries.DefaultEnquiryService{Store: enquiryStore, Logger: logger}
	schedulingEngine := &scheduling.DefaultSchedulingEngine{Store: schedulerStore, Logger: logger}

	var replyGateway ai.ReplyGateway
	if gateway, err := ai.NewGeminiGateway(config.AppConfig.GeminiAPIKey); err != nil {
		logger.Sugar().Warnf("main: AI assistant disabled: %v", err)
	} else {
		replyGateway = gateway
	}
	chatService := &chat.DefaultChatService{Store: chatStore, Gateway: replyGateway, Logger: logger}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.BanCheckMiddleware(banService))
	router.Use(middleware.VisitorTrackerMiddleware(visitorService))
	router.LoadHTMLGlob("templates/*.html")

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Scheduling: handlers.NewSchedulingHandler(schedulingEngine, logger),
		Chat:       handlers.NewChatHandler(chatService, logger),
		Enquiries:  handlers.NewEnquiryHandler(enquiryService, logger),
		Admin:      handlers.NewAdminHandler(visitorService, banService, logger),
		Pages:      handlers.NewPageHandler(),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
