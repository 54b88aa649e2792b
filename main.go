// File: servigo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servigo/config"
	"servigo/cron"
	"servigo/database"
	categoryRepoPkg "servigo/database/repository/category"
	imageRepoPkg "servigo/database/repository/image"
	listingRepoPkg "servigo/database/repository/listing"
	profileRepoPkg "servigo/database/repository/profile"
	providerRepoPkg "servigo/database/repository/provider"
	reviewRepoPkg "servigo/database/repository/review"
	"servigo/handlers"
	"servigo/middleware"
	"servigo/routes"
	"servigo/services/catalog"
	"servigo/services/locale"
	"servigo/services/provider"
	"servigo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitLocaleCache()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	listings := listingRepoPkg.NewMongoListingRepo()
	providers := providerRepoPkg.NewMongoProviderRepo()
	categories := categoryRepoPkg.NewMongoCategoryRepo()
	profiles := profileRepoPkg.NewMongoProfileRepo()
	images := imageRepoPkg.NewMongoServiceImageRepo()
	reviews := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Listings:   listings,
		Providers:  providers,
		CategoryDB: categories,
		Profiles:   profiles,
		Images:     images,
		Notifier:   catalog.NewRedisNotifier(utils.GetCacheClient(), logger),
		Logger:     logger,
	}

	localeManager := locale.NewManager(
		context.Background(),
		locale.NewRedisTagStore(utils.GetLocaleCacheClient()),
		logger,
	)

	providerService := &provider.DefaultProviderService{
		Repo:       providers,
		Profiles:   profiles,
		Categories: categories,
		Listings:   listings,
		Images:     images,
		Reviews:    reviews,
		Tasks:      cron.NewTaskClient(),
		Logger:     logger,
	}

	// Background workers: rating recompute queue and the listing change
	// watcher that keeps the enriched snapshot current.
	cron.InitRatingWorker(providerService)

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go catalogService.Watch(watchCtx)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if err := catalogService.LoadListings(loadCtx); err != nil {
		logger.Sugar().Warnf("main: initial listing load failed: %v", err)
	}
	cancelLoad()

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetLocaleCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CatalogHandler:  handlers.NewCatalogHandler(catalogService),
		ProviderHandler: handlers.NewProviderHandler(providerService),
		LocaleHandler:   handlers.NewLocaleHandler(localeManager),
		StorageHandler:  handlers.NewStorageHandler(cloudinaryStorageService, images),
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

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
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

	stopWatch()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
