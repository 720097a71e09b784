package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gopkg.in/natefinch/lumberjack.v2"

	"stayease-backend/config"
	"stayease-backend/domain"
	"stayease-backend/handlers"
	"stayease-backend/repository"
	"stayease-backend/routes"
	"stayease-backend/services"
	"stayease-backend/utils"
)

var (
	server      *gin.Engine
	ctx         context.Context
	cfg         config.Config
	logger      *logrus.Logger
	mongoclient *mongo.Client

	catalogService      services.CatalogService
	pricingService      services.PricingService
	bookingService      services.BookingService
	savedService        services.SavedItemService
	authService         services.AuthService
	notificationService services.NotificationService

	AuthRouteHandler      routes.AuthRouteHandler
	BookingRouteHandler   routes.BookingRouteHandler
	CatalogRouteHandler   routes.CatalogRouteHandler
	SavedItemRouteHandler routes.SavedItemRouteHandler
)

func init() {
	ctx = context.TODO()

	var err error
	cfg, err = config.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	//logging
	logger = logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	lumberjackLog := &lumberjack.Logger{
		Filename:  cfg.LogFile,
		MaxSize:   1,
		LocalTime: true,
	}
	logger.SetOutput(lumberjackLog)
	logger.WithFields(logrus.Fields{"path": "main"}).Info("StayEase backend starting")
	//logging

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		panic(err)
	}

	var (
		bookingRepo domain.BookingRepository
		savedRepo   domain.SavedItemRepository
		userRepo    domain.UserRepository
	)

	switch cfg.Store {
	case "mongo":
		mongoconn := options.Client().ApplyURI(cfg.MongoDBURI)
		mongoclient, err = mongo.Connect(ctx, mongoconn)
		if err != nil {
			panic(err)
		}
		if err := mongoclient.Ping(ctx, readpref.Primary()); err != nil {
			panic(err)
		}
		logger.Info("MongoDB successfully connected...")

		db := mongoclient.Database("StayEase")
		bookingRepo = repository.NewMongoBookingRepo(db.Collection("bookings"), ctx, logger)
		savedRepo = repository.NewMongoSavedItemRepo(db.Collection("savedItems"), ctx, logger)
		userRepo = repository.NewMongoUserRepo(db.Collection("users"), ctx, logger)
	case "cassandra":
		cassRepo, err := repository.NewCassandraBookingRepo(cfg.CassDB, logger)
		if err != nil {
			logger.Fatalf("Cassandra connection failed: %s", err)
		}
		cassRepo.CreateTable()
		bookingRepo = cassRepo
		savedRepo = repository.NewFileSavedItemRepo(cfg.DataDir, logger)
		userRepo = repository.NewFileUserRepo(cfg.DataDir, logger)
	case "file":
		bookingRepo = repository.NewFileBookingRepo(cfg.DataDir, logger)
		savedRepo = repository.NewFileSavedItemRepo(cfg.DataDir, logger)
		userRepo = repository.NewFileUserRepo(cfg.DataDir, logger)
	default:
		logger.Fatalf("unknown STORE %q", cfg.Store)
	}

	sessionStore := repository.NewFileSessionStore(cfg.SessionFile, logger)
	catalogRepo := repository.NewInMemoryCatalogRepo()

	pricingService = services.NewPricingServiceImpl()
	catalogService = services.NewCatalogServiceImpl(catalogRepo)
	notificationService = services.NewNotificationServiceImpl(&cfg, logger)
	bookingService = services.NewBookingServiceImpl(bookingRepo, pricingService, utils.NewBookingValidator(), notificationService, logger)
	savedService = services.NewSavedItemServiceImpl(savedRepo)
	authService = services.NewAuthServiceImpl(userRepo, sessionStore, bookingService, cfg.SecretKey, time.Duration(cfg.TokenTTLHours)*time.Hour, logger)

	authHandler := handlers.NewAuthHandler(authService)
	bookingHandler := handlers.NewBookingHandler(bookingService, catalogService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, pricingService)
	savedHandler := handlers.NewSavedItemHandler(savedService, catalogService)

	AuthRouteHandler = routes.NewAuthRouteHandler(authHandler, authService)
	BookingRouteHandler = routes.NewBookingRouteHandler(bookingHandler, authService)
	CatalogRouteHandler = routes.NewCatalogRouteHandler(catalogHandler)
	SavedItemRouteHandler = routes.NewSavedItemRouteHandler(savedHandler, authService)

	server = gin.Default()
}

func main() {
	if mongoclient != nil {
		defer mongoclient.Disconnect(ctx)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.ClientOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	server.Use(cors.New(corsConfig))

	router := server.Group("/api")
	router.GET("/healthchecker", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "StayEase backend is running"})
	})

	AuthRouteHandler.AuthRoute(router)
	BookingRouteHandler.BookingRoute(router)
	CatalogRouteHandler.CatalogRoute(router)
	SavedItemRouteHandler.SavedItemRoute(router)

	err := server.Run(":" + cfg.Port)
	if err != nil {
		fmt.Println(err)
		return
	}
}
