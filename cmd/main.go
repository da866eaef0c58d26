package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	auctionapp "github.com/muhammadheryan/marketplace/application/auction"
	bidapp "github.com/muhammadheryan/marketplace/application/bid"
	cartapp "github.com/muhammadheryan/marketplace/application/cart"
	listingapp "github.com/muhammadheryan/marketplace/application/listing"
	"github.com/muhammadheryan/marketplace/application/policy"
	purchaseapp "github.com/muhammadheryan/marketplace/application/purchase"
	userapp "github.com/muhammadheryan/marketplace/application/user"
	"github.com/muhammadheryan/marketplace/cmd/config"
	redisclient "github.com/muhammadheryan/marketplace/cmd/redis"
	_ "github.com/muhammadheryan/marketplace/docs"
	listingRepo "github.com/muhammadheryan/marketplace/repository/listing"
	purchaseRepo "github.com/muhammadheryan/marketplace/repository/purchase"
	redisRepo "github.com/muhammadheryan/marketplace/repository/redis"
	txRepo "github.com/muhammadheryan/marketplace/repository/tx"
	userRepo "github.com/muhammadheryan/marketplace/repository/user"
	"github.com/muhammadheryan/marketplace/thirdparty/payment"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/thirdparty/shipment"
	"github.com/muhammadheryan/marketplace/transport"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

// @title MARKETPLACE API
// @version 1.0
// @description Marketplace purchase API: direct checkout, auctions and negotiated bids
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ carries the delayed auction-close backstop and user notifications.
	// The server still works without it: timers close auctions in-process.
	var closePublisher auctionapp.ClosePublisher
	var notifier purchaseapp.Notifier
	publisher, err := rabbitmq.NewPublisher(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, running without delayed close backstop", zap.Error(err))
	} else {
		closePublisher = publisher
		notifier = publisher
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()
	ListingRepo := listingRepo.NewListingRepository()
	PurchaseRepo := purchaseRepo.NewPurchaseRepository(db)
	TxRepo := txRepo.NewTxRepository(db)

	// Third-party providers
	paymentProvider := payment.NewHTTPProvider(cfg.Payment.BaseURL, cfg.Payment.Timeout)
	shipmentProvider := shipment.NewHTTPProvider(cfg.Shipment.BaseURL, cfg.Shipment.Timeout)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ListingApp := listingapp.NewListingApp(ListingRepo)
	CartApp := cartapp.NewCartApp(ListingRepo, RedisRepo)
	PurchaseApp := purchaseapp.NewPurchaseApp(ListingRepo, PurchaseRepo, TxRepo, RedisRepo, policy.Permissive(), paymentProvider, shipmentProvider, notifier)
	AuctionApp := auctionapp.NewAuctionApp(cfg.Auction.MinDuration, ListingRepo, PurchaseApp, closePublisher, notifier)
	BidApp := bidapp.NewBidApp(ListingRepo, PurchaseApp, notifier)

	httpTransport := transport.NewTransport(UserApp, ListingApp, CartApp, PurchaseApp, AuctionApp, BidApp, cfg.InternalKey)

	// The consumer replays delayed close messages against the internal endpoint
	// after a restart, when the in-process timers are gone.
	if publisher != nil {
		consumer, err := rabbitmq.NewConsumer(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password, "http://localhost:"+cfg.Server.Port, cfg.InternalKey)
		if err != nil {
			logger.Warn("err create auction close consumer", zap.Error(err))
		} else {
			defer func() {
				_ = consumer.Close()
			}()
			if err := consumer.Start(context.Background()); err != nil {
				logger.Warn("err start auction close consumer", zap.Error(err))
			}
		}
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
