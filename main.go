package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"go-shopcart/controllers"
	"go-shopcart/middleware"
	"go-shopcart/routes"
	"go-shopcart/stores"
	"go-shopcart/utils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	client, err := utils.ConnectDB(cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("disconnecting from MongoDB")
		}
	}()

	db := client.Database(cfg.DatabaseName)
	userStore := stores.NewMongoUserStore(db)
	productStore := stores.NewMongoProductStore(db)
	cartStore := stores.NewMongoCartStore(db)

	tokens := utils.NewTokenService([]byte(cfg.JWTSecret))
	emailService := utils.NewEmailService(cfg.PostmarkToken, cfg.EmailSender)
	if emailService == nil {
		log.Info().Msg("POSTMARK_API_TOKEN not set, outbound email disabled")
	}

	auth := middleware.NewAuth(tokens, userStore)
	userController := controllers.NewUserController(userStore, cartStore, tokens, emailService)
	productController := controllers.NewProductController(productStore)
	sellerController := controllers.NewSellerController(productStore)
	cartController := controllers.NewCartController(cartStore, productStore)

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)
	routes.RegisterRoutes(router, auth, userController, productController, sellerController, cartController)

	log.Info().Str("port", cfg.Port).Msg("server is running")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
