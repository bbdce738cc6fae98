package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/ecommerce-catalog/catalog-service/config"
	"github.com/ecommerce-catalog/catalog-service/internal/controller"
	"github.com/ecommerce-catalog/catalog-service/internal/infrastructure/database/mongodb"
	"github.com/ecommerce-catalog/catalog-service/internal/infrastructure/tracing"
	"github.com/ecommerce-catalog/catalog-service/internal/repository"
	"github.com/ecommerce-catalog/catalog-service/internal/seed"
	"github.com/ecommerce-catalog/catalog-service/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	if config.TracingConfig.CollectorHost != "" {
		tracerProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize tracing")
		}
		defer tracerProvider.Shutdown(context.Background())
	}

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		panic(err)
	}

	defer db.Client().Disconnect(context.Background())

	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	repo := repository.CreateNewMongoDBRepository(db)

	if err := seed.Run(context.Background(), repo, config.SeedFilePath); err != nil {
		log.Error().Err(err).Msg("failed to seed catalog")
	}

	e := echo.New()
	e.Use(middleware.CORS())
	g := e.Group("/v1")

	svc := service.CreateProductService(repo)
	controller.CreateProductController(g, svc)

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
