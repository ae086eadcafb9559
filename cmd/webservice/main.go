package main

import (
	"context"
	"os"

	"github.com/pos-labs/product-catalog-service/config"
	"github.com/pos-labs/product-catalog-service/internal/app"
	"github.com/pos-labs/product-catalog-service/internal/infrastructure/database/mongodb"
	"github.com/pos-labs/product-catalog-service/internal/infrastructure/message-queue/kafka"
	"github.com/pos-labs/product-catalog-service/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	conf := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(conf.MongoDBConfig.URI, conf.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer db.Client().Disconnect(context.Background())

	// Catalog change events are optional; without a broker the service runs
	// pure CRUD.
	var producer service.EventProducer
	if conf.KafkaConfig.BrokerAddress != "" {
		kafkaProducer, err := kafka.CreateKafkaProducer(conf)
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect to Kafka, continuing without change events")
		} else {
			producer = kafkaProducer
			defer kafkaProducer.Close()
		}
	}

	application := app.App{
		DB:       db,
		Config:   conf,
		Producer: producer,
	}
	application.Start()
}
