package main

import (
	"context"
	"time"

	"elimpostor/config"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Bootstraps the Mongo indexes the store relies on: the unique join-code
// index is what makes code-collision retries safe, and the roster index
// keeps ListBySession ordered reads cheap.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)

	_, err = db.Collection("sessions").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_code"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create sessions.code index")
	}

	_, err = db.Collection("players").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sessionId", Value: 1}, {Key: "joinedAt", Value: 1}},
		Options: options.Index().SetName("roster_order"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create players roster index")
	}

	log.Info().Msg("indexes created")
}
