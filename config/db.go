package config

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo connects to MongoDB and verifies the connection with a ping
// bounded by cfg.ReadyTimeout. A nil database (with error) means the caller
// should degrade to the local-only backend.
func ConnectMongo(cfg Config) (*mongo.Database, error) {
	log.Println("Connecting to MongoDB at:", cfg.MongoURI)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ReadyTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client.Database(cfg.MongoDatabase), nil
}
