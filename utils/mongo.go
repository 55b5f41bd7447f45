package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/soiemaison/storefront-backend/models"
)

var Client *mongo.Client

// ConnectMongo initializes the MongoDB connection
func ConnectMongo(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database
	err = client.Ping(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	Client = client
	logrus.Info("Connected to MongoDB")
	return nil
}

// GetCollection returns a handle to a MongoDB collection, or nil when no
// database is configured. Callers fall back to in-memory behavior on nil.
func GetCollection(databaseName, collectionName string) *mongo.Collection {
	if Client == nil {
		return nil
	}
	return Client.Database(databaseName).Collection(collectionName)
}

// SeedCatalog inserts the built-in silk catalog into an empty products
// collection so a fresh deployment serves the same data the client expects.
func SeedCatalog(ctx context.Context, coll *mongo.Collection) error {
	if coll == nil {
		return nil
	}

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(models.DefaultCatalog))
	for _, p := range models.DefaultCatalog {
		docs = append(docs, p)
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	logrus.WithField("products", len(docs)).Info("Seeded product catalog")
	return nil
}
