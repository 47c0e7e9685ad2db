package database

import (
	"context"
	"fmt"
	"time"

	"landscout-backoffice/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var DB *mongo.Database

// Collection names used across the repositories.
const (
	CollScrapedProperties = "scraped_properties"
	CollSavedProperties   = "saved_properties"
	CollCustomers         = "customers"
	CollInteractions      = "interactions"
	CollLeads             = "leads"
	CollTransactions      = "transactions"
	CollRecurringPayments = "recurring_payments"
	CollMileageEntries    = "mileage_entries"
	CollInventoryItems    = "inventory_items"
	CollUsers             = "users"
	CollOrganizations     = "organizations"
)

func InitDB(uri, dbName string) error {
	if uri == "" || dbName == "" {
		return fmt.Errorf("missing required database settings: uri or dbname")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		client.Disconnect(ctx)
		return fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	DB = client.Database(dbName)

	if err := createIndexes(ctx, DB); err != nil {
		logger.GlobalLogger.Errorf("Failed to create indexes: %v", err)
	}

	logger.GlobalLogger.Println("MongoDB connected successfully.")
	return nil
}

func CloseDB() {
	if MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := MongoClient.Disconnect(ctx); err != nil {
			logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
		} else {
			logger.GlobalLogger.Println("MongoDB connection closed")
		}
	}
}
