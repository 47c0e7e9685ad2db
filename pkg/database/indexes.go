package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// createIndexes bootstraps the indexes the tenant-scoped queries and the
// cleanup cutoff scan rely on.
func createIndexes(ctx context.Context, db *mongo.Database) error {
	tenant := bson.D{{Key: "organization_id", Value: 1}, {Key: "user_id", Value: 1}}

	indexes := map[string][]mongo.IndexModel{
		CollScrapedProperties: {
			{Keys: tenant},
			{Keys: bson.D{{Key: "search_session_id", Value: 1}}},
			{Keys: bson.D{{Key: "is_saved", Value: 1}, {Key: "scraped_at", Value: 1}}},
		},
		CollSavedProperties: {
			{Keys: tenant},
			{Keys: bson.D{{Key: "scraped_property_id", Value: 1}}},
		},
		CollCustomers: {
			{Keys: tenant},
		},
		CollInteractions: {
			{Keys: tenant},
			{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		},
		CollLeads: {
			{Keys: tenant},
			{Keys: bson.D{{Key: "source", Value: 1}}},
		},
		CollTransactions: {
			{Keys: tenant},
			{Keys: bson.D{{Key: "occurred_at", Value: -1}}},
		},
		CollRecurringPayments: {
			{Keys: tenant},
		},
		CollMileageEntries: {
			{Keys: tenant},
		},
		CollInventoryItems: {
			{Keys: tenant},
		},
		CollUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
