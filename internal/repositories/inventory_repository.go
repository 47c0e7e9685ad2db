package repositories

import (
	"context"
	"time"

	"landscout-backoffice/internal/models"
	"landscout-backoffice/pkg/database"
	"landscout-backoffice/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type inventoryRepository struct {
	collection *mongo.Collection
}

func NewInventoryRepository() InventoryRepository {
	return &inventoryRepository{
		collection: database.DB.Collection(database.CollInventoryItems),
	}
}

func (r *inventoryRepository) FindAll(ctx context.Context, tenant models.Tenant) ([]models.InventoryItem, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	start := time.Now()
	cursor, err := r.collection.Find(ctx, tenantFilter(tenant), findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.CollInventoryItems).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollInventoryItems).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.InventoryItem{}
	if err := cursor.All(ctx, &items); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.CollInventoryItems).Inc()
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, item)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.CollInventoryItems).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.CollInventoryItems).Inc()
		return err
	}
	return nil
}
