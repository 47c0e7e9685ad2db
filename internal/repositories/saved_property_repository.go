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
)

type savedPropertyRepository struct {
	collection *mongo.Collection
}

func NewSavedPropertyRepository() SavedPropertyRepository {
	return &savedPropertyRepository{
		collection: database.DB.Collection(database.CollSavedProperties),
	}
}

func (r *savedPropertyRepository) Create(ctx context.Context, property *models.SavedProperty) error {
	property.ID = primitive.NewObjectID()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, property)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.CollSavedProperties).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.CollSavedProperties).Inc()
		return err
	}
	return nil
}

func (r *savedPropertyRepository) FindByTenant(ctx context.Context, tenant models.Tenant) ([]models.SavedProperty, error) {
	start := time.Now()
	cursor, err := r.collection.Find(ctx, tenantFilter(tenant))
	metrics.MongoOperationDuration.WithLabelValues("find", database.CollSavedProperties).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollSavedProperties).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := []models.SavedProperty{}
	if err := cursor.All(ctx, &properties); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.CollSavedProperties).Inc()
		return nil, err
	}
	return properties, nil
}

func (r *savedPropertyRepository) FindByID(ctx context.Context, tenant models.Tenant, id string) (*models.SavedProperty, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	filter := tenantFilter(tenant)
	filter["_id"] = objectID

	start := time.Now()
	var property models.SavedProperty
	err = r.collection.FindOne(ctx, filter).Decode(&property)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.CollSavedProperties).Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.CollSavedProperties).Inc()
		return nil, err
	}
	return &property, nil
}

func (r *savedPropertyRepository) Delete(ctx context.Context, tenant models.Tenant, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	filter := tenantFilter(tenant)
	filter["_id"] = objectID

	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, filter)
	metrics.MongoOperationDuration.WithLabelValues("delete_one", database.CollSavedProperties).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("delete_one", database.CollSavedProperties).Inc()
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *savedPropertyRepository) MarkExported(ctx context.Context, tenant models.Tenant, id string, exportedAt time.Time) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	filter := tenantFilter(tenant)
	filter["_id"] = objectID

	update := bson.M{"$set": bson.M{"exported_to_leads": true, "exported_at": exportedAt}}
	start := time.Now()
	result, err := r.collection.UpdateOne(ctx, filter, update)
	metrics.MongoOperationDuration.WithLabelValues("update_one", database.CollSavedProperties).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", database.CollSavedProperties).Inc()
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
