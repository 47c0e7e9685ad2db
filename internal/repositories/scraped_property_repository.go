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

type scrapedPropertyRepository struct {
	collection *mongo.Collection
}

func NewScrapedPropertyRepository() ScrapedPropertyRepository {
	return &scrapedPropertyRepository{
		collection: database.DB.Collection(database.CollScrapedProperties),
	}
}

func tenantFilter(tenant models.Tenant) bson.M {
	return bson.M{
		"organization_id": tenant.OrganizationID,
		"user_id":         tenant.UserID,
	}
}

func (r *scrapedPropertyRepository) InsertBatch(ctx context.Context, properties []models.ScrapedProperty) error {
	if len(properties) == 0 {
		return nil
	}
	docs := make([]interface{}, len(properties))
	for i := range properties {
		docs[i] = properties[i]
	}
	start := time.Now()
	_, err := r.collection.InsertMany(ctx, docs)
	metrics.MongoOperationDuration.WithLabelValues("insert_many", database.CollScrapedProperties).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert_many", database.CollScrapedProperties).Inc()
		return err
	}
	return nil
}

func (r *scrapedPropertyRepository) FindByTenant(ctx context.Context, tenant models.Tenant, sessionID string) ([]models.ScrapedProperty, error) {
	filter := tenantFilter(tenant)
	if sessionID != "" {
		filter["search_session_id"] = sessionID
	}
	start := time.Now()
	cursor, err := r.collection.Find(ctx, filter)
	metrics.MongoOperationDuration.WithLabelValues("find", database.CollScrapedProperties).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollScrapedProperties).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	properties := []models.ScrapedProperty{}
	if err := cursor.All(ctx, &properties); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.CollScrapedProperties).Inc()
		return nil, err
	}
	return properties, nil
}

func (r *scrapedPropertyRepository) FindByID(ctx context.Context, tenant models.Tenant, id string) (*models.ScrapedProperty, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil // Malformed id cannot match any record
	}
	filter := tenantFilter(tenant)
	filter["_id"] = objectID

	start := time.Now()
	var property models.ScrapedProperty
	err = r.collection.FindOne(ctx, filter).Decode(&property)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.CollScrapedProperties).Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.CollScrapedProperties).Inc()
		return nil, err
	}
	return &property, nil
}

func (r *scrapedPropertyRepository) MarkSaved(ctx context.Context, tenant models.Tenant, id string, savedAt time.Time) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	filter := tenantFilter(tenant)
	filter["_id"] = objectID

	update := bson.M{"$set": bson.M{"is_saved": true, "saved_at": savedAt}}
	start := time.Now()
	result, err := r.collection.UpdateOne(ctx, filter, update)
	metrics.MongoOperationDuration.WithLabelValues("update_one", database.CollScrapedProperties).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", database.CollScrapedProperties).Inc()
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteUnsavedBefore removes unsaved rows strictly older than cutoff. A row
// whose scraped_at equals the cutoff is retained.
func (r *scrapedPropertyRepository) DeleteUnsavedBefore(ctx context.Context, tenant models.Tenant, cutoff time.Time) (int64, error) {
	filter := tenantFilter(tenant)
	filter["is_saved"] = false
	filter["scraped_at"] = bson.M{"$lt": cutoff}

	start := time.Now()
	result, err := r.collection.DeleteMany(ctx, filter)
	metrics.MongoOperationDuration.WithLabelValues("delete_many", database.CollScrapedProperties).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("delete_many", database.CollScrapedProperties).Inc()
		return 0, err
	}
	return result.DeletedCount, nil
}

// DeleteAll removes every scraped row for the tenant, saved or not. Saved
// properties live in their own collection and are never touched here.
func (r *scrapedPropertyRepository) DeleteAll(ctx context.Context, tenant models.Tenant) (int64, error) {
	start := time.Now()
	result, err := r.collection.DeleteMany(ctx, tenantFilter(tenant))
	metrics.MongoOperationDuration.WithLabelValues("delete_many", database.CollScrapedProperties).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("delete_many", database.CollScrapedProperties).Inc()
		return 0, err
	}
	return result.DeletedCount, nil
}
