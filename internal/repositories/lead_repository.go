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

type leadRepository struct {
	collection *mongo.Collection
}

func NewLeadRepository() LeadRepository {
	return &leadRepository{
		collection: database.DB.Collection(database.CollLeads),
	}
}

func (r *leadRepository) FindAll(ctx context.Context, tenant models.Tenant) ([]models.Lead, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	start := time.Now()
	cursor, err := r.collection.Find(ctx, tenantFilter(tenant), findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.CollLeads).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollLeads).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	leads := []models.Lead{}
	if err := cursor.All(ctx, &leads); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.CollLeads).Inc()
		return nil, err
	}
	return leads, nil
}

func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	lead.ID = primitive.NewObjectID()
	lead.CreatedAt = time.Now()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, lead)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.CollLeads).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.CollLeads).Inc()
		return err
	}
	return nil
}
