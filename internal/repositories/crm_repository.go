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

type customerRepository struct {
	collection *mongo.Collection
}

func NewCustomerRepository() CustomerRepository {
	return &customerRepository{
		collection: database.DB.Collection(database.CollCustomers),
	}
}

func (r *customerRepository) FindAll(ctx context.Context, tenant models.Tenant) ([]models.Customer, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	start := time.Now()
	cursor, err := r.collection.Find(ctx, tenantFilter(tenant), findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.CollCustomers).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollCustomers).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	customers := []models.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.CollCustomers).Inc()
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	customer.ID = primitive.NewObjectID()
	customer.CreatedAt = time.Now()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, customer)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.CollCustomers).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.CollCustomers).Inc()
		return err
	}
	return nil
}

type interactionRepository struct {
	collection *mongo.Collection
}

func NewInteractionRepository() InteractionRepository {
	return &interactionRepository{
		collection: database.DB.Collection(database.CollInteractions),
	}
}

func (r *interactionRepository) FindAll(ctx context.Context, tenant models.Tenant) ([]models.Interaction, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: -1}})
	start := time.Now()
	cursor, err := r.collection.Find(ctx, tenantFilter(tenant), findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.CollInteractions).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollInteractions).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	interactions := []models.Interaction{}
	if err := cursor.All(ctx, &interactions); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.CollInteractions).Inc()
		return nil, err
	}
	return interactions, nil
}

func (r *interactionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	interaction.ID = primitive.NewObjectID()
	interaction.CreatedAt = time.Now()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, interaction)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.CollInteractions).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.CollInteractions).Inc()
		return err
	}
	return nil
}
