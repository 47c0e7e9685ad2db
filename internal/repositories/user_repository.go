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

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository() UserRepository {
	return &userRepository{
		collection: database.DB.Collection(database.CollUsers),
	}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	start := time.Now()
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.CollUsers).Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, mongo.ErrNoDocuments
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.CollUsers).Inc()
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, user)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.CollUsers).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.CollUsers).Inc()
		return err
	}
	return nil
}

type organizationRepository struct {
	collection *mongo.Collection
}

func NewOrganizationRepository() OrganizationRepository {
	return &organizationRepository{
		collection: database.DB.Collection(database.CollOrganizations),
	}
}

func (r *organizationRepository) FindByID(ctx context.Context, id string) (*models.Organization, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	start := time.Now()
	var org models.Organization
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&org)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.CollOrganizations).Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.CollOrganizations).Inc()
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) Create(ctx context.Context, org *models.Organization) error {
	org.ID = primitive.NewObjectID()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, org)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.CollOrganizations).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.CollOrganizations).Inc()
		return err
	}
	return nil
}
