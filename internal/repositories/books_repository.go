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

type transactionRepository struct {
	collection *mongo.Collection
}

func NewTransactionRepository() TransactionRepository {
	return &transactionRepository{
		collection: database.DB.Collection(database.CollTransactions),
	}
}

func (r *transactionRepository) FindAll(ctx context.Context, tenant models.Tenant) ([]models.Transaction, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: -1}})
	start := time.Now()
	cursor, err := r.collection.Find(ctx, tenantFilter(tenant), findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.CollTransactions).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollTransactions).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	transactions := []models.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.CollTransactions).Inc()
		return nil, err
	}
	return transactions, nil
}

func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	transaction.ID = primitive.NewObjectID()
	transaction.CreatedAt = time.Now()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, transaction)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.CollTransactions).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.CollTransactions).Inc()
		return err
	}
	return nil
}

type recurringPaymentRepository struct {
	collection *mongo.Collection
}

func NewRecurringPaymentRepository() RecurringPaymentRepository {
	return &recurringPaymentRepository{
		collection: database.DB.Collection(database.CollRecurringPayments),
	}
}

func (r *recurringPaymentRepository) FindAll(ctx context.Context, tenant models.Tenant) ([]models.RecurringPayment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "next_due_at", Value: 1}})
	start := time.Now()
	cursor, err := r.collection.Find(ctx, tenantFilter(tenant), findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.CollRecurringPayments).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollRecurringPayments).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.RecurringPayment{}
	if err := cursor.All(ctx, &payments); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.CollRecurringPayments).Inc()
		return nil, err
	}
	return payments, nil
}

func (r *recurringPaymentRepository) Create(ctx context.Context, payment *models.RecurringPayment) error {
	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, payment)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.CollRecurringPayments).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.CollRecurringPayments).Inc()
		return err
	}
	return nil
}

type mileageRepository struct {
	collection *mongo.Collection
}

func NewMileageRepository() MileageRepository {
	return &mileageRepository{
		collection: database.DB.Collection(database.CollMileageEntries),
	}
}

func (r *mileageRepository) FindAll(ctx context.Context, tenant models.Tenant) ([]models.MileageEntry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	start := time.Now()
	cursor, err := r.collection.Find(ctx, tenantFilter(tenant), findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.CollMileageEntries).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.CollMileageEntries).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.MileageEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.CollMileageEntries).Inc()
		return nil, err
	}
	return entries, nil
}

func (r *mileageRepository) Create(ctx context.Context, entry *models.MileageEntry) error {
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, entry)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.CollMileageEntries).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.CollMileageEntries).Inc()
		return err
	}
	return nil
}
