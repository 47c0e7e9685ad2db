package services

import (
	"context"
	"sync"
	"time"

	"landscout-backoffice/internal/models"
	"landscout-backoffice/internal/repositories"
	"landscout-backoffice/internal/validators"
	"landscout-backoffice/pkg/cache"
	"landscout-backoffice/pkg/dedupe"
)

// TransactionDataService fronts the bookkeeping repositories with the
// caching layer. The books overview is a composite of transactions and
// recurring payments; writing either constituent invalidates it.
type TransactionDataService struct {
	transactions repositories.TransactionRepository
	recurring    repositories.RecurringPaymentRepository
	validator    validators.RecordValidator
	cache        *cache.Cache
	dedupe       *dedupe.Deduplicator
}

func NewTransactionDataService(
	transactions repositories.TransactionRepository,
	recurring repositories.RecurringPaymentRepository,
	validator validators.RecordValidator,
	c *cache.Cache,
	d *dedupe.Deduplicator,
) *TransactionDataService {
	return &TransactionDataService{
		transactions: transactions,
		recurring:    recurring,
		validator:    validator,
		cache:        c,
		dedupe:       d,
	}
}

func (s *TransactionDataService) GetTransactions(ctx context.Context, tenant models.Tenant, forceRefresh bool) ([]models.Transaction, error) {
	key := cache.ScopedKey(cache.KeyTransactions, tenant.OrganizationID, tenant.UserID)
	if !forceRefresh {
		if cached, ok := s.cache.Get(key); ok {
			return cached.([]models.Transaction), nil
		}
	}

	result, err := s.dedupe.Do(key, func() (interface{}, error) {
		return s.transactions.FindAll(ctx, tenant)
	})
	if err != nil {
		return nil, err
	}

	transactions := result.([]models.Transaction)
	s.cache.Set(key, transactions)
	return transactions, nil
}

func (s *TransactionDataService) GetRecurringPayments(ctx context.Context, tenant models.Tenant, forceRefresh bool) ([]models.RecurringPayment, error) {
	key := cache.ScopedKey(cache.KeyRecurringPayments, tenant.OrganizationID, tenant.UserID)
	if !forceRefresh {
		if cached, ok := s.cache.Get(key); ok {
			return cached.([]models.RecurringPayment), nil
		}
	}

	result, err := s.dedupe.Do(key, func() (interface{}, error) {
		return s.recurring.FindAll(ctx, tenant)
	})
	if err != nil {
		return nil, err
	}

	payments := result.([]models.RecurringPayment)
	s.cache.Set(key, payments)
	return payments, nil
}

// GetBooksOverview returns the combined transactions+recurring tuple,
// fetching both constituents in parallel on a miss.
func (s *TransactionDataService) GetBooksOverview(ctx context.Context, tenant models.Tenant, forceRefresh bool) (*models.BooksOverview, error) {
	key := cache.ScopedKey(cache.KeyBooksOverview, tenant.OrganizationID, tenant.UserID)
	if !forceRefresh {
		if cached, ok := s.cache.Get(key); ok {
			return cached.(*models.BooksOverview), nil
		}
	}

	var (
		wg           sync.WaitGroup
		transactions []models.Transaction
		payments     []models.RecurringPayment
		txErr        error
		recErr       error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		transactions, txErr = s.GetTransactions(ctx, tenant, forceRefresh)
	}()
	go func() {
		defer wg.Done()
		payments, recErr = s.GetRecurringPayments(ctx, tenant, forceRefresh)
	}()
	wg.Wait()

	if txErr != nil {
		return nil, txErr
	}
	if recErr != nil {
		return nil, recErr
	}

	overview := &models.BooksOverview{
		Transactions:      transactions,
		RecurringPayments: payments,
	}
	s.cache.Set(key, overview)
	return overview, nil
}

func (s *TransactionDataService) InvalidateTransactions(tenant models.Tenant) {
	s.cache.InvalidateScoped(cache.KeyTransactions, tenant.OrganizationID, tenant.UserID)
}

func (s *TransactionDataService) InvalidateRecurring(tenant models.Tenant) {
	s.cache.InvalidateScoped(cache.KeyRecurringPayments, tenant.OrganizationID, tenant.UserID)
}

func (s *TransactionDataService) InvalidateAll(tenant models.Tenant) {
	s.InvalidateTransactions(tenant)
	s.InvalidateRecurring(tenant)
}

func (s *TransactionDataService) CreateTransaction(ctx context.Context, tenant models.Tenant, transaction *models.Transaction) error {
	if err := s.validator.ValidateTransaction(transaction); err != nil {
		return err
	}

	transaction.UserID = tenant.UserID
	transaction.OrganizationID = tenant.OrganizationID
	transaction.CreatedAt = time.Now()
	if err := s.transactions.Create(ctx, transaction); err != nil {
		return err
	}

	s.InvalidateTransactions(tenant)
	return nil
}

func (s *TransactionDataService) CreateRecurringPayment(ctx context.Context, tenant models.Tenant, payment *models.RecurringPayment) error {
	if err := s.validator.ValidateRecurringPayment(payment); err != nil {
		return err
	}

	payment.UserID = tenant.UserID
	payment.OrganizationID = tenant.OrganizationID
	payment.CreatedAt = time.Now()
	if err := s.recurring.Create(ctx, payment); err != nil {
		return err
	}

	s.InvalidateRecurring(tenant)
	return nil
}
