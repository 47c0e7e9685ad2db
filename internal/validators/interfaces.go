package validators

import (
	"landscout-backoffice/internal/models"
)

type ScrapeValidator interface {
	ValidateCriteria(criteria *models.SearchCriteria) error
}

type RecordValidator interface {
	ValidateCustomer(customer *models.Customer) error
	ValidateInteraction(interaction *models.Interaction) error
	ValidateLead(lead *models.Lead) error
	ValidateTransaction(transaction *models.Transaction) error
	ValidateRecurringPayment(payment *models.RecurringPayment) error
	ValidateMileageEntry(entry *models.MileageEntry) error
	ValidateInventoryItem(item *models.InventoryItem) error
}

type UserValidator interface {
	ValidateRegister(user *models.User) error
	ValidateLogin(email, password string) error
}
