package validators

import (
	"landscout-backoffice/internal/errors"
	"landscout-backoffice/internal/models"
)

type recordValidator struct{}

func NewRecordValidator() RecordValidator {
	return &recordValidator{}
}

func (v *recordValidator) ValidateCustomer(customer *models.Customer) error {
	if customer.Name == "" {
		return errors.NewValidationError("customer name is required")
	}
	return nil
}

func (v *recordValidator) ValidateInteraction(interaction *models.Interaction) error {
	if interaction.CustomerID == "" {
		return errors.NewValidationError("customer ID is required")
	}
	if interaction.Type == "" {
		return errors.NewValidationError("interaction type is required")
	}
	return nil
}

func (v *recordValidator) ValidateLead(lead *models.Lead) error {
	if lead.Name == "" {
		return errors.NewValidationError("lead name is required")
	}
	return nil
}

func (v *recordValidator) ValidateTransaction(transaction *models.Transaction) error {
	if transaction.Description == "" {
		return errors.NewValidationError("transaction description is required")
	}
	if transaction.Type != "income" && transaction.Type != "expense" {
		return errors.NewValidationError("transaction type must be income or expense")
	}
	return nil
}

func (v *recordValidator) ValidateRecurringPayment(payment *models.RecurringPayment) error {
	if payment.Description == "" {
		return errors.NewValidationError("recurring payment description is required")
	}
	if payment.Amount <= 0 {
		return errors.NewValidationError("recurring payment amount must be greater than zero")
	}
	return nil
}

func (v *recordValidator) ValidateMileageEntry(entry *models.MileageEntry) error {
	if entry.Miles <= 0 {
		return errors.NewValidationError("miles must be greater than zero")
	}
	return nil
}

func (v *recordValidator) ValidateInventoryItem(item *models.InventoryItem) error {
	if item.Name == "" {
		return errors.NewValidationError("inventory item name is required")
	}
	if item.Quantity < 0 {
		return errors.NewValidationError("inventory quantity cannot be negative")
	}
	return nil
}
