package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Transaction struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	UserID         string             `json:"user_id" bson:"user_id"`
	OrganizationID string             `json:"organization_id" bson:"organization_id"`
	Description    string             `json:"description" bson:"description"`
	Amount         float64            `json:"amount" bson:"amount"`
	Category       string             `json:"category" bson:"category"`
	Type           string             `json:"type" bson:"type"` // income or expense
	OccurredAt     time.Time          `json:"occurred_at" bson:"occurred_at"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// RecurringPayment is a schedule that generates bookkeeping entries.
type RecurringPayment struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	UserID         string             `json:"user_id" bson:"user_id"`
	OrganizationID string             `json:"organization_id" bson:"organization_id"`
	Description    string             `json:"description" bson:"description"`
	Amount         float64            `json:"amount" bson:"amount"`
	Interval       string             `json:"interval" bson:"interval"` // monthly, weekly, yearly
	NextDueAt      time.Time          `json:"next_due_at" bson:"next_due_at"`
	Active         bool               `json:"active" bson:"active"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// BooksOverview is the combined transactions+recurring tuple cached by the
// composite accessor.
type BooksOverview struct {
	Transactions      []Transaction      `json:"transactions"`
	RecurringPayments []RecurringPayment `json:"recurring_payments"`
}

type MileageEntry struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	UserID         string             `json:"user_id" bson:"user_id"`
	OrganizationID string             `json:"organization_id" bson:"organization_id"`
	Date           time.Time          `json:"date" bson:"date"`
	Miles          float64            `json:"miles" bson:"miles"`
	Purpose        string             `json:"purpose" bson:"purpose"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}
