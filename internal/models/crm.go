package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Customer struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	UserID         string             `json:"user_id" bson:"user_id"`
	OrganizationID string             `json:"organization_id" bson:"organization_id"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email" bson:"email"`
	Phone          string             `json:"phone" bson:"phone"`
	Address        string             `json:"address" bson:"address"`
	Notes          string             `json:"notes" bson:"notes"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// Interaction is one touch point with a customer (call, email, meeting).
type Interaction struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	UserID         string             `json:"user_id" bson:"user_id"`
	OrganizationID string             `json:"organization_id" bson:"organization_id"`
	CustomerID     string             `json:"customer_id" bson:"customer_id"`
	Type           string             `json:"type" bson:"type"`
	Summary        string             `json:"summary" bson:"summary"`
	OccurredAt     time.Time          `json:"occurred_at" bson:"occurred_at"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// CRMOverview is the combined customers+interactions tuple cached by the
// composite accessor.
type CRMOverview struct {
	Customers    []Customer    `json:"customers"`
	Interactions []Interaction `json:"interactions"`
}

type Lead struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	UserID         string             `json:"user_id" bson:"user_id"`
	OrganizationID string             `json:"organization_id" bson:"organization_id"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email" bson:"email"`
	Phone          string             `json:"phone" bson:"phone"`
	Address        string             `json:"address" bson:"address"`
	Source         string             `json:"source" bson:"source"`
	Status         string             `json:"status" bson:"status"`
	Notes          string             `json:"notes" bson:"notes"`
	AINotes        string             `json:"ai_notes,omitempty" bson:"ai_notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// Lead sources recognized by the pipeline.
const (
	LeadSourceManual     = "manual"
	LeadSourceGISScraper = "gis_scraper"
	LeadSourceImport     = "import"
)
