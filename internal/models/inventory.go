package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InventoryItem struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	UserID         string             `json:"user_id" bson:"user_id"`
	OrganizationID string             `json:"organization_id" bson:"organization_id"`
	Name           string             `json:"name" bson:"name"`
	SKU            string             `json:"sku" bson:"sku"`
	Quantity       int                `json:"quantity" bson:"quantity"`
	UnitPrice      float64            `json:"unit_price" bson:"unit_price"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// BulkImportResult reports a best-effort batch: per-item failures are
// collected and counted instead of failing the batch atomically.
type BulkImportResult struct {
	SuccessCount int      `json:"successCount"`
	ErrorCount   int      `json:"errorCount"`
	Errors       []string `json:"errors"`
}
