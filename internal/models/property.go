package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchCriteria is the acreage window a GIS scrape was run with.
type SearchCriteria struct {
	MinAcreage float64 `json:"min_acreage" bson:"min_acreage"`
	MaxAcreage float64 `json:"max_acreage" bson:"max_acreage"`
}

// ScrapedProperty is a temporary record of a parcel found by the county GIS
// source. One scrape invocation produces a batch sharing a search_session_id.
// Unsaved rows are purged by cleanup after the retention window.
type ScrapedProperty struct {
	ID              primitive.ObjectID `json:"id" bson:"_id"`
	UserID          string             `json:"user_id" bson:"user_id"`
	OrganizationID  string             `json:"organization_id" bson:"organization_id"`
	SearchSessionID string             `json:"search_session_id" bson:"search_session_id"`
	OwnerName       string             `json:"owner_name" bson:"owner_name"`
	Address         string             `json:"address" bson:"address"`
	City            string             `json:"city" bson:"city"`
	ZipCode         string             `json:"zip_code" bson:"zip_code"`
	Acreage         float64            `json:"acreage" bson:"acreage"`
	AssessedValue   float64            `json:"assessed_value" bson:"assessed_value"`
	PropertyType    string             `json:"property_type" bson:"property_type"`
	ParcelID        string             `json:"parcel_id" bson:"parcel_id"`
	SearchCriteria  SearchCriteria     `json:"search_criteria" bson:"search_criteria"`
	ScrapedAt       time.Time          `json:"scraped_at" bson:"scraped_at"`
	IsSaved         bool               `json:"is_saved" bson:"is_saved"`
	SavedAt         *time.Time         `json:"saved_at,omitempty" bson:"saved_at,omitempty"`
}

// SavedProperty is the durable record a user keeps out of a scrape.
// ScrapedPropertyID is a weak back-reference: the scraped source may be
// purged independently, so it must be resolved by lookup, never assumed to
// exist.
type SavedProperty struct {
	ID                primitive.ObjectID `json:"id" bson:"_id"`
	UserID            string             `json:"user_id" bson:"user_id"`
	OrganizationID    string             `json:"organization_id" bson:"organization_id"`
	ScrapedPropertyID string             `json:"scraped_property_id,omitempty" bson:"scraped_property_id,omitempty"`
	OwnerName         string             `json:"owner_name" bson:"owner_name"`
	Address           string             `json:"address" bson:"address"`
	City              string             `json:"city" bson:"city"`
	ZipCode           string             `json:"zip_code" bson:"zip_code"`
	Acreage           float64            `json:"acreage" bson:"acreage"`
	AssessedValue     float64            `json:"assessed_value" bson:"assessed_value"`
	PropertyType      string             `json:"property_type" bson:"property_type"`
	ParcelID          string             `json:"parcel_id" bson:"parcel_id"`
	OriginalScrapedAt time.Time          `json:"original_scraped_at" bson:"original_scraped_at"`
	ExportedToLeads   bool               `json:"exported_to_leads" bson:"exported_to_leads"`
	ExportedAt        *time.Time         `json:"exported_at,omitempty" bson:"exported_at,omitempty"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
}
