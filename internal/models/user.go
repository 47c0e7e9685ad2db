package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	FullName       string             `json:"full_name" bson:"full_name"`
	Email          string             `json:"email" bson:"email"`
	Password       string             `json:"password,omitempty" bson:"password"`
	OrganizationID string             `json:"organization_id" bson:"organization_id"`
}

// Organization carries tenant-level entitlements. Features gates paid
// functionality such as the GIS scraper.
type Organization struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	Name     string             `json:"name" bson:"name"`
	Features []string           `json:"features" bson:"features"`
}

// FeatureGISScraper is the entitlement required for destructive GIS
// operations.
const FeatureGISScraper = "gis_scraper"
