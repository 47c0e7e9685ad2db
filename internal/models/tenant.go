package models

// Tenant identifies the owner of every record: all reads and writes are
// scoped by the organization/user pair, with no cross-tenant visibility.
type Tenant struct {
	UserID         string `json:"user_id" bson:"user_id"`
	OrganizationID string `json:"organization_id" bson:"organization_id"`
}
