package cache

import "fmt"

// Cache keys for the domain data services. Composite keys hold values built
// from more than one entity fetch; invalidating an entity must also drop
// every composite that embeds it, so the relationships are recorded here
// rather than at scattered call sites.
const (
	KeyCustomers             = "crm:customers"
	KeyInteractions          = "crm:interactions"
	KeyCustomersInteractions = "crm:customers-interactions"
	KeyLeads                 = "leads:all"
	KeyTransactions          = "books:transactions"
	KeyRecurringPayments     = "books:recurring"
	KeyBooksOverview         = "books:overview"
)

// Composites maps each composite cache key to the entity keys its cached
// value is assembled from.
var Composites = map[string][]string{
	KeyCustomersInteractions: {KeyCustomers, KeyInteractions},
	KeyBooksOverview:         {KeyTransactions, KeyRecurringPayments},
}

// Dependents maps an entity key to every composite key whose cached value
// embeds that entity. A test asserts this table covers Composites exactly,
// so a new composite accessor cannot silently escape invalidation.
var Dependents = map[string][]string{
	KeyCustomers:         {KeyCustomersInteractions},
	KeyInteractions:      {KeyCustomersInteractions},
	KeyTransactions:      {KeyBooksOverview},
	KeyRecurringPayments: {KeyBooksOverview},
	KeyLeads:             {},
}

// ScopedKey binds a base key to one tenant. Every data-service entry is
// tenant-scoped; the base constants exist so the dependency tables stay
// tenant-agnostic.
func ScopedKey(base, organizationID, userID string) string {
	return fmt.Sprintf("%s:%s:%s", base, organizationID, userID)
}

// InvalidateWithDependents drops the entity key and every composite key
// registered as depending on it.
func (c *Cache) InvalidateWithDependents(key string) {
	c.Invalidate(key)
	for _, dep := range Dependents[key] {
		c.Invalidate(dep)
	}
}

// InvalidateScoped drops a tenant's entry for the base key plus the tenant's
// entries for every dependent composite key.
func (c *Cache) InvalidateScoped(base, organizationID, userID string) {
	c.Invalidate(ScopedKey(base, organizationID, userID))
	for _, dep := range Dependents[base] {
		c.Invalidate(ScopedKey(dep, organizationID, userID))
	}
}
