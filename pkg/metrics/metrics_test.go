package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationLabel_StripsTenantSuffix(t *testing.T) {
	assert.Equal(t, "crm:customers", OperationLabel("crm:customers:org-1:user-1"))
	assert.Equal(t, "books:overview", OperationLabel("books:overview:org-2:user-9"))
}

func TestOperationLabel_PassesUnscopedKeysThrough(t *testing.T) {
	assert.Equal(t, "crm:customers", OperationLabel("crm:customers"))
	assert.Equal(t, "leads:all", OperationLabel("leads:all"))
	assert.Equal(t, "key", OperationLabel("key"))
}
