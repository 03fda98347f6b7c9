package database

import (
	"testing"

	"bauportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The sqlite path must work out of the box: local dev and the seeder
// rely on the registered pure-Go driver.
func TestConnect_SQLiteInMemory(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	tn := &domain.Tenant{Slug: "bau-mueller", Name: "Bau Müller GmbH", Type: domain.TenantCompany, Active: true}
	require.NoError(t, db.Create(tn).Error)
	assert.NotZero(t, tn.ID)
}
