package service

import (
	"testing"
	"time"

	"go-hq-ordering/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newResolver(t *testing.T) (*gorm.DB, *AssignmentResolver) {
	t.Helper()
	db := setupTestDB(t)
	return db, NewAssignmentResolver(repository.NewStaffRepo(db))
}

func TestResolvePicksFulfillmentLeadByDefault(t *testing.T) {
	db, resolver := newResolver(t)
	lead := createTestStaff(t, db, "Asaka", true, false)
	createTestStaff(t, db, "Kane", false, true)

	staff, err := resolver.Resolve([]AssignmentItem{{Quantity: 2, HqStock: 10}})
	require.NoError(t, err)
	require.NotNil(t, staff)
	assert.Equal(t, lead.ID, staff.ID)
}

func TestResolveExtensionShortfallPicksFallback(t *testing.T) {
	db, resolver := newResolver(t)
	createTestStaff(t, db, "Asaka", true, false)
	fallback := createTestStaff(t, db, "Kane", false, true)

	staff, err := resolver.Resolve([]AssignmentItem{
		{Quantity: 2, HqStock: 10, IsExtension: false},
		{Quantity: 5, HqStock: 1, IsExtension: true},
	})
	require.NoError(t, err)
	require.NotNil(t, staff)
	assert.Equal(t, fallback.ID, staff.ID)
}

func TestResolveCoveredExtensionStaysWithLead(t *testing.T) {
	db, resolver := newResolver(t)
	lead := createTestStaff(t, db, "Asaka", true, false)
	createTestStaff(t, db, "Kane", false, true)

	// Extension lines alone do not divert: the shortfall must exist too
	staff, err := resolver.Resolve([]AssignmentItem{{Quantity: 2, HqStock: 10, IsExtension: true}})
	require.NoError(t, err)
	require.NotNil(t, staff)
	assert.Equal(t, lead.ID, staff.ID)
}

func TestResolveShortfallWithoutExtensionStaysWithLead(t *testing.T) {
	db, resolver := newResolver(t)
	lead := createTestStaff(t, db, "Asaka", true, false)
	createTestStaff(t, db, "Kane", false, true)

	staff, err := resolver.Resolve([]AssignmentItem{{Quantity: 8, HqStock: 1}})
	require.NoError(t, err)
	require.NotNil(t, staff)
	assert.Equal(t, lead.ID, staff.ID)
}

func TestResolveFallsBackToFirstActiveStaff(t *testing.T) {
	db, resolver := newResolver(t)
	newer := createTestStaff(t, db, "Sato", false, false)
	older := createTestStaff(t, db, "Tanaka", false, false)
	backdateStaff(t, db, older.ID, time.Now().Add(-24*time.Hour))

	staff, err := resolver.Resolve([]AssignmentItem{{Quantity: 1, HqStock: 5}})
	require.NoError(t, err)
	require.NotNil(t, staff)
	assert.Equal(t, older.ID, staff.ID)
	assert.NotEqual(t, newer.ID, staff.ID)
}

func TestResolveSkipsInactiveStaff(t *testing.T) {
	db, resolver := newResolver(t)
	inactive := createTestStaff(t, db, "Asaka", true, false)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)
	active := createTestStaff(t, db, "Sato", false, false)

	staff, err := resolver.Resolve([]AssignmentItem{{Quantity: 1, HqStock: 5}})
	require.NoError(t, err)
	require.NotNil(t, staff)
	assert.Equal(t, active.ID, staff.ID)
}

func TestResolveNoStaffYieldsNoAssignment(t *testing.T) {
	_, resolver := newResolver(t)

	staff, err := resolver.Resolve([]AssignmentItem{{Quantity: 1, HqStock: 5}})
	require.NoError(t, err)
	assert.Nil(t, staff)
}
