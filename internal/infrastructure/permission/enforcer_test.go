package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/corpit/licensedesk/internal/infrastructure/migration"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

func setupEnforcer(t *testing.T) (*gorm.DB, *Enforcer) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	s, err := migration.NewGooseStrategy("sqlite", logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, s.Migrate(gdb))

	e, err := NewEnforcer(gdb, logger.NewNopLogger())
	require.NoError(t, err)
	return gdb, e
}

func TestEnforcer_DefaultPolicies(t *testing.T) {
	_, e := setupEnforcer(t)

	tests := []struct {
		role, resource, action string
		want                   bool
	}{
		{"admin", ResourceLicense, ActionDelete, true},
		{"admin", ResourceNotification, ActionSend, true},
		{"admin", ResourceRequest, ActionProcess, true},
		{"user", ResourceLicense, ActionRead, true},
		{"user", ResourceDashboard, ActionRead, true},
		{"user", ResourceRequest, ActionCreate, true},
		{"user", ResourceSettings, ActionUpdate, true},
		{"user", ResourceLicense, ActionWrite, false},
		{"user", ResourceCustomer, ActionDelete, false},
		{"user", ResourceNotification, ActionRead, false},
		{"user", ResourceRequest, ActionProcess, false},
		{"guest", ResourceLicense, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.resource+"/"+tt.action, func(t *testing.T) {
			got, err := e.Enforce(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnforcer_PoliciesPersistAndSeedOnce(t *testing.T) {
	gdb, e := setupEnforcer(t)

	require.NoError(t, e.AddPolicy("user", ResourceNotification, ActionRead))
	allowed, err := e.Enforce("user", ResourceNotification, ActionRead)
	require.NoError(t, err)
	assert.True(t, allowed)

	again, err := NewEnforcer(gdb, logger.NewNopLogger())
	require.NoError(t, err)
	allowed, err = again.Enforce("user", ResourceNotification, ActionRead)
	require.NoError(t, err)
	assert.True(t, allowed)

	policies, err := again.Policies()
	require.NoError(t, err)
	assert.Len(t, policies, len(DefaultPolicies)+1)

	require.NoError(t, again.RemovePolicy("user", ResourceNotification, ActionRead))
	allowed, err = again.Enforce("user", ResourceNotification, ActionRead)
	require.NoError(t, err)
	assert.False(t, allowed)
}
