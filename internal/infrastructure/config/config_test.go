package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LICENSEDESK_LICENSE_EXPIRING_SOON_DAYS", "30")
	t.Setenv("LICENSEDESK_DATABASE_DRIVER", "sqlite")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.License.ExpiringSoonDays)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0 8 * * *", cfg.Notification.Scheduler.Spec)
	assert.Same(t, cfg, Get())
}

func TestLoad_ModeOverride(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("release")
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.Database.Driver = "mysql"
		c.License.ExpiringSoonDays = 21
		c.Notification.Scheduler.Enabled = true
		c.Notification.Scheduler.Spec = "0 8 * * *"
		return c
	}

	assert.NoError(t, valid().Validate())

	c := valid()
	c.Database.Driver = "postgres"
	assert.ErrorContains(t, c.Validate(), "unsupported database driver")

	c = valid()
	c.License.ExpiringSoonDays = -1
	assert.Error(t, c.Validate())

	c = valid()
	c.Notification.Scheduler.Spec = "every morning"
	assert.ErrorContains(t, c.Validate(), "invalid notification.scheduler.spec")
}
