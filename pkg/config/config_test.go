package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
regionCacheTTL: 300
endpointKeyConcurrency: 2
dbSqlite: /tmp/catalog.db
logRemoteService: http://collector:8080
`)
	assert.Nil(t, os.WriteFile(fn, content, 0644))

	err := InitConfig(fn)
	assert.Nil(t, err)
	assert.Equal(t, 300, ConfigGlobal.RegionCacheTTL)
	assert.True(t, ConfigGlobal.UseRegionCache())
	assert.Equal(t, 2, ConfigGlobal.EndpointKeyConcurrency)
	assert.Equal(t, "/tmp/catalog.db", ConfigGlobal.DbSqlite)
	assert.True(t, ConfigGlobal.SendLogToRemote())
	// untouched fields keep default
	assert.Equal(t, "https://management.azure.com", ConfigGlobal.ManagementEndpoint)
	assert.Equal(t, "2019-05-01", ConfigGlobal.ManagementApiVersion)
}

func TestInitConfigMissingFile(t *testing.T) {
	err := InitConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Nil(t, err)
	assert.False(t, ConfigGlobal.UseRegionCache())
	assert.Equal(t, 4, ConfigGlobal.EndpointKeyConcurrency)
}

func TestInitConfigAuthWithoutHash(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "config.yaml")
	assert.Nil(t, os.WriteFile(fn, []byte("enableAuth: true\n"), 0644))
	t.Setenv(API_KEY_HASH, "")
	assert.NotNil(t, InitConfig(fn))

	t.Setenv(API_KEY_HASH, "$2a$10$abcdefghijklmnopqrstuv")
	assert.Nil(t, InitConfig(fn))
	assert.True(t, ConfigGlobal.EnableAuth)
}
