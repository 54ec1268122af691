package datastore

import (
	"path/filepath"
	"testing"

	"github.com/devsapp/serverless-aml-controller/pkg/config"
	"github.com/devsapp/serverless-aml-controller/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSubscriptionId = "a6c2a7cc-d67e-4a1a-b765-983f08c0423a"

func newTestCatalog(t *testing.T) *Catalog {
	config.ConfigGlobal = config.DefaultConfig()
	config.ConfigGlobal.DbSqlite = filepath.Join(t.TempDir(), "sqlite3")
	catalog, err := NewCatalog(SQLite)
	require.NoError(t, err)
	t.Cleanup(func() { catalog.Close() })
	return catalog
}

func TestCatalogResolveScope(t *testing.T) {
	catalog := newTestCatalog(t)
	require.NoError(t, catalog.Import("testdata/catalog.yaml"))

	scope, err := catalog.ResolveScope(testSubscriptionId, "v1")
	require.NoError(t, err)
	assert.Equal(t, &models.Product{Id: "7", ProductName: "eddi"}, scope.Product)
	assert.Equal(t, &models.Deployment{Id: "3", ProductName: "eddi", DeploymentName: "westus"}, scope.Deployment)
	assert.Equal(t, &models.APISubscription{
		SubscriptionId: testSubscriptionId,
		UserId:         "user@contoso.com",
		ProductName:    "eddi",
		DeploymentName: "westus",
	}, scope.Subscription)
	assert.Equal(t, "v1", scope.Version.VersionName)
	assert.Equal(t, models.AuthKey, scope.Version.AuthenticationType)
	assert.Equal(t, "static-key", scope.Version.AuthenticationKey)
	assert.Equal(t, "https://pipeline.test/infer", scope.Version.BatchInferenceAPI)
	assert.Equal(t, "ws", scope.Workspace.Name)
	assert.Equal(t, "secret", scope.Workspace.AADApplicationSecret)
	assert.Contains(t, scope.Workspace.ResourceId, "/workspaces/ws")
}

func TestCatalogNotFound(t *testing.T) {
	catalog := newTestCatalog(t)
	require.NoError(t, catalog.Import("testdata/catalog.yaml"))

	_, err := catalog.ResolveScope("missing", "v1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = catalog.ResolveScope(testSubscriptionId, "v2")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = catalog.GetWorkspace("other")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogImportReplaces(t *testing.T) {
	catalog := newTestCatalog(t)
	require.NoError(t, catalog.Import("testdata/catalog.yaml"))
	require.NoError(t, catalog.ImportSeed(&CatalogSeed{
		Workspaces: []models.Workspace{{Name: "ws", ResourceId: "/moved", AADTenantId: "tenant"}},
	}))
	ws, err := catalog.GetWorkspace("ws")
	require.NoError(t, err)
	assert.Equal(t, "/moved", ws.ResourceId)
	assert.Empty(t, ws.AADApplicationSecret)
}

func TestCatalogImportMissingFile(t *testing.T) {
	catalog := newTestCatalog(t)
	assert.Error(t, catalog.Import("testdata/absent.yaml"))
}

func TestNewTableUnknown(t *testing.T) {
	df := DatastoreFactory{}
	_, err := df.NewTable(SQLite, "tasks")
	assert.Error(t, err)
	_, err = df.NewTable("mysql", KProductTableName)
	assert.Error(t, err)
}
