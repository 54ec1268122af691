package datastore

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/devsapp/serverless-aml-controller/pkg/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var ErrNotFound = errors.New("not found")

// Catalog read only view of the business records a subscription call needs
type Catalog struct {
	workspaces    Datastore
	products      Datastore
	deployments   Datastore
	versions      Datastore
	subscriptions Datastore
}

func NewCatalog(dbType DatastoreType) (*Catalog, error) {
	df := DatastoreFactory{}
	tables := make(map[string]Datastore, len(tableColumns))
	for _, name := range []string{KWorkspaceTableName, KProductTableName, KDeploymentTableName,
		KVersionTableName, KSubscriptionTableName} {
		ds, err := df.NewTable(dbType, name)
		if err != nil {
			for _, opened := range tables {
				opened.Close()
			}
			return nil, fmt.Errorf("init table %s fail: %w", name, err)
		}
		tables[name] = ds
	}
	return &Catalog{
		workspaces:    tables[KWorkspaceTableName],
		products:      tables[KProductTableName],
		deployments:   tables[KDeploymentTableName],
		versions:      tables[KVersionTableName],
		subscriptions: tables[KSubscriptionTableName],
	}, nil
}

func (c *Catalog) Close() error {
	var errs []error
	for _, ds := range []Datastore{c.workspaces, c.products, c.deployments, c.versions, c.subscriptions} {
		if err := ds.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func compositeKey(parts ...string) string {
	return strings.Join(parts, "/")
}

// get row of key, missing row is ErrNotFound
func get(ds Datastore, tableName, key string) (map[string]interface{}, error) {
	data, err := ds.Get(key, valueColumns(tableName))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, tableName, key)
	}
	return data, nil
}

func text(data map[string]interface{}, column string) string {
	switch v := data[column].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (c *Catalog) GetWorkspace(name string) (*models.Workspace, error) {
	data, err := get(c.workspaces, KWorkspaceTableName, name)
	if err != nil {
		return nil, err
	}
	return &models.Workspace{
		Name:                 name,
		ResourceId:           text(data, KWorkspaceResourceId),
		AADTenantId:          text(data, KWorkspaceAADTenantId),
		AADApplicationId:     text(data, KWorkspaceAADApplicationId),
		AADApplicationSecret: text(data, KWorkspaceAADApplicationKey),
	}, nil
}

func (c *Catalog) GetProduct(productName string) (*models.Product, error) {
	data, err := get(c.products, KProductTableName, productName)
	if err != nil {
		return nil, err
	}
	return &models.Product{
		Id:          text(data, KProductId),
		ProductName: productName,
	}, nil
}

func (c *Catalog) GetDeployment(productName, deploymentName string) (*models.Deployment, error) {
	data, err := get(c.deployments, KDeploymentTableName, compositeKey(productName, deploymentName))
	if err != nil {
		return nil, err
	}
	return &models.Deployment{
		Id:             text(data, KDeploymentId),
		ProductName:    text(data, KDeploymentProductName),
		DeploymentName: text(data, KDeploymentName),
	}, nil
}

func (c *Catalog) GetAPIVersion(productName, deploymentName, versionName string) (*models.APIVersion, error) {
	data, err := get(c.versions, KVersionTableName, compositeKey(productName, deploymentName, versionName))
	if err != nil {
		return nil, err
	}
	return &models.APIVersion{
		ProductName:        text(data, KVersionProductName),
		DeploymentName:     text(data, KVersionDeploymentName),
		VersionName:        text(data, KVersionName),
		RealTimePredictAPI: text(data, KVersionRealTimePredictAPI),
		BatchInferenceAPI:  text(data, KVersionBatchInferenceAPI),
		TrainModelAPI:      text(data, KVersionTrainModelAPI),
		DeployModelAPI:     text(data, KVersionDeployModelAPI),
		AuthenticationType: models.AuthMode(text(data, KVersionAuthType)),
		AuthenticationKey:  text(data, KVersionAuthKey),
		WorkspaceName:      text(data, KVersionWorkspace),
	}, nil
}

func (c *Catalog) GetSubscription(subscriptionId string) (*models.APISubscription, error) {
	data, err := get(c.subscriptions, KSubscriptionTableName, subscriptionId)
	if err != nil {
		return nil, err
	}
	return &models.APISubscription{
		SubscriptionId: subscriptionId,
		UserId:         text(data, KSubscriptionUserId),
		ProductName:    text(data, KSubscriptionProductName),
		DeploymentName: text(data, KSubscriptionDeploymentName),
	}, nil
}

// ResolveScope subscription -> product, deployment, version -> workspace
func (c *Catalog) ResolveScope(subscriptionId, versionName string) (*models.Scope, error) {
	sub, err := c.GetSubscription(subscriptionId)
	if err != nil {
		return nil, err
	}
	product, err := c.GetProduct(sub.ProductName)
	if err != nil {
		return nil, err
	}
	deployment, err := c.GetDeployment(sub.ProductName, sub.DeploymentName)
	if err != nil {
		return nil, err
	}
	version, err := c.GetAPIVersion(sub.ProductName, sub.DeploymentName, versionName)
	if err != nil {
		return nil, err
	}
	workspace, err := c.GetWorkspace(version.WorkspaceName)
	if err != nil {
		return nil, err
	}
	return &models.Scope{
		Product:      product,
		Deployment:   deployment,
		Version:      version,
		Workspace:    workspace,
		Subscription: sub,
	}, nil
}

// CatalogSeed bootstrap records, yaml
type CatalogSeed struct {
	Workspaces    []models.Workspace       `yaml:"workspaces"`
	Products      []models.Product         `yaml:"products"`
	Deployments   []models.Deployment      `yaml:"deployments"`
	APIVersions   []models.APIVersion      `yaml:"apiVersions"`
	Subscriptions []models.APISubscription `yaml:"subscriptions"`
}

// Import write the records of a seed file, existing keys are replaced
func (c *Catalog) Import(fn string) error {
	data, err := os.ReadFile(fn)
	if err != nil {
		return err
	}
	seed := new(CatalogSeed)
	if err := yaml.Unmarshal(data, seed); err != nil {
		return fmt.Errorf("parse catalog seed %s fail: %w", fn, err)
	}
	return c.ImportSeed(seed)
}

func (c *Catalog) ImportSeed(seed *CatalogSeed) error {
	for _, ws := range seed.Workspaces {
		if err := c.workspaces.Put(ws.Name, map[string]interface{}{
			KWorkspaceResourceId:        ws.ResourceId,
			KWorkspaceAADTenantId:       ws.AADTenantId,
			KWorkspaceAADApplicationId:  ws.AADApplicationId,
			KWorkspaceAADApplicationKey: ws.AADApplicationSecret,
		}); err != nil {
			return err
		}
	}
	for _, p := range seed.Products {
		if err := c.products.Put(p.ProductName, map[string]interface{}{
			KProductId: p.Id,
		}); err != nil {
			return err
		}
	}
	for _, d := range seed.Deployments {
		if err := c.deployments.Put(compositeKey(d.ProductName, d.DeploymentName), map[string]interface{}{
			KDeploymentId:          d.Id,
			KDeploymentProductName: d.ProductName,
			KDeploymentName:        d.DeploymentName,
		}); err != nil {
			return err
		}
	}
	for _, v := range seed.APIVersions {
		if err := c.versions.Put(compositeKey(v.ProductName, v.DeploymentName, v.VersionName), map[string]interface{}{
			KVersionProductName:        v.ProductName,
			KVersionDeploymentName:     v.DeploymentName,
			KVersionName:               v.VersionName,
			KVersionRealTimePredictAPI: v.RealTimePredictAPI,
			KVersionBatchInferenceAPI:  v.BatchInferenceAPI,
			KVersionTrainModelAPI:      v.TrainModelAPI,
			KVersionDeployModelAPI:     v.DeployModelAPI,
			KVersionAuthType:           string(v.AuthenticationType),
			KVersionAuthKey:            v.AuthenticationKey,
			KVersionWorkspace:          v.WorkspaceName,
		}); err != nil {
			return err
		}
	}
	for _, s := range seed.Subscriptions {
		if err := c.subscriptions.Put(s.SubscriptionId, map[string]interface{}{
			KSubscriptionUserId:         s.UserId,
			KSubscriptionProductName:    s.ProductName,
			KSubscriptionDeploymentName: s.DeploymentName,
		}); err != nil {
			return err
		}
	}
	logrus.Infof("catalog import %d workspaces, %d products, %d deployments, %d versions, %d subscriptions",
		len(seed.Workspaces), len(seed.Products), len(seed.Deployments), len(seed.APIVersions),
		len(seed.Subscriptions))
	return nil
}
