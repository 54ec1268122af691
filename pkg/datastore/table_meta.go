package datastore

// workspace table
const (
	KWorkspaceTableName         = "workspaces"
	KWorkspaceName              = "WORKSPACE_NAME"
	KWorkspaceResourceId        = "RESOURCE_ID"
	KWorkspaceAADTenantId       = "AAD_TENANT_ID"
	KWorkspaceAADApplicationId  = "AAD_APPLICATION_ID"
	KWorkspaceAADApplicationKey = "AAD_APPLICATION_SECRET"
)

// product table
const (
	KProductTableName = "products"
	KProductName      = "PRODUCT_NAME"
	KProductId        = "PRODUCT_ID"
)

// deployment table, key: productName/deploymentName
const (
	KDeploymentTableName   = "deployments"
	KDeploymentKey         = "DEPLOYMENT_KEY"
	KDeploymentId          = "DEPLOYMENT_ID"
	KDeploymentProductName = "DEPLOYMENT_PRODUCT"
	KDeploymentName        = "DEPLOYMENT_NAME"
)

// api version table, key: productName/deploymentName/versionName
const (
	KVersionTableName          = "api_versions"
	KVersionKey                = "VERSION_KEY"
	KVersionProductName        = "VERSION_PRODUCT"
	KVersionDeploymentName     = "VERSION_DEPLOYMENT"
	KVersionName               = "VERSION_NAME"
	KVersionRealTimePredictAPI = "REALTIME_PREDICT_API"
	KVersionBatchInferenceAPI  = "BATCH_INFERENCE_API"
	KVersionTrainModelAPI      = "TRAIN_MODEL_API"
	KVersionDeployModelAPI     = "DEPLOY_MODEL_API"
	KVersionAuthType           = "AUTH_TYPE"
	KVersionAuthKey            = "AUTH_KEY"
	KVersionWorkspace          = "VERSION_WORKSPACE"
)

// api subscription table
const (
	KSubscriptionTableName      = "api_subscriptions"
	KSubscriptionId             = "SUBSCRIPTION_ID"
	KSubscriptionUserId         = "SUBSCRIPTION_USER"
	KSubscriptionProductName    = "SUBSCRIPTION_PRODUCT"
	KSubscriptionDeploymentName = "SUBSCRIPTION_DEPLOYMENT"
)

// tableColumns column names and sqlite type per catalog table, the first
// entry is the primary key
var tableColumns = map[string][][2]string{
	KWorkspaceTableName: {
		{KWorkspaceName, "TEXT PRIMARY KEY NOT NULL"},
		{KWorkspaceResourceId, "TEXT"},
		{KWorkspaceAADTenantId, "TEXT"},
		{KWorkspaceAADApplicationId, "TEXT"},
		{KWorkspaceAADApplicationKey, "TEXT"},
	},
	KProductTableName: {
		{KProductName, "TEXT PRIMARY KEY NOT NULL"},
		{KProductId, "TEXT"},
	},
	KDeploymentTableName: {
		{KDeploymentKey, "TEXT PRIMARY KEY NOT NULL"},
		{KDeploymentId, "TEXT"},
		{KDeploymentProductName, "TEXT"},
		{KDeploymentName, "TEXT"},
	},
	KVersionTableName: {
		{KVersionKey, "TEXT PRIMARY KEY NOT NULL"},
		{KVersionProductName, "TEXT"},
		{KVersionDeploymentName, "TEXT"},
		{KVersionName, "TEXT"},
		{KVersionRealTimePredictAPI, "TEXT"},
		{KVersionBatchInferenceAPI, "TEXT"},
		{KVersionTrainModelAPI, "TEXT"},
		{KVersionDeployModelAPI, "TEXT"},
		{KVersionAuthType, "TEXT"},
		{KVersionAuthKey, "TEXT"},
		{KVersionWorkspace, "TEXT"},
	},
	KSubscriptionTableName: {
		{KSubscriptionId, "TEXT PRIMARY KEY NOT NULL"},
		{KSubscriptionUserId, "TEXT"},
		{KSubscriptionProductName, "TEXT"},
		{KSubscriptionDeploymentName, "TEXT"},
	},
}

// valueColumns every column of the table except the primary key
func valueColumns(tableName string) []string {
	cols := tableColumns[tableName]
	if len(cols) == 0 {
		return nil
	}
	names := make([]string, 0, len(cols)-1)
	for _, col := range cols[1:] {
		names = append(names, col[0])
	}
	return names
}
