package models

// Workspace defines model for the remote ML workspace a subscription is
// provisioned against. Region is never stored, it is resolved per call.
type Workspace struct {
	Name                 string `json:"workspaceName" yaml:"name"`
	ResourceId           string `json:"resourceId" yaml:"resourceId"`
	AADTenantId          string `json:"aadTenantId" yaml:"aadTenantId"`
	AADApplicationId     string `json:"aadApplicationId" yaml:"aadApplicationId"`
	AADApplicationSecret string `json:"-" yaml:"aadApplicationSecret"`
}

type Product struct {
	Id          string `json:"id" yaml:"id"`
	ProductName string `json:"productName" yaml:"productName"`
}

type Deployment struct {
	Id             string `json:"id" yaml:"id"`
	ProductName    string `json:"productName" yaml:"productName"`
	DeploymentName string `json:"deploymentName" yaml:"deploymentName"`
}

// AuthMode authentication mode declared on an api version
type AuthMode string

const (
	AuthToken AuthMode = "Token"
	AuthKey   AuthMode = "Key"
	AuthNone  AuthMode = "None"
)

type APIVersion struct {
	ProductName        string   `json:"productName" yaml:"productName"`
	DeploymentName     string   `json:"deploymentName" yaml:"deploymentName"`
	VersionName        string   `json:"versionName" yaml:"versionName"`
	RealTimePredictAPI string   `json:"realTimePredictAPI" yaml:"realTimePredictAPI"`
	BatchInferenceAPI  string   `json:"batchInferenceAPI" yaml:"batchInferenceAPI"`
	TrainModelAPI      string   `json:"trainModelAPI" yaml:"trainModelAPI"`
	DeployModelAPI     string   `json:"deployModelAPI" yaml:"deployModelAPI"`
	AuthenticationType AuthMode `json:"authenticationType" yaml:"authenticationType"`
	AuthenticationKey  string   `json:"-" yaml:"authenticationKey"`
	WorkspaceName      string   `json:"workspaceName" yaml:"workspaceName"`
}

type APISubscription struct {
	SubscriptionId string `json:"subscriptionId" yaml:"subscriptionId"`
	UserId         string `json:"userId" yaml:"userId"`
	ProductName    string `json:"productName" yaml:"productName"`
	DeploymentName string `json:"deploymentName" yaml:"deploymentName"`
}

// Scope all records a subscription scoped call needs
type Scope struct {
	Product      *Product
	Deployment   *Deployment
	Version      *APIVersion
	Workspace    *Workspace
	Subscription *APISubscription
}
