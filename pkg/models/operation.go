package models

import "fmt"

// OperationKind kind of remote work item
type OperationKind string

const (
	KindTraining   OperationKind = "training"
	KindInference  OperationKind = "inference"
	KindDeployment OperationKind = "deployment"
)

func ParseOperationKind(s string) (OperationKind, error) {
	switch OperationKind(s) {
	case KindTraining, KindInference, KindDeployment:
		return OperationKind(s), nil
	}
	return "", fmt.Errorf("operationType: %s not support", s)
}

// TagSet metadata attached to a submission, exactly one of OperationId,
// ModelId and EndpointId is set.
type TagSet struct {
	UserId         string `json:"userId"`
	ProductName    string `json:"productName"`
	DeploymentName string `json:"deploymentName"`
	ApiVersion     string `json:"apiVersion"`
	SubscriptionId string `json:"subscriptionId"`
	OperationType  string `json:"operationType"`
	OperationId    string `json:"operationId,omitempty"`
	ModelId        string `json:"modelId,omitempty"`
	EndpointId     string `json:"endpointId,omitempty"`
}

// SubmitRequest body posted to a version declared pipeline endpoint
type SubmitRequest struct {
	ExperimentName       string            `json:"experimentName"`
	ParameterAssignments map[string]string `json:"parameterAssignments"`
	Tags                 TagSet            `json:"tags"`
}

// RunQueryRequest body of runs:query
type RunQueryRequest struct {
	Filter string `json:"filter"`
}

type TrainModelResponse struct {
	ModelId string `json:"modelId"`
}

type BatchInferenceResponse struct {
	OperationId string `json:"operationId"`
}

type DeployEndpointResponse struct {
	EndpointId string `json:"endpointId"`
}
