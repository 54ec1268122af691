package controller

import (
	"fmt"

	"github.com/devsapp/serverless-aml-controller/pkg/models"
)

// pipeline parameter and tag names
const (
	fieldUserInput      = "userInput"
	fieldModelId        = "modelId"
	fieldOperationId    = "operationId"
	fieldEndpointId     = "endpointId"
	fieldUserId         = "userId"
	fieldProductName    = "productName"
	fieldDeploymentName = "deploymentName"
	fieldApiVersion     = "apiVersion"
	fieldSubscriptionId = "subscriptionId"
)

// descriptor per operation kind: experiment suffix, the tag carrying the
// minted id and the parameters forwarded to the remote pipeline
type descriptor struct {
	kind   models.OperationKind
	suffix string
	idTag  string
	params []string
}

var descriptors = map[models.OperationKind]descriptor{
	models.KindTraining: {
		kind:   models.KindTraining,
		suffix: "train",
		idTag:  fieldModelId,
		params: []string{fieldUserInput, fieldModelId, fieldUserId, fieldProductName, fieldDeploymentName,
			fieldApiVersion, fieldSubscriptionId},
	},
	models.KindInference: {
		kind:   models.KindInference,
		suffix: "infer",
		idTag:  fieldOperationId,
		params: []string{fieldUserInput, fieldModelId, fieldOperationId},
	},
	models.KindDeployment: {
		kind:   models.KindDeployment,
		suffix: "deploy",
		idTag:  fieldEndpointId,
		params: []string{fieldUserInput, fieldEndpointId, fieldModelId, fieldUserId, fieldProductName,
			fieldDeploymentName, fieldApiVersion, fieldSubscriptionId},
	},
}

func descriptorOf(kind models.OperationKind) (descriptor, error) {
	d, ok := descriptors[kind]
	if !ok {
		return descriptor{}, fmt.Errorf("operationType: %s not support", kind)
	}
	return d, nil
}

// ExperimentName p_{productId}_d_{deploymentId}_s_{subscriptionId}_{suffix}
func ExperimentName(scope *models.Scope, kind models.OperationKind) (string, error) {
	d, err := descriptorOf(kind)
	if err != nil {
		return "", err
	}
	return experimentName(scope, d), nil
}

func experimentName(scope *models.Scope, d descriptor) string {
	return fmt.Sprintf("p_%s_d_%s_s_%s_%s", scope.Product.Id, scope.Deployment.Id,
		scope.Subscription.SubscriptionId, d.suffix)
}

// endpointOf version declared submission url of the kind
func (d descriptor) endpointOf(version *models.APIVersion) string {
	switch d.kind {
	case models.KindTraining:
		return version.TrainModelAPI
	case models.KindInference:
		return version.BatchInferenceAPI
	case models.KindDeployment:
		return version.DeployModelAPI
	}
	return ""
}

// setId put id into the discriminating tag
func (d descriptor) setId(tags *models.TagSet, id string) {
	switch d.idTag {
	case fieldModelId:
		tags.ModelId = id
	case fieldOperationId:
		tags.OperationId = id
	case fieldEndpointId:
		tags.EndpointId = id
	}
}

// setViewId put the discriminating tag of a run into the operation view
func (d descriptor) setViewId(op *models.Operation, tags *models.TagSet) {
	switch d.idTag {
	case fieldModelId:
		op.ModelId = tags.ModelId
	case fieldOperationId:
		op.OperationId = tags.OperationId
	case fieldEndpointId:
		op.EndpointId = tags.EndpointId
	}
}
