package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/devsapp/serverless-aml-controller/pkg/client"
	"github.com/devsapp/serverless-aml-controller/pkg/models"
	"github.com/sirupsen/logrus"
)

// Submission a composed pipeline submission and the id minted for it
type Submission struct {
	Id       string
	Endpoint string
	Request  *models.SubmitRequest
}

// BuildSubmission compose experiment name, parameters and tags of a kind.
// modelId is the existing model to infer with or deploy, empty for training
// and for inference with the default model.
func BuildSubmission(kind models.OperationKind, scope *models.Scope, modelId, userInput string) (*Submission, error) {
	d, err := descriptorOf(kind)
	if err != nil {
		return nil, err
	}
	endpoint := d.endpointOf(scope.Version)
	if endpoint == "" {
		return nil, fmt.Errorf("%w: %s of version %s", ErrMissingEndpoint, kind, scope.Version.VersionName)
	}

	id := NewCorrelationId()
	values := map[string]string{
		fieldUserInput:      userInput,
		fieldModelId:        modelId,
		fieldUserId:         scope.Subscription.UserId,
		fieldProductName:    scope.Product.ProductName,
		fieldDeploymentName: scope.Deployment.DeploymentName,
		fieldApiVersion:     scope.Version.VersionName,
		fieldSubscriptionId: scope.Subscription.SubscriptionId,
	}
	values[d.idTag] = id

	params := make(map[string]string, len(d.params))
	for _, field := range d.params {
		if field == fieldModelId && values[field] == "" {
			continue
		}
		params[field] = values[field]
	}
	tags := models.TagSet{
		UserId:         scope.Subscription.UserId,
		ProductName:    scope.Product.ProductName,
		DeploymentName: scope.Deployment.DeploymentName,
		ApiVersion:     scope.Version.VersionName,
		SubscriptionId: scope.Subscription.SubscriptionId,
		OperationType:  string(kind),
	}
	d.setId(&tags, id)

	return &Submission{
		Id:       id,
		Endpoint: endpoint,
		Request: &models.SubmitRequest{
			ExperimentName:       experimentName(scope, d),
			ParameterAssignments: params,
			Tags:                 tags,
		},
	}, nil
}

// authorize set the Authorization header per the version auth mode
func (c *Controller) authorize(ctx context.Context, req *client.Request, scope *models.Scope) error {
	switch scope.Version.AuthenticationType {
	case models.AuthToken:
		token, err := workspaceToken(ctx, c.tokens, scope.Workspace)
		if err != nil {
			return err
		}
		req.SetBearer(token)
	case models.AuthKey:
		req.SetBearer(scope.Version.AuthenticationKey)
	case models.AuthNone:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAuthMode, scope.Version.AuthenticationType)
	}
	return nil
}

func (c *Controller) submit(ctx context.Context, kind models.OperationKind, scope *models.Scope,
	modelId, userInput string) (string, error) {
	sub, err := BuildSubmission(kind, scope, modelId, userInput)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(sub.Request)
	if err != nil {
		return "", err
	}
	req := client.NewRequest(http.MethodPost, sub.Endpoint, body)
	if err := c.authorize(ctx, req, scope); err != nil {
		return "", err
	}
	if _, err := send(ctx, c.transport, req); err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"operationType":  kind,
		"experimentName": sub.Request.ExperimentName,
		"id":             sub.Id,
	}).Info("submit operation success")
	if c.opts.Tracker != nil {
		c.opts.Tracker.Track(kind, sub.Request.ExperimentName, sub.Id)
	}
	return sub.Id, nil
}

// TrainModel submit a training run, the minted id is the model id
func (c *Controller) TrainModel(ctx context.Context, scope *models.Scope,
	userInput string) (*models.TrainModelResponse, error) {
	id, err := c.submit(ctx, models.KindTraining, scope, "", userInput)
	if err != nil {
		return nil, err
	}
	return &models.TrainModelResponse{ModelId: id}, nil
}

func (c *Controller) BatchInference(ctx context.Context, scope *models.Scope, modelId,
	userInput string) (*models.BatchInferenceResponse, error) {
	if modelId == "" {
		return nil, ErrMissingModelId
	}
	id, err := c.submit(ctx, models.KindInference, scope, modelId, userInput)
	if err != nil {
		return nil, err
	}
	return &models.BatchInferenceResponse{OperationId: id}, nil
}

// BatchInferenceWithDefaultModel the pipeline picks its own model, no
// modelId parameter is forwarded
func (c *Controller) BatchInferenceWithDefaultModel(ctx context.Context, scope *models.Scope,
	userInput string) (*models.BatchInferenceResponse, error) {
	id, err := c.submit(ctx, models.KindInference, scope, "", userInput)
	if err != nil {
		return nil, err
	}
	return &models.BatchInferenceResponse{OperationId: id}, nil
}

func (c *Controller) DeployRealTimeEndpoint(ctx context.Context, scope *models.Scope, modelId,
	userInput string) (*models.DeployEndpointResponse, error) {
	if modelId == "" {
		return nil, ErrMissingModelId
	}
	id, err := c.submit(ctx, models.KindDeployment, scope, modelId, userInput)
	if err != nil {
		return nil, err
	}
	return &models.DeployEndpointResponse{EndpointId: id}, nil
}

// Predict forward body to the real time scoring url of the version and
// return the raw response
func (c *Controller) Predict(ctx context.Context, scope *models.Scope, body []byte) ([]byte, error) {
	if scope.Version.RealTimePredictAPI == "" {
		return nil, fmt.Errorf("%w: predict of version %s", ErrMissingEndpoint, scope.Version.VersionName)
	}
	req := client.NewRequest(http.MethodPost, scope.Version.RealTimePredictAPI, body)
	if err := c.authorize(ctx, req, scope); err != nil {
		return nil, err
	}
	resp, err := send(ctx, c.transport, req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
