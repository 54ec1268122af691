package handler

import (
	"fmt"
	"net/http"

	"github.com/devsapp/serverless-aml-controller/pkg/config"
	"github.com/devsapp/serverless-aml-controller/pkg/controller"
	"github.com/devsapp/serverless-aml-controller/pkg/models"
	"github.com/devsapp/serverless-aml-controller/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Catalog read side of the subscription catalog
type Catalog interface {
	GetWorkspace(name string) (*models.Workspace, error)
	ResolveScope(subscriptionId, versionName string) (*models.Scope, error)
}

type ControllerHandler struct {
	catalog    Catalog
	controller *controller.Controller
}

func NewControllerHandler(catalog Catalog, ctrl *controller.Controller) *ControllerHandler {
	return &ControllerHandler{
		catalog:    catalog,
		controller: ctrl,
	}
}

// scope resolve the records of a subscription at an api version, on failure
// the response is written and nil returned
func (h *ControllerHandler) scope(c *gin.Context, subscriptionId string, apiVersion ApiVersion) *models.Scope {
	if !utils.CheckNameValidity(apiVersion, true) {
		handleError(c, http.StatusBadRequest, fmt.Sprintf("api-version: %s invalid", apiVersion))
		return nil
	}
	scope, err := h.catalog.ResolveScope(subscriptionId, apiVersion)
	if err != nil {
		handleFailure(c, err)
		return nil
	}
	return scope
}

func (h *ControllerHandler) workspace(c *gin.Context, workspaceName string) *models.Workspace {
	ws, err := h.catalog.GetWorkspace(workspaceName)
	if err != nil {
		handleFailure(c, err)
		return nil
	}
	return ws
}

// GetRegion get workspace region
// (GET /api/workspaces/{workspaceName}/region)
func (h *ControllerHandler) GetRegion(c *gin.Context, workspaceName string) {
	ws := h.workspace(c, workspaceName)
	if ws == nil {
		return
	}
	region, err := h.controller.GetRegion(c.Request.Context(), ws)
	if err != nil {
		handleFailure(c, err)
		return
	}
	c.JSON(requestOk, RegionResponse{Region: &region})
}

// ListPipelines list published pipelines of the workspace
// (GET /api/workspaces/{workspaceName}/pipelines)
func (h *ControllerHandler) ListPipelines(c *gin.Context, workspaceName string) {
	ws := h.workspace(c, workspaceName)
	if ws == nil {
		return
	}
	pipelines, err := h.controller.ListPipelines(c.Request.Context(), ws)
	if err != nil {
		handleFailure(c, err)
		return
	}
	c.JSON(requestOk, pipelines)
}

// Predict real time predict, body is forwarded as is
// (POST /api/subscriptions/{subscriptionId}/predict)
func (h *ControllerHandler) Predict(c *gin.Context, subscriptionId string, params PredictParams) {
	scope := h.scope(c, subscriptionId, params.ApiVersion)
	if scope == nil {
		return
	}
	body, err := c.GetRawData()
	if err != nil {
		handleError(c, http.StatusBadRequest, config.BADREQUEST)
		return
	}
	result, err := h.controller.Predict(c.Request.Context(), scope, body)
	if err != nil {
		handleFailure(c, err)
		return
	}
	c.Data(requestOk, jsonContentType, result)
}

// TrainModel submit a training run
// (POST /api/subscriptions/{subscriptionId}/train)
func (h *ControllerHandler) TrainModel(c *gin.Context, subscriptionId string, params TrainModelParams) {
	request := new(TrainModelJSONRequestBody)
	if err := getBindResult(c, request); err != nil {
		handleError(c, http.StatusBadRequest, config.BADREQUEST)
		return
	}
	scope := h.scope(c, subscriptionId, params.ApiVersion)
	if scope == nil {
		return
	}
	resp, err := h.controller.TrainModel(c.Request.Context(), scope, request.UserInput)
	if err != nil {
		handleFailure(c, err)
		return
	}
	c.JSON(asyncSuccessCode, resp)
}

// BatchInference submit a batch inference run, without modelId the pipeline
// picks its default model
// (POST /api/subscriptions/{subscriptionId}/batchinference)
func (h *ControllerHandler) BatchInference(c *gin.Context, subscriptionId string, params BatchInferenceParams) {
	request := new(BatchInferenceJSONRequestBody)
	if err := getBindResult(c, request); err != nil {
		handleError(c, http.StatusBadRequest, config.BADREQUEST)
		return
	}
	scope := h.scope(c, subscriptionId, params.ApiVersion)
	if scope == nil {
		return
	}
	var (
		resp *models.BatchInferenceResponse
		err  error
	)
	if request.ModelId != nil {
		resp, err = h.controller.BatchInference(c.Request.Context(), scope, *request.ModelId, request.UserInput)
	} else {
		resp, err = h.controller.BatchInferenceWithDefaultModel(c.Request.Context(), scope, request.UserInput)
	}
	if err != nil {
		handleFailure(c, err)
		return
	}
	c.JSON(asyncSuccessCode, resp)
}

// DeployRealTimeEndpoint deploy a model to a real time endpoint
// (POST /api/subscriptions/{subscriptionId}/models/{modelId}/deploy)
func (h *ControllerHandler) DeployRealTimeEndpoint(c *gin.Context, subscriptionId string, modelId string,
	params DeployRealTimeEndpointParams) {
	request := new(DeployRealTimeEndpointJSONRequestBody)
	if err := getBindResult(c, request); err != nil {
		handleError(c, http.StatusBadRequest, config.BADREQUEST)
		return
	}
	scope := h.scope(c, subscriptionId, params.ApiVersion)
	if scope == nil {
		return
	}
	resp, err := h.controller.DeployRealTimeEndpoint(c.Request.Context(), scope, modelId, request.UserInput)
	if err != nil {
		handleFailure(c, err)
		return
	}
	c.JSON(asyncSuccessCode, resp)
}

// ListOperations list operations of a kind
// (GET /api/subscriptions/{subscriptionId}/operations/{operationType})
func (h *ControllerHandler) ListOperations(c *gin.Context, subscriptionId string, operationType string,
	params ListOperationsParams) {
	kind, err := models.ParseOperationKind(operationType)
	if err != nil {
		handleError(c, http.StatusBadRequest, err.Error())
		return
	}
	scope := h.scope(c, subscriptionId, params.ApiVersion)
	if scope == nil {
		return
	}
	operations, err := h.controller.ListOperations(c.Request.Context(), scope, kind)
	if err != nil {
		handleFailure(c, err)
		return
	}
	c.JSON(requestOk, operations)
}

// GetOperation get a single operation
// (GET /api/subscriptions/{subscriptionId}/operations/{operationType}/{operationId})
func (h *ControllerHandler) GetOperation(c *gin.Context, subscriptionId string, operationType string,
	operationId string, params GetOperationParams) {
	kind, err := models.ParseOperationKind(operationType)
	if err != nil {
		handleError(c, http.StatusBadRequest, err.Error())
		return
	}
	scope := h.scope(c, subscriptionId, params.ApiVersion)
	if scope == nil {
		return
	}
	operation, err := h.controller.GetOperation(c.Request.Context(), scope, kind, operationId)
	if err != nil {
		handleFailure(c, err)
		return
	}
	c.JSON(requestOk, operation)
}

// ListModels list models of the subscription
// (GET /api/subscriptions/{subscriptionId}/models)
func (h *ControllerHandler) ListModels(c *gin.Context, subscriptionId string, params ListModelsParams) {
	scope := h.scope(c, subscriptionId, params.ApiVersion)
	if scope == nil {
		return
	}
	list, err := h.controller.ListModels(c.Request.Context(), scope)
	if err != nil {
		handleFailure(c, err)
		return
	}
	c.JSON(requestOk, list)
}

// GetModel get model info
// (GET /api/subscriptions/{subscriptionId}/models/{modelId})
func (h *ControllerHandler) GetModel(c *gin.Context, subscriptionId string, modelId string, params GetModelParams) {
	scope := h.scope(c, subscriptionId, params.ApiVersion)
	if scope == nil {
		return
	}
	model, err := h.controller.GetModel(c.Request.Context(), scope, modelId)
	if err != nil {
		handleFailure(c, err)
		return
	}
	c.JSON(requestOk, model)
}

// DeleteModel delete a registered model
// (DELETE /api/subscriptions/{subscriptionId}/models/{modelId})
func (h *ControllerHandler) DeleteModel(c *gin.Context, subscriptionId string, modelId string,
	params DeleteModelParams) {
	scope := h.scope(c, subscriptionId, params.ApiVersion)
	if scope == nil {
		return
	}
	if err := h.controller.DeleteModel(c.Request.Context(), scope.Workspace, modelId); err != nil {
		handleFailure(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{
		"subscriptionId": subscriptionId,
		"modelId":        modelId,
	}).Info("model deleted")
	c.String(requestOk, "success")
}

// ListEndpoints list endpoints of the subscription
// (GET /api/subscriptions/{subscriptionId}/endpoints)
func (h *ControllerHandler) ListEndpoints(c *gin.Context, subscriptionId string, params ListEndpointsParams) {
	scope := h.scope(c, subscriptionId, params.ApiVersion)
	if scope == nil {
		return
	}
	list, err := h.controller.ListEndpoints(c.Request.Context(), scope)
	if err != nil {
		handleFailure(c, err)
		return
	}
	c.JSON(requestOk, list)
}

// GetEndpoint get endpoint with its keys
// (GET /api/subscriptions/{subscriptionId}/endpoints/{endpointId})
func (h *ControllerHandler) GetEndpoint(c *gin.Context, subscriptionId string, endpointId string,
	params GetEndpointParams) {
	scope := h.scope(c, subscriptionId, params.ApiVersion)
	if scope == nil {
		return
	}
	endpoint, err := h.controller.GetEndpoint(c.Request.Context(), scope, endpointId)
	if err != nil {
		handleFailure(c, err)
		return
	}
	c.JSON(requestOk, endpoint)
}

// DeleteEndpoint delete a real time endpoint
// (DELETE /api/subscriptions/{subscriptionId}/endpoints/{endpointId})
func (h *ControllerHandler) DeleteEndpoint(c *gin.Context, subscriptionId string, endpointId string,
	params DeleteEndpointParams) {
	scope := h.scope(c, subscriptionId, params.ApiVersion)
	if scope == nil {
		return
	}
	if err := h.controller.DeleteEndpoint(c.Request.Context(), scope.Workspace, endpointId); err != nil {
		handleFailure(c, err)
		return
	}
	logrus.WithFields(logrus.Fields{
		"subscriptionId": subscriptionId,
		"endpointId":     endpointId,
	}).Info("endpoint deleted")
	c.String(requestOk, "success")
}

// NoRouterHandler unknown path
func (h *ControllerHandler) NoRouterHandler(c *gin.Context) {
	handleError(c, http.StatusNotFound, config.NOTFOUND)
}
