package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/devsapp/serverless-aml-controller/pkg/client"
	"github.com/devsapp/serverless-aml-controller/pkg/config"
	"github.com/devsapp/serverless-aml-controller/pkg/models"
)

// Tracker receives every accepted submission
type Tracker interface {
	Track(kind models.OperationKind, experimentName, id string)
}

type Options struct {
	ManagementEndpoint     string
	ManagementApiVersion   string
	RegionEndpointFormat   string // fmt pattern, %s=region
	EndpointKeyConcurrency int
	RegionCacheTTL         time.Duration // 0 disable region cache
	RegionCacheSize        int
	Tracker                Tracker
}

func OptionsFromConfig(c *config.Config) Options {
	opts := Options{
		ManagementEndpoint:     c.ManagementEndpoint,
		ManagementApiVersion:   c.ManagementApiVersion,
		RegionEndpointFormat:   c.RegionEndpointFormat,
		EndpointKeyConcurrency: c.EndpointKeyConcurrency,
	}
	if c.UseRegionCache() {
		opts.RegionCacheTTL = time.Duration(c.RegionCacheTTL) * time.Second
		opts.RegionCacheSize = c.RegionCacheSize
	}
	return opts
}

// Controller drives training, batch inference and endpoint deployment against
// the remote pipeline service. It holds no per operation state, every status
// is re-queried.
type Controller struct {
	transport client.Transport
	tokens    client.TokenProvider
	regions   *RegionResolver
	opts      Options
}

func NewController(transport client.Transport, tokens client.TokenProvider, opts Options) (*Controller, error) {
	regions, err := NewRegionResolver(transport, tokens, opts.ManagementEndpoint, opts.ManagementApiVersion,
		opts.RegionCacheTTL, opts.RegionCacheSize)
	if err != nil {
		return nil, err
	}
	return &Controller{
		transport: transport,
		tokens:    tokens,
		regions:   regions,
		opts:      opts,
	}, nil
}

// session region scoped base url and workspace token of one operation
type session struct {
	base       string
	resourceId string
	token      string
}

func (s *session) pipelinesUrl() string {
	return s.base + config.PIPELINES_PATH + s.resourceId + "/pipelines"
}

func (s *session) runsQueryUrl(experimentName string) string {
	return fmt.Sprintf("%s%s%s/experiments/%s/runs:query", s.base, config.HISTORY_PATH, s.resourceId,
		url.PathEscape(experimentName))
}

func (s *session) modelManagementUrl() string {
	return s.base + config.MODEL_MANAGEMENT_PATH + s.resourceId
}

// open issue one workspace token, shared by the region lookup and the call
func (c *Controller) open(ctx context.Context, ws *models.Workspace) (*session, error) {
	token, err := workspaceToken(ctx, c.tokens, ws)
	if err != nil {
		return nil, err
	}
	region, err := c.regions.resolve(ctx, ws, token)
	if err != nil {
		return nil, err
	}
	return &session{
		base:       fmt.Sprintf(c.opts.RegionEndpointFormat, region),
		resourceId: ws.ResourceId,
		token:      token,
	}, nil
}

func (c *Controller) call(ctx context.Context, s *session, method, target string, body []byte) (*client.Response, error) {
	req := client.NewRequest(method, target, body)
	req.SetBearer(s.token)
	return send(ctx, c.transport, req)
}

func (c *Controller) GetRegion(ctx context.Context, ws *models.Workspace) (string, error) {
	return c.regions.Resolve(ctx, ws)
}

func (c *Controller) ListPipelines(ctx context.Context, ws *models.Workspace) ([]models.Pipeline, error) {
	s, err := c.open(ctx, ws)
	if err != nil {
		return nil, err
	}
	resp, err := c.call(ctx, s, http.MethodGet, s.pipelinesUrl(), nil)
	if err != nil {
		return nil, err
	}
	return decodePipelines(resp)
}

func (c *Controller) queryRuns(ctx context.Context, scope *models.Scope, kind models.OperationKind,
	id string) (descriptor, []models.RunRecord, error) {
	d, err := descriptorOf(kind)
	if err != nil {
		return d, nil, err
	}
	filter, err := buildRunFilter(d, scope.Subscription.UserId, scope.Subscription.SubscriptionId, id)
	if err != nil {
		return d, nil, err
	}
	body, err := json.Marshal(&models.RunQueryRequest{Filter: filter})
	if err != nil {
		return d, nil, err
	}
	s, err := c.open(ctx, scope.Workspace)
	if err != nil {
		return d, nil, err
	}
	resp, err := c.call(ctx, s, http.MethodPost, s.runsQueryUrl(experimentName(scope, d)), body)
	if err != nil {
		return d, nil, err
	}
	runs, err := decodeValue[models.RunRecord](resp, id != "")
	return d, runs, err
}

// GetOperation status of one submission, id is the id returned by the submit
func (c *Controller) GetOperation(ctx context.Context, scope *models.Scope, kind models.OperationKind,
	id string) (*models.Operation, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: %s id is empty", ErrInvalidFilterValue, kind)
	}
	d, runs, err := c.queryRuns(ctx, scope, kind, id)
	if err != nil {
		return nil, err
	}
	op := toOperation(d, &runs[0])
	return &op, nil
}

// ListOperations every submission of the kind in the subscription scope
func (c *Controller) ListOperations(ctx context.Context, scope *models.Scope,
	kind models.OperationKind) ([]models.Operation, error) {
	d, runs, err := c.queryRuns(ctx, scope, kind, "")
	if err != nil {
		return nil, err
	}
	ops := make([]models.Operation, 0, len(runs))
	for i := range runs {
		ops = append(ops, toOperation(d, &runs[i]))
	}
	return ops, nil
}

func (c *Controller) GetModel(ctx context.Context, scope *models.Scope, modelId string) (*models.Model, error) {
	if modelId == "" {
		return nil, ErrMissingModelId
	}
	records, err := c.queryModels(ctx, scope, modelId)
	if err != nil {
		return nil, err
	}
	model := toModel(&records[0])
	return &model, nil
}

func (c *Controller) ListModels(ctx context.Context, scope *models.Scope) ([]models.Model, error) {
	records, err := c.queryModels(ctx, scope, "")
	if err != nil {
		return nil, err
	}
	list := make([]models.Model, 0, len(records))
	for i := range records {
		list = append(list, toModel(&records[i]))
	}
	return list, nil
}

func (c *Controller) queryModels(ctx context.Context, scope *models.Scope, name string) ([]models.ModelRecord, error) {
	query, err := buildTagQuery(scope, name)
	if err != nil {
		return nil, err
	}
	s, err := c.open(ctx, scope.Workspace)
	if err != nil {
		return nil, err
	}
	resp, err := c.call(ctx, s, http.MethodGet, fmt.Sprintf("%s/models?%s", s.modelManagementUrl(), query), nil)
	if err != nil {
		return nil, err
	}
	return decodeValue[models.ModelRecord](resp, name != "")
}

func (c *Controller) DeleteModel(ctx context.Context, ws *models.Workspace, modelId string) error {
	if modelId == "" {
		return ErrMissingModelId
	}
	return c.remove(ctx, ws, "models", modelId)
}

func (c *Controller) GetEndpoint(ctx context.Context, scope *models.Scope, endpointId string) (*models.Endpoint, error) {
	if endpointId == "" {
		return nil, fmt.Errorf("%w: endpointId is empty", ErrInvalidFilterValue)
	}
	s, services, err := c.queryServices(ctx, scope, endpointId)
	if err != nil {
		return nil, err
	}
	keys, err := c.listKeys(ctx, s, services[0].Name)
	if err != nil {
		return nil, err
	}
	endpoint := toEndpoint(&services[0], keys)
	return &endpoint, nil
}

// ListEndpoints every real time endpoint of the scope with its keys
func (c *Controller) ListEndpoints(ctx context.Context, scope *models.Scope) ([]models.Endpoint, error) {
	s, services, err := c.queryServices(ctx, scope, "")
	if err != nil {
		return nil, err
	}
	return c.composeEndpoints(ctx, s, services)
}

func (c *Controller) queryServices(ctx context.Context, scope *models.Scope,
	name string) (*session, []models.ServiceRecord, error) {
	query, err := buildTagQuery(scope, name)
	if err != nil {
		return nil, nil, err
	}
	s, err := c.open(ctx, scope.Workspace)
	if err != nil {
		return nil, nil, err
	}
	resp, err := c.call(ctx, s, http.MethodGet, fmt.Sprintf("%s/services?%s", s.modelManagementUrl(), query), nil)
	if err != nil {
		return nil, nil, err
	}
	services, err := decodeValue[models.ServiceRecord](resp, name != "")
	return s, services, err
}

func (c *Controller) DeleteEndpoint(ctx context.Context, ws *models.Workspace, endpointId string) error {
	if endpointId == "" {
		return fmt.Errorf("%w: endpointId is empty", ErrInvalidFilterValue)
	}
	return c.remove(ctx, ws, "services", endpointId)
}

func (c *Controller) remove(ctx context.Context, ws *models.Workspace, collection, id string) error {
	s, err := c.open(ctx, ws)
	if err != nil {
		return err
	}
	_, err = c.call(ctx, s, http.MethodDelete,
		fmt.Sprintf("%s/%s/%s", s.modelManagementUrl(), collection, url.PathEscape(id)), nil)
	return err
}
