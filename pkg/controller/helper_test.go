package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/devsapp/serverless-aml-controller/pkg/client"
	"github.com/devsapp/serverless-aml-controller/pkg/models"
	"github.com/stretchr/testify/require"
)

const (
	testSubscriptionId = "a6c2a7cc-d67e-4a1a-b765-983f08c0423a"
	testResourceId     = "/subscriptions/s1/resourceGroups/rg/providers/Microsoft.MachineLearningServices/workspaces/ws"
	testToken          = "workspace-token"
)

type fakeTransport struct {
	mu       sync.Mutex
	requests []*client.Request
	handler  func(req *client.Request) *client.Response
}

func (f *fakeTransport) Send(ctx context.Context, req *client.Request) (*client.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.handler(req), nil
}

func (f *fakeTransport) sent() []*client.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*client.Request(nil), f.requests...)
}

// remote requests other than region lookups
func (f *fakeTransport) remote() []*client.Request {
	var list []*client.Request
	for _, req := range f.sent() {
		if !isManagement(req) {
			list = append(list, req)
		}
	}
	return list
}

type fakeTokens struct {
	err   error
	mu    sync.Mutex
	calls int
}

func (f *fakeTokens) GetToken(ctx context.Context, tenantId, applicationId, applicationSecret string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return testToken, nil
}

var errTokenDenied = errors.New("AADSTS7000215: invalid client secret")

func isManagement(req *client.Request) bool {
	return strings.HasPrefix(req.Url, "https://management.test")
}

func respond(code int, body string) *client.Response {
	return &client.Response{StatusCode: code, Body: []byte(body)}
}

// withRegion answer region lookups with westus2, everything else goes to h
func withRegion(h func(req *client.Request) *client.Response) func(req *client.Request) *client.Response {
	return func(req *client.Request) *client.Response {
		if isManagement(req) {
			return respond(http.StatusOK, `{"location":"westus2","name":"ws"}`)
		}
		return h(req)
	}
}

func testOptions() Options {
	return Options{
		ManagementEndpoint:     "https://management.test",
		ManagementApiVersion:   "2019-05-01",
		RegionEndpointFormat:   "https://%s.api.azureml.ms",
		EndpointKeyConcurrency: 4,
	}
}

func newTestController(t *testing.T, h func(req *client.Request) *client.Response) (*Controller, *fakeTransport) {
	transport := &fakeTransport{handler: h}
	c, err := NewController(transport, &fakeTokens{}, testOptions())
	require.NoError(t, err)
	return c, transport
}

func testScope() *models.Scope {
	return &models.Scope{
		Product: &models.Product{Id: "7", ProductName: "eddi"},
		Deployment: &models.Deployment{
			Id:             "3",
			ProductName:    "eddi",
			DeploymentName: "westus",
		},
		Version: &models.APIVersion{
			ProductName:        "eddi",
			DeploymentName:     "westus",
			VersionName:        "v1",
			RealTimePredictAPI: "https://scoring.test/score",
			BatchInferenceAPI:  "https://pipeline.test/infer",
			TrainModelAPI:      "https://pipeline.test/train",
			DeployModelAPI:     "https://pipeline.test/deploy",
			AuthenticationType: models.AuthToken,
			AuthenticationKey:  "static-key",
			WorkspaceName:      "ws",
		},
		Workspace: &models.Workspace{
			Name:                 "ws",
			ResourceId:           testResourceId,
			AADTenantId:          "tenant",
			AADApplicationId:     "app",
			AADApplicationSecret: "secret",
		},
		Subscription: &models.APISubscription{
			SubscriptionId: testSubscriptionId,
			UserId:         "user@contoso.com",
			ProductName:    "eddi",
			DeploymentName: "westus",
		},
	}
}

func (f *fakeTokens) issued() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
