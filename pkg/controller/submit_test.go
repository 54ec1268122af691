package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/devsapp/serverless-aml-controller/pkg/client"
	"github.com/devsapp/serverless-aml-controller/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperimentName(t *testing.T) {
	scope := testScope()
	for kind, suffix := range map[models.OperationKind]string{
		models.KindTraining:   "train",
		models.KindInference:  "infer",
		models.KindDeployment: "deploy",
	} {
		name, err := ExperimentName(scope, kind)
		assert.NoError(t, err)
		assert.Equal(t, "p_7_d_3_s_"+testSubscriptionId+"_"+suffix, name)
	}
}

func TestBuildSubmissionTraining(t *testing.T) {
	sub, err := BuildSubmission(models.KindTraining, testScope(), "", "data.csv")
	require.NoError(t, err)
	assert.Equal(t, "https://pipeline.test/train", sub.Endpoint)
	assert.Equal(t, "p_7_d_3_s_"+testSubscriptionId+"_train", sub.Request.ExperimentName)
	assert.Equal(t, map[string]string{
		"userInput":      "data.csv",
		"modelId":        sub.Id,
		"userId":         "user@contoso.com",
		"productName":    "eddi",
		"deploymentName": "westus",
		"apiVersion":     "v1",
		"subscriptionId": testSubscriptionId,
	}, sub.Request.ParameterAssignments)
	assert.Equal(t, models.TagSet{
		UserId:         "user@contoso.com",
		ProductName:    "eddi",
		DeploymentName: "westus",
		ApiVersion:     "v1",
		SubscriptionId: testSubscriptionId,
		OperationType:  "training",
		ModelId:        sub.Id,
	}, sub.Request.Tags)
}

func TestBuildSubmissionInference(t *testing.T) {
	sub, err := BuildSubmission(models.KindInference, testScope(), "m1", "input")
	require.NoError(t, err)
	assert.Equal(t, "https://pipeline.test/infer", sub.Endpoint)
	assert.Equal(t, map[string]string{
		"userInput":   "input",
		"modelId":     "m1",
		"operationId": sub.Id,
	}, sub.Request.ParameterAssignments)
	assert.Equal(t, "inference", sub.Request.Tags.OperationType)
	assert.Equal(t, sub.Id, sub.Request.Tags.OperationId)
	assert.Empty(t, sub.Request.Tags.ModelId)
	assert.Empty(t, sub.Request.Tags.EndpointId)

	sub, err = BuildSubmission(models.KindInference, testScope(), "", "input")
	require.NoError(t, err)
	assert.NotContains(t, sub.Request.ParameterAssignments, "modelId")
	assert.Equal(t, sub.Id, sub.Request.ParameterAssignments["operationId"])
}

func TestBuildSubmissionDeployment(t *testing.T) {
	sub, err := BuildSubmission(models.KindDeployment, testScope(), "m1", "{}")
	require.NoError(t, err)
	assert.Equal(t, "https://pipeline.test/deploy", sub.Endpoint)
	assert.Equal(t, "p_7_d_3_s_"+testSubscriptionId+"_deploy", sub.Request.ExperimentName)
	assert.Equal(t, sub.Id, sub.Request.ParameterAssignments["endpointId"])
	assert.Equal(t, "m1", sub.Request.ParameterAssignments["modelId"])
	assert.Len(t, sub.Request.ParameterAssignments, 8)
	assert.Equal(t, "deployment", sub.Request.Tags.OperationType)
	assert.Equal(t, sub.Id, sub.Request.Tags.EndpointId)
	assert.Empty(t, sub.Request.Tags.ModelId)

	// the tag set serializes exactly one discriminating id
	data, err := json.Marshal(sub.Request.Tags)
	require.NoError(t, err)
	var tags map[string]string
	require.NoError(t, json.Unmarshal(data, &tags))
	assert.Len(t, tags, 7)
	assert.NotContains(t, tags, "modelId")
	assert.NotContains(t, tags, "operationId")
}

func TestBuildSubmissionMissingEndpoint(t *testing.T) {
	scope := testScope()
	scope.Version.DeployModelAPI = ""
	_, err := BuildSubmission(models.KindDeployment, scope, "m1", "")
	assert.ErrorIs(t, err, ErrMissingEndpoint)
}

func TestSubmitAuthModes(t *testing.T) {
	cases := []struct {
		mode   models.AuthMode
		header string
	}{
		{models.AuthToken, "Bearer " + testToken},
		{models.AuthKey, "Bearer static-key"},
		{models.AuthNone, ""},
	}
	for _, c := range cases {
		ctrl, transport := newTestController(t, func(req *client.Request) *client.Response {
			return respond(http.StatusOK, `{"Id":"run"}`)
		})
		scope := testScope()
		scope.Version.AuthenticationType = c.mode
		resp, err := ctrl.TrainModel(context.Background(), scope, "input")
		require.NoError(t, err, c.mode)
		assert.Len(t, resp.ModelId, 32)

		sent := transport.sent()
		require.Len(t, sent, 1)
		assert.Equal(t, http.MethodPost, sent[0].Method)
		assert.Equal(t, "https://pipeline.test/train", sent[0].Url)
		assert.Equal(t, c.header, sent[0].Header.Get("Authorization"), c.mode)
		assert.Equal(t, "application/json", sent[0].Header.Get("Content-Type"))
	}
}

func TestSubmitUnknownAuthMode(t *testing.T) {
	ctrl, transport := newTestController(t, func(req *client.Request) *client.Response {
		return respond(http.StatusOK, `{}`)
	})
	scope := testScope()
	scope.Version.AuthenticationType = "Basic"
	_, err := ctrl.BatchInferenceWithDefaultModel(context.Background(), scope, "input")
	assert.ErrorIs(t, err, ErrUnknownAuthMode)
	_, err = ctrl.Predict(context.Background(), scope, []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownAuthMode)
	assert.Empty(t, transport.sent())
}

func TestSubmitTokenFailure(t *testing.T) {
	transport := &fakeTransport{handler: func(req *client.Request) *client.Response {
		return respond(http.StatusOK, `{}`)
	}}
	ctrl, err := NewController(transport, &fakeTokens{err: errTokenDenied}, testOptions())
	require.NoError(t, err)
	_, err = ctrl.TrainModel(context.Background(), testScope(), "input")
	assert.ErrorIs(t, err, errTokenDenied)
	assert.False(t, IsRemoteCallFailure(err))
	assert.Empty(t, transport.sent())
}

func TestSubmitRequiresModelId(t *testing.T) {
	ctrl, transport := newTestController(t, func(req *client.Request) *client.Response {
		return respond(http.StatusOK, `{}`)
	})
	_, err := ctrl.BatchInference(context.Background(), testScope(), "", "input")
	assert.ErrorIs(t, err, ErrMissingModelId)
	_, err = ctrl.DeployRealTimeEndpoint(context.Background(), testScope(), "", "input")
	assert.ErrorIs(t, err, ErrMissingModelId)
	assert.Empty(t, transport.sent())
}

func TestPredict(t *testing.T) {
	ctrl, transport := newTestController(t, func(req *client.Request) *client.Response {
		return respond(http.StatusOK, `{"result":[0.9]}`)
	})
	scope := testScope()
	scope.Version.AuthenticationType = models.AuthKey
	body, err := ctrl.Predict(context.Background(), scope, []byte(`{"data":[1,2]}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"result":[0.9]}`, string(body))

	sent := transport.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "https://scoring.test/score", sent[0].Url)
	assert.Equal(t, `{"data":[1,2]}`, string(sent[0].Body))
	assert.Equal(t, "Bearer static-key", sent[0].Header.Get("Authorization"))
}

type recordTracker struct {
	kinds []models.OperationKind
	ids   []string
}

func (r *recordTracker) Track(kind models.OperationKind, experimentName, id string) {
	r.kinds = append(r.kinds, kind)
	r.ids = append(r.ids, id)
}

func TestSubmitTracked(t *testing.T) {
	tracker := new(recordTracker)
	opts := testOptions()
	opts.Tracker = tracker
	transport := &fakeTransport{handler: func(req *client.Request) *client.Response {
		return respond(http.StatusOK, `{}`)
	}}
	ctrl, err := NewController(transport, &fakeTokens{}, opts)
	require.NoError(t, err)

	resp, err := ctrl.DeployRealTimeEndpoint(context.Background(), testScope(), "m1", "")
	require.NoError(t, err)
	assert.Equal(t, []models.OperationKind{models.KindDeployment}, tracker.kinds)
	assert.Equal(t, []string{resp.EndpointId}, tracker.ids)
}
