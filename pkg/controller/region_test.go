package controller

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/devsapp/serverless-aml-controller/pkg/client"
	"github.com/devsapp/serverless-aml-controller/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRegion(t *testing.T) {
	ctrl, transport := newTestController(t, withRegion(nil))
	region, err := ctrl.GetRegion(context.Background(), testScope().Workspace)
	require.NoError(t, err)
	assert.Equal(t, "westus2", region)

	sent := transport.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, http.MethodGet, sent[0].Method)
	assert.Equal(t, "https://management.test"+testResourceId+"?api-version=2019-05-01", sent[0].Url)
	assert.Equal(t, "Bearer "+testToken, sent[0].Header.Get("Authorization"))
}

func TestGetRegionFailure(t *testing.T) {
	cases := []struct {
		resp *client.Response
		kind FailureKind
	}{
		{respond(http.StatusForbidden, `{"error":"AuthorizationFailed"}`), FailureStatus},
		{respond(http.StatusOK, `{"name":"ws"}`), FailureFormat},
		{respond(http.StatusOK, `{"location":7}`), FailureFormat},
		{respond(http.StatusOK, `not json`), FailureFormat},
	}
	for _, c := range cases {
		resp := c.resp
		ctrl, _ := newTestController(t, func(req *client.Request) *client.Response { return resp })
		_, err := ctrl.GetRegion(context.Background(), testScope().Workspace)
		var remoteErr *RemoteCallError
		if assert.ErrorAs(t, err, &remoteErr) {
			assert.Equal(t, c.kind, remoteErr.Kind)
			assert.Equal(t, string(resp.Body), remoteErr.Body)
		}
	}
}

func TestRegionResolvedPerCall(t *testing.T) {
	ctrl, transport := newTestController(t, withRegion(nil))
	ws := testScope().Workspace
	for i := 0; i < 3; i++ {
		_, err := ctrl.GetRegion(context.Background(), ws)
		require.NoError(t, err)
	}
	assert.Len(t, transport.sent(), 3)
}

func TestRegionCache(t *testing.T) {
	transport := &fakeTransport{handler: withRegion(nil)}
	resolver, err := NewRegionResolver(transport, &fakeTokens{}, "https://management.test", "2019-05-01",
		50*time.Millisecond, 8)
	require.NoError(t, err)
	ws := testScope().Workspace

	for i := 0; i < 3; i++ {
		region, err := resolver.Resolve(context.Background(), ws)
		require.NoError(t, err)
		assert.Equal(t, "westus2", region)
	}
	assert.Len(t, transport.sent(), 1)

	time.Sleep(60 * time.Millisecond)
	_, err = resolver.Resolve(context.Background(), ws)
	require.NoError(t, err)
	assert.Len(t, transport.sent(), 2)
}

func TestOneTokenPerOperation(t *testing.T) {
	transport := &fakeTransport{handler: withRegion(func(req *client.Request) *client.Response {
		return respond(http.StatusOK, `{"value":[{"name":"m1"}]}`)
	})}
	tokens := &fakeTokens{}
	ctrl, err := NewController(transport, tokens, testOptions())
	require.NoError(t, err)

	_, err = ctrl.ListModels(context.Background(), testScope())
	require.NoError(t, err)
	assert.Equal(t, 1, tokens.issued())
	sent := transport.sent()
	require.Len(t, sent, 2)
	for _, req := range sent {
		assert.Equal(t, "Bearer "+testToken, req.Header.Get("Authorization"))
	}

	_, err = ctrl.GetRegion(context.Background(), testScope().Workspace)
	require.NoError(t, err)
	assert.Equal(t, 2, tokens.issued())
}

func TestOptionsFromConfigRegionCache(t *testing.T) {
	c := &config.Config{RegionCacheTTL: 300, RegionCacheSize: 16}
	opts := OptionsFromConfig(c)
	assert.Equal(t, 300*time.Second, opts.RegionCacheTTL)
	assert.Equal(t, 16, opts.RegionCacheSize)

	for _, ttl := range []int{0, -5} {
		c = &config.Config{RegionCacheTTL: ttl, RegionCacheSize: 16}
		opts = OptionsFromConfig(c)
		assert.Zero(t, opts.RegionCacheTTL)
		assert.Zero(t, opts.RegionCacheSize)
		_, err := NewController(&fakeTransport{}, &fakeTokens{}, opts)
		assert.NoError(t, err)
	}
}
