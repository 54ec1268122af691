package controller

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/devsapp/serverless-aml-controller/pkg/client"
	"github.com/devsapp/serverless-aml-controller/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servicesHandler(count int, failKeysOf string, inFlight, peak *int32) func(req *client.Request) *client.Response {
	return withRegion(func(req *client.Request) *client.Response {
		if strings.HasSuffix(req.Url, "/listkeys") {
			n := atomic.AddInt32(inFlight, 1)
			for {
				p := atomic.LoadInt32(peak)
				if n <= p || atomic.CompareAndSwapInt32(peak, p, n) {
					break
				}
			}
			defer atomic.AddInt32(inFlight, -1)
			name := strings.TrimSuffix(strings.TrimPrefix(req.Url, modelManagement+"/services/"), "/listkeys")
			if name == failKeysOf {
				return respond(http.StatusForbidden, "keys of "+name+" denied")
			}
			// later services answer first
			var idx int
			fmt.Sscanf(name, "e%d", &idx)
			time.Sleep(time.Duration(count-idx) * 5 * time.Millisecond)
			return respond(http.StatusOK, fmt.Sprintf(`{"primaryKey":"pk-%s","secondaryKey":"sk-%s"}`, name, name))
		}
		var records []string
		for i := 0; i < count; i++ {
			records = append(records, fmt.Sprintf(`{"name":"e%d","createdTime":"c%d","updatedTime":"u%d",`+
				`"scoringUri":"https://e%d.test/score","description":"d%d"}`, i, i, i, i, i))
		}
		return respond(http.StatusOK, `{"value":[`+strings.Join(records, ",")+`]}`)
	})
}

func TestListEndpointsKeepsOrder(t *testing.T) {
	var inFlight, peak int32
	ctrl, transport := newTestController(t, servicesHandler(6, "", &inFlight, &peak))
	endpoints, err := ctrl.ListEndpoints(context.Background(), testScope())
	require.NoError(t, err)
	require.Len(t, endpoints, 6)
	for i, e := range endpoints {
		name := fmt.Sprintf("e%d", i)
		assert.Equal(t, models.Endpoint{
			EndpointId:      name,
			StartTimeUtc:    fmt.Sprintf("c%d", i),
			CompleteTimeUtc: fmt.Sprintf("u%d", i),
			ScoringUrl:      fmt.Sprintf("https://e%d.test/score", i),
			PrimaryKey:      "pk-" + name,
			SecondaryKey:    "sk-" + name,
			Description:     fmt.Sprintf("d%d", i),
		}, e)
	}
	// one listing plus one listkeys per endpoint
	assert.Len(t, transport.remote(), 7)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(4))
	for _, req := range transport.remote() {
		if strings.HasSuffix(req.Url, "/listkeys") {
			assert.Equal(t, http.MethodPost, req.Method)
		}
	}
}

func TestListEndpointsSequential(t *testing.T) {
	var inFlight, peak int32
	transport := &fakeTransport{handler: servicesHandler(4, "", &inFlight, &peak)}
	opts := testOptions()
	opts.EndpointKeyConcurrency = 1
	ctrl, err := NewController(transport, &fakeTokens{}, opts)
	require.NoError(t, err)

	endpoints, err := ctrl.ListEndpoints(context.Background(), testScope())
	require.NoError(t, err)
	assert.Len(t, endpoints, 4)
	assert.Equal(t, int32(1), atomic.LoadInt32(&peak))
}

func TestListEndpointsKeyFailureAborts(t *testing.T) {
	var inFlight, peak int32
	ctrl, _ := newTestController(t, servicesHandler(5, "e2", &inFlight, &peak))
	endpoints, err := ctrl.ListEndpoints(context.Background(), testScope())
	assert.Nil(t, endpoints)
	var remoteErr *RemoteCallError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, FailureStatus, remoteErr.Kind)
	assert.Equal(t, "keys of e2 denied", remoteErr.Body)
}

func TestListEndpointsEmpty(t *testing.T) {
	var inFlight, peak int32
	ctrl, transport := newTestController(t, servicesHandler(0, "", &inFlight, &peak))
	endpoints, err := ctrl.ListEndpoints(context.Background(), testScope())
	require.NoError(t, err)
	assert.Empty(t, endpoints)
	assert.Len(t, transport.remote(), 1)
}

func TestGetEndpoint(t *testing.T) {
	var inFlight, peak int32
	ctrl, transport := newTestController(t, servicesHandler(1, "", &inFlight, &peak))
	endpoint, err := ctrl.GetEndpoint(context.Background(), testScope(), "e0")
	require.NoError(t, err)
	assert.Equal(t, "e0", endpoint.EndpointId)
	assert.Equal(t, "https://e0.test/score", endpoint.ScoringUrl)
	assert.Equal(t, "pk-e0", endpoint.PrimaryKey)
	assert.Equal(t, "sk-e0", endpoint.SecondaryKey)
	remote := transport.remote()
	require.Len(t, remote, 2)
	assert.Contains(t, remote[0].Url, "name=e0")
	assert.Equal(t, modelManagement+"/services/e0/listkeys", remote[1].Url)
}

func TestGetEndpointEmpty(t *testing.T) {
	var inFlight, peak int32
	ctrl, _ := newTestController(t, servicesHandler(0, "", &inFlight, &peak))
	_, err := ctrl.GetEndpoint(context.Background(), testScope(), "e0")
	var remoteErr *RemoteCallError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, FailureEmpty, remoteErr.Kind)
}
