package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/devsapp/serverless-aml-controller/pkg/client"
	"github.com/devsapp/serverless-aml-controller/pkg/models"
	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"
)

type regionEntry struct {
	region   string
	expireAt time.Time
}

// RegionResolver resolve the region backing a workspace from the management
// plane. Lookups are fresh unless a ttl cache is configured.
type RegionResolver struct {
	transport  client.Transport
	tokens     client.TokenProvider
	endpoint   string
	apiVersion string
	ttl        time.Duration
	cache      *lru.Cache
}

func NewRegionResolver(transport client.Transport, tokens client.TokenProvider, endpoint, apiVersion string,
	ttl time.Duration, size int) (*RegionResolver, error) {
	r := &RegionResolver{
		transport:  transport,
		tokens:     tokens,
		endpoint:   endpoint,
		apiVersion: apiVersion,
		ttl:        ttl,
	}
	if ttl > 0 {
		cache, err := lru.New(size)
		if err != nil {
			return nil, err
		}
		r.cache = cache
	}
	return r, nil
}

func (r *RegionResolver) Resolve(ctx context.Context, ws *models.Workspace) (string, error) {
	if region, ok := r.cached(ws.ResourceId); ok {
		return region, nil
	}
	token, err := workspaceToken(ctx, r.tokens, ws)
	if err != nil {
		return "", err
	}
	return r.lookup(ctx, ws, token)
}

// resolve as Resolve with a token already issued for the workspace
func (r *RegionResolver) resolve(ctx context.Context, ws *models.Workspace, token string) (string, error) {
	if region, ok := r.cached(ws.ResourceId); ok {
		return region, nil
	}
	return r.lookup(ctx, ws, token)
}

func (r *RegionResolver) lookup(ctx context.Context, ws *models.Workspace, token string) (string, error) {
	req := client.NewRequest(http.MethodGet,
		fmt.Sprintf("%s%s?api-version=%s", r.endpoint, ws.ResourceId, r.apiVersion), nil)
	req.SetBearer(token)
	resp, err := send(ctx, r.transport, req)
	if err != nil {
		return "", err
	}

	var details map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return "", newRemoteCallError(FailureFormat, resp)
	}
	var region string
	if raw, ok := details["location"]; !ok || json.Unmarshal(raw, &region) != nil || region == "" {
		return "", newRemoteCallError(FailureFormat, resp)
	}
	if r.cache != nil {
		r.cache.Add(ws.ResourceId, regionEntry{region: region, expireAt: time.Now().Add(r.ttl)})
	}
	logrus.Debugf("workspace %s resolved to region %s", ws.Name, region)
	return region, nil
}

func (r *RegionResolver) cached(resourceId string) (string, bool) {
	if r.cache == nil {
		return "", false
	}
	val, ok := r.cache.Get(resourceId)
	if !ok {
		return "", false
	}
	entry := val.(regionEntry)
	if time.Now().After(entry.expireAt) {
		r.cache.Remove(resourceId)
		return "", false
	}
	return entry.region, true
}

func workspaceToken(ctx context.Context, tokens client.TokenProvider, ws *models.Workspace) (string, error) {
	token, err := tokens.GetToken(ctx, ws.AADTenantId, ws.AADApplicationId, ws.AADApplicationSecret)
	if err != nil {
		return "", fmt.Errorf("workspace %s get token fail: %w", ws.Name, err)
	}
	return token, nil
}

// send execute the request, a non 2xx status becomes a status failure
func send(ctx context.Context, transport client.Transport, req *client.Request) (*client.Response, error) {
	resp, err := transport.Send(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Url, err)
	}
	if !resp.IsSuccess() {
		return nil, newRemoteCallError(FailureStatus, resp)
	}
	return resp, nil
}
