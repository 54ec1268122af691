package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/devsapp/serverless-aml-controller/pkg/models"
	"golang.org/x/sync/errgroup"
)

func (c *Controller) listKeys(ctx context.Context, s *session, endpointId string) (*models.ServiceKeys, error) {
	resp, err := c.call(ctx, s, http.MethodPost,
		fmt.Sprintf("%s/services/%s/listkeys", s.modelManagementUrl(), url.PathEscape(endpointId)), nil)
	if err != nil {
		return nil, err
	}
	keys := new(models.ServiceKeys)
	if err := json.Unmarshal(resp.Body, keys); err != nil {
		return nil, newRemoteCallError(FailureFormat, resp)
	}
	return keys, nil
}

// composeEndpoints one listkeys call per service, at most
// EndpointKeyConcurrency in flight. Output keeps the order of services and
// the first failure aborts the whole listing.
func (c *Controller) composeEndpoints(ctx context.Context, s *session,
	services []models.ServiceRecord) ([]models.Endpoint, error) {
	endpoints := make([]models.Endpoint, len(services))
	g, gctx := errgroup.WithContext(ctx)
	limit := c.opts.EndpointKeyConcurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)
	for i := range services {
		i := i
		g.Go(func() error {
			keys, err := c.listKeys(gctx, s, services[i].Name)
			if err != nil {
				return err
			}
			endpoints[i] = toEndpoint(&services[i], keys)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return endpoints, nil
}
