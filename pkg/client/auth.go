package client

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// TokenProvider exchanges workspace application credentials for a bearer token
type TokenProvider interface {
	GetToken(ctx context.Context, tenantId, applicationId, applicationSecret string) (string, error)
}

// AzureTokenProvider client secret flow against Azure AD
type AzureTokenProvider struct {
	pool  *CredentialPool
	scope string
}

func NewAzureTokenProvider(scope string) *AzureTokenProvider {
	return &AzureTokenProvider{
		pool:  NewCredentialPool(),
		scope: scope,
	}
}

func (p *AzureTokenProvider) GetToken(ctx context.Context, tenantId, applicationId,
	applicationSecret string) (string, error) {
	cred, err := p.pool.GetCredential(tenantId, applicationId, applicationSecret)
	if err != nil {
		return "", fmt.Errorf("init credential of application %s fail: %w", applicationId, err)
	}
	token, err := cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{p.scope}})
	if err != nil {
		return "", fmt.Errorf("get token of application %s fail: %w", applicationId, err)
	}
	return token.Token, nil
}
