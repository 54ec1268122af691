package client

import (
	"fmt"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/devsapp/serverless-aml-controller/pkg/utils"
)

type credentialFactory func(tenantId, applicationId, applicationSecret string) (azcore.TokenCredential, error)

// CredentialPool one credential per tenant/application/secret, credentials
// keep their own token cache so reusing them avoids a login per call
type CredentialPool struct {
	credentials   *sync.Map
	newCredential credentialFactory
}

func NewCredentialPool() *CredentialPool {
	return &CredentialPool{
		credentials:   new(sync.Map),
		newCredential: newClientSecretCredential,
	}
}

func newClientSecretCredential(tenantId, applicationId, applicationSecret string) (azcore.TokenCredential, error) {
	return azidentity.NewClientSecretCredential(tenantId, applicationId, applicationSecret, nil)
}

func (c *CredentialPool) GetCredential(tenantId, applicationId, applicationSecret string) (azcore.TokenCredential, error) {
	key := fmt.Sprintf("%s/%s/%s", tenantId, applicationId, utils.Hash(applicationSecret))
	val, existed := c.credentials.Load(key)
	if existed {
		return val.(azcore.TokenCredential), nil
	}
	cred, err := c.newCredential(tenantId, applicationId, applicationSecret)
	if err != nil {
		return nil, err
	}
	val, _ = c.credentials.LoadOrStore(key, cred)
	return val.(azcore.TokenCredential), nil
}
