package controller

import (
	"errors"
	"fmt"

	"github.com/devsapp/serverless-aml-controller/pkg/client"
)

// FailureKind why a remote call is reported as failed
type FailureKind int

const (
	// FailureStatus the remote service answered with a non 2xx status
	FailureStatus FailureKind = iota
	// FailureFormat the body could not be decoded or lacks the expected envelope
	FailureFormat
	// FailureEmpty a single result query decoded zero records
	FailureEmpty
)

func (k FailureKind) String() string {
	switch k {
	case FailureStatus:
		return "status"
	case FailureFormat:
		return "format"
	case FailureEmpty:
		return "empty"
	}
	return "unknown"
}

// RemoteCallError the only failure surfaced for remote calls, Body is the
// raw response text
type RemoteCallError struct {
	Kind       FailureKind
	StatusCode int
	Body       string
}

func (e *RemoteCallError) Error() string {
	if e.Kind == FailureStatus {
		return fmt.Sprintf("query failed with response %s", e.Body)
	}
	return fmt.Sprintf("query result in bad format. The response is %s", e.Body)
}

// IsRemoteCallFailure report whether err wraps a RemoteCallError
func IsRemoteCallFailure(err error) bool {
	var remoteErr *RemoteCallError
	return errors.As(err, &remoteErr)
}

func newRemoteCallError(kind FailureKind, resp *client.Response) *RemoteCallError {
	return &RemoteCallError{
		Kind:       kind,
		StatusCode: resp.StatusCode,
		Body:       string(resp.Body),
	}
}

var (
	ErrInvalidFilterValue = errors.New("invalid filter value")
	ErrUnknownAuthMode    = errors.New("unknown authentication mode")
	ErrMissingEndpoint    = errors.New("api version declares no endpoint for this operation")
	ErrMissingModelId     = errors.New("modelId is required")
)
