package models

// Operation normalized view of a submitted train/infer/deploy run
type Operation struct {
	OperationType   string `json:"operationType"`
	OperationId     string `json:"operationId,omitempty"`
	ModelId         string `json:"modelId,omitempty"`
	EndpointId      string `json:"endpointId,omitempty"`
	Status          string `json:"status"`
	StartTimeUtc    string `json:"startTimeUtc"`
	CompleteTimeUtc string `json:"completeTimeUtc"`
	Description     string `json:"description,omitempty"`
	Error           string `json:"error,omitempty"`
}

type Model struct {
	ModelId         string `json:"modelId"`
	StartTimeUtc    string `json:"startTimeUtc"`
	CompleteTimeUtc string `json:"completeTimeUtc"`
	Description     string `json:"description"`
}

type Endpoint struct {
	EndpointId      string `json:"endpointId"`
	StartTimeUtc    string `json:"startTimeUtc"`
	CompleteTimeUtc string `json:"completeTimeUtc"`
	ScoringUrl      string `json:"scoringUrl"`
	PrimaryKey      string `json:"primaryKey"`
	SecondaryKey    string `json:"secondaryKey"`
	Description     string `json:"description"`
}

type Pipeline struct {
	DisplayName string `json:"displayName"`
	Id          string `json:"id"`
	Description string `json:"description"`
	CreatedDate string `json:"createdDate"`
}
