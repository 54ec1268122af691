package models

import "encoding/json"

// RunRecord one record of runs:query
type RunRecord struct {
	Status       string          `json:"status"`
	StartTimeUtc string          `json:"startTimeUtc"`
	EndTimeUtc   string          `json:"endTimeUtc"`
	Description  string          `json:"description"`
	Error        json.RawMessage `json:"error"`
	Tags         TagSet          `json:"tags"`
}

// ModelRecord one record of model management models
type ModelRecord struct {
	Name         string `json:"name"`
	CreatedTime  string `json:"createdTime"`
	ModifiedTime string `json:"modifiedTime"`
	Description  string `json:"description"`
}

// ServiceRecord one record of model management services
type ServiceRecord struct {
	Name        string `json:"name"`
	CreatedTime string `json:"createdTime"`
	UpdatedTime string `json:"updatedTime"`
	ScoringUri  string `json:"scoringUri"`
	Description string `json:"description"`
}

type ServiceKeys struct {
	PrimaryKey   string `json:"primaryKey"`
	SecondaryKey string `json:"secondaryKey"`
}
