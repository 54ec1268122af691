package controller

import (
	"bytes"
	"encoding/json"

	"github.com/devsapp/serverless-aml-controller/pkg/client"
	"github.com/devsapp/serverless-aml-controller/pkg/config"
	"github.com/devsapp/serverless-aml-controller/pkg/models"
)

var jsonNull = []byte("null")

type envelope struct {
	Value *json.RawMessage `json:"value"`
}

// decodeValue decode the records of a {"value": [...]} envelope. A missing or
// null value is a format failure, an empty one fails only when single is set.
func decodeValue[T any](resp *client.Response, single bool) ([]T, error) {
	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil || env.Value == nil {
		return nil, newRemoteCallError(FailureFormat, resp)
	}
	var records []T
	if err := json.Unmarshal(*env.Value, &records); err != nil {
		return nil, newRemoteCallError(FailureFormat, resp)
	}
	if single && len(records) == 0 {
		return nil, newRemoteCallError(FailureEmpty, resp)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// decodePipelines the pipeline list is a bare array whose fields may be
// absent, those get a placeholder
func decodePipelines(resp *client.Response) ([]models.Pipeline, error) {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body, &items); err != nil {
		return nil, newRemoteCallError(FailureFormat, resp)
	}
	pipelines := make([]models.Pipeline, 0, len(items))
	for _, item := range items {
		pipelines = append(pipelines, models.Pipeline{
			DisplayName: fieldText(item, "Name", config.NO_NAME),
			Id:          fieldText(item, "Id", config.NO_ID),
			Description: fieldText(item, "Description", config.NO_DESCRIPTION),
			CreatedDate: fieldText(item, "CreatedDate", config.NO_CREATED_DATE),
		})
	}
	return pipelines, nil
}

func fieldText(item map[string]json.RawMessage, key, placeholder string) string {
	raw, ok := item[key]
	if !ok || isNull(raw) {
		return placeholder
	}
	return rawText(raw)
}

// rawText a json string unquoted, anything else as its json text
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull)
}

func toOperation(d descriptor, run *models.RunRecord) models.Operation {
	op := models.Operation{
		OperationType:   string(d.kind),
		Status:          run.Status,
		StartTimeUtc:    run.StartTimeUtc,
		CompleteTimeUtc: run.EndTimeUtc,
		Description:     run.Description,
	}
	if !isNull(run.Error) {
		op.Error = rawText(run.Error)
	}
	d.setViewId(&op, &run.Tags)
	return op
}

func toModel(record *models.ModelRecord) models.Model {
	return models.Model{
		ModelId:         record.Name,
		StartTimeUtc:    record.CreatedTime,
		CompleteTimeUtc: record.ModifiedTime,
		Description:     record.Description,
	}
}

func toEndpoint(record *models.ServiceRecord, keys *models.ServiceKeys) models.Endpoint {
	return models.Endpoint{
		EndpointId:      record.Name,
		StartTimeUtc:    record.CreatedTime,
		CompleteTimeUtc: record.UpdatedTime,
		ScoringUrl:      record.ScoringUri,
		PrimaryKey:      keys.PrimaryKey,
		SecondaryKey:    keys.SecondaryKey,
		Description:     record.Description,
	}
}
