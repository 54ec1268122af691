package config

// env
const (
	ACCESS_KEY_ID     = "ACCESS_KEY_ID"
	ACCESS_KEY_SECRET = "ACCESS_KEY_SECRET"
	API_KEY_HASH      = "CONTROLLER_API_KEY_HASH"
)

// run filter
const (
	RUN_TYPE_PIPELINE = "azureml.PipelineRun"
)

// pipeline placeholders
const (
	NO_NAME         = "noName"
	NO_ID           = "noId"
	NO_DESCRIPTION  = "noDescription"
	NO_CREATED_DATE = "noCreatedDate"
)

// ERROR message
const (
	INTERNALERROR = "an internal error"
	BADREQUEST    = "bad request body"
	NOTFOUND      = "not found"
	UNAUTHORIZED  = "unauthorized"
)

// remote api path
const (
	PIPELINES_PATH        = "/pipelines/v1.0"
	HISTORY_PATH          = "/history/v1.0"
	MODEL_MANAGEMENT_PATH = "/modelmanagement/v1.0"
)

// tableStore primary key column
const (
	COLPK = "PRIMARY_KEY"
)
