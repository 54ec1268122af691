package handler

import (
	_ "embed"
	"fmt"

	ginmiddleware "github.com/deepmap/oapi-codegen/pkg/gin-middleware"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
)

//go:embed openapi.yaml
var openapiDoc []byte

// GetSwagger returns the parsed and validated api document
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(openapiDoc)
	if err != nil {
		return nil, fmt.Errorf("error loading api document: %w", err)
	}
	if err := swagger.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid api document: %w", err)
	}
	// match any host
	swagger.Servers = nil
	return swagger, nil
}

// RequestValidator reject requests not matching the api document with 400
func RequestValidator() (gin.HandlerFunc, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	return ginmiddleware.OapiRequestValidatorWithOptions(swagger, &ginmiddleware.Options{
		ErrorHandler: func(c *gin.Context, message string, statusCode int) {
			handleError(c, statusCode, message)
		},
	}), nil
}
