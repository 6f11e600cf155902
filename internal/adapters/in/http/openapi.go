package http

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openapiJSON []byte

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(openapiJSON)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	if err = swagger.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}

	return swagger, nil
}

// swaggerInfo serves the embedded document to the swagger UI.
var swaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	BasePath:         "/api/v1",
	Title:            "Food delivery back office",
	InfoInstanceName: swag.Name,
	SwaggerTemplate:  string(openapiJSON),
}

func init() {
	swag.Register(swaggerInfo.InstanceName(), swaggerInfo)
}
