// Package api holds the OpenAPI document of the HTTP API and the echo server bindings generated from it.
package api

//go:generate oapi-codegen -config oapi-codegen.yaml algosender.yaml

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/shopspring/decimal"
)

var ErrInvalidDocument = errors.New("invalid OpenAPI document")

//go:embed algosender.yaml
var openAPIDocument []byte

func init() {
	// amounts travel as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	err = doc.Validate(context.Background())
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, fmt.Errorf("validation failed: %w", err))
	}

	return doc, nil
}
