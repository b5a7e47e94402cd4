package diagnose

import (
	"bytes"
	"encoding/json"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed request_schema.json
var requestSchemaJSON []byte

var (
	requestSchemaOnce sync.Once
	requestSchema     *jsonschema.Schema
	requestSchemaErr  error
)

func compiledRequestSchema() (*jsonschema.Schema, error) {
	requestSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("request_schema.json", bytes.NewReader(requestSchemaJSON)); err != nil {
			requestSchemaErr = fmt.Errorf("failed to load request schema: %w", err)
			return
		}
		requestSchema, requestSchemaErr = compiler.Compile("request_schema.json")
	})
	return requestSchema, requestSchemaErr
}

// ValidateRequestJSON checks a raw request document against the request
// schema before it is decoded, so schema violations surface with field-level
// detail instead of zero-valued structs.
func ValidateRequestJSON(raw []byte) error {
	schema, err := compiledRequestSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid request JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("request does not match schema: %w", err)
	}
	return nil
}
