package api

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed levelmap.schema.json
var levelMapSchemaJSON []byte

const levelMapSchemaURL = "schema://swimadmin/levelmap.json"

func compileMapSchema() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(levelMapSchemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse map schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(levelMapSchemaURL, def); err != nil {
		return nil, fmt.Errorf("add map schema: %w", err)
	}
	compiled, err := c.Compile(levelMapSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile map schema: %w", err)
	}
	return compiled, nil
}

// validateMapPayload checks raw against the level map schema before it is
// decoded into domain types.
func (s *Server) validateMapPayload(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := s.mapSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
