package driver

import (
	"fmt"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Schema describes one record of d's table as a JSON Schema: an object whose
// header fields are all required strings. It does not validate anything.
func Schema(d Driver) (*jsonschema.Schema, error) {
	header, err := d.Header()
	if err != nil {
		return nil, err
	}

	properties := jsonschema.NewProperties()
	for _, field := range header {
		properties.Set(field, &jsonschema.Schema{Type: "string"})
	}

	return &jsonschema.Schema{
		Version:              jsonschema.Version,
		Title:                filepath.Base(d.Source()),
		Description:          fmt.Sprintf("A %s record.", d.Format()),
		Type:                 "object",
		Properties:           properties,
		Required:             header,
		AdditionalProperties: jsonschema.FalseSchema,
	}, nil
}
