package model

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// definitionSchema is the JSON Schema every JSON definition file must
// satisfy before decoding. YAML files skip this and rely on the
// decoder plus Validate.
const definitionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "gosection composite section definition",
  "type": "object",
  "required": ["shapes"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string"},
    "description": {"type": "string"},
    "units": {"type": "string"},
    "shapes": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["type"],
        "additionalProperties": false,
        "properties": {
          "type": {"enum": ["circle", "rectangle"]},
          "description": {"type": "string"},
          "radius": {"type": "number"},
          "size": {"$ref": "#/definitions/pair"},
          "offset": {"$ref": "#/definitions/pair"},
          "rotation": {"type": "number"},
          "translate": {"$ref": "#/definitions/pair"},
          "weight": {"type": "number"}
        }
      }
    }
  },
  "definitions": {
    "pair": {
      "type": "array",
      "items": {"type": "number"},
      "minItems": 2,
      "maxItems": 2
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(definitionSchema)

// ValidateSchema validates raw JSON definition bytes against the
// embedded schema.
func ValidateSchema(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return fmt.Errorf("definition does not match schema: %v", errs)
	}
	return nil
}
