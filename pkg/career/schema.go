package career

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// payloadSchema допускает любые поля сверх описанных и null на месте любого раздела.
const payloadSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "definitions": {
    "list": {"type": ["array", "null"]},
    "text": {"type": ["string", "null"]}
  },
  "properties": {
    "profession": {"$ref": "#/definitions/text"},
    "schedule": {
      "type": ["object", "null"],
      "properties": {
        "morning": {"$ref": "#/definitions/list"},
        "lunch": {"$ref": "#/definitions/list"},
        "afternoon": {"$ref": "#/definitions/list"},
        "evening": {"$ref": "#/definitions/list"}
      }
    },
    "tech_stack": {"$ref": "#/definitions/list"},
    "company_benefits": {"$ref": "#/definitions/list"},
    "career_growth": {"$ref": "#/definitions/list"},
    "colleague_messages": {
      "type": ["object", "null"],
      "properties": {
        "short": {"$ref": "#/definitions/list"},
        "medium": {"$ref": "#/definitions/list"},
        "long": {"$ref": "#/definitions/list"}
      }
    },
    "growth_table": {
      "type": ["object", "null"],
      "properties": {
        "growth_points": {"$ref": "#/definitions/list"},
        "vacancies": {"$ref": "#/definitions/list"},
        "courses": {"$ref": "#/definitions/list"}
      }
    },
    "image_description": {"$ref": "#/definitions/text"},
    "sound_description": {"$ref": "#/definitions/text"}
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(payloadSchema)

// ValidationError lists schema violations of a payload document.
type ValidationError struct {
	Errors []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	msgs := make([]string, 0, len(ve.Errors))
	for _, e := range ve.Errors {
		msgs = append(msgs, e.Field+": "+e.Message)
	}
	return "career: invalid payload: " + strings.Join(msgs, "; ")
}

// ValidatePayload checks the document shape. It does not require a profession.
func ValidatePayload(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("career: load payload: %w", err)
	}
	if result.Valid() {
		return nil
	}
	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}

// DecodePayload validates and decodes a payload document.
func DecodePayload(data []byte) (*Payload, error) {
	if err := ValidatePayload(data); err != nil {
		return nil, err
	}
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("career: decode payload: %w", err)
	}
	return &p, nil
}
