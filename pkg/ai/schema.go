package ai

import (
	"github.com/xeipuuv/gojsonschema"

	"github.com/Ayush99392003/resume-maker/internal/domain"
)

// JSON schemas for the payloads the AI service is asked to produce. Every
// decoded response is validated against the matching schema before it is
// handed to callers; a mismatch becomes a GeneratorResponseError.

const documentUpdateSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["latex_code", "summary_of_changes", "is_complete_document"],
  "properties": {
    "latex_code": {"type": "string", "minLength": 1},
    "summary_of_changes": {"type": "string"},
    "is_complete_document": {"type": "boolean"}
  }
}`

const proposalSetSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["proposals"],
  "properties": {
    "proposals": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "intent", "latex_code", "summary"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "intent": {"type": "string"},
          "latex_code": {"type": "string", "minLength": 1},
          "summary": {"type": "string"}
        }
      }
    }
  }
}`

const keywordListSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {"type": "string"}
}`

// validateAgainst checks a raw JSON document against one of the schemas
// above. Validation errors are folded into a single reason string.
func validateAgainst(schema, rawJSON string) error {
	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(rawJSON),
	)
	if err != nil {
		return &domain.GeneratorResponseError{Reason: err.Error(), Raw: rawJSON}
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += e.String() + "; "
	}
	return &domain.GeneratorResponseError{Reason: "schema validation failed: " + msgs, Raw: rawJSON}
}
