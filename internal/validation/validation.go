package validation

import (
	"fmt"

	"github.com/jobcompass/jobcompass-api/internal/apperror"
	"github.com/xeipuuv/gojsonschema"
)

// Operation names an external-facing endpoint with a registered input schema.
type Operation string

const (
	OpProfileUpdate Operation = "profile.update"
	OpJobsSearch    Operation = "jobs.search"
	OpJobsMatch     Operation = "jobs.match"
	OpJobsGenerate  Operation = "jobs.generate"
	OpJobsSave      Operation = "jobs.save"
)

var compiled = map[Operation]*gojsonschema.Schema{}

func init() {
	for op, doc := range schemas {
		s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
		if err != nil {
			panic(fmt.Sprintf("invalid schema for %s: %v", op, err))
		}
		compiled[op] = s
	}
}

// Check validates a raw JSON payload against the operation's input schema.
// It returns a *apperror.ValidationError carrying the first violated
// field's path, or nil when the payload conforms. Check is pure: it must
// run before any persistence or external call.
func Check(op Operation, payload []byte) error {
	schema, ok := compiled[op]
	if !ok {
		return &apperror.ValidationError{Message: fmt.Sprintf("unknown operation %q", op)}
	}
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		// not JSON at all
		return &apperror.ValidationError{Message: "request body must be valid JSON"}
	}
	if result.Valid() {
		return nil
	}
	first := result.Errors()[0]
	return &apperror.ValidationError{
		Field:   fieldPath(first),
		Message: first.Description(),
	}
}

// fieldPath resolves the offending field. For "required" violations the
// schema reports the parent object, so the missing property name comes
// from the error details instead.
func fieldPath(e gojsonschema.ResultError) string {
	if e.Type() == "required" {
		if prop, ok := e.Details()["property"].(string); ok {
			return prop
		}
	}
	field := e.Field()
	if field == "(root)" {
		return ""
	}
	return field
}
