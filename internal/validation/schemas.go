package validation

// Input schemas per operation, one JSON Schema document each. Response
// shapes are fixed by the DTO types; only inbound payloads are checked.

func nullable(t string) []string {
	return []string{t, "null"}
}

var schemas = map[Operation]map[string]any{
	OpProfileUpdate: {
		"type": "object",
		"properties": map[string]any{
			"cvFileUrl":       map[string]any{"type": nullable("string")},
			"linkedinUrl":     map[string]any{"type": nullable("string")},
			"parsedSkills":    map[string]any{"type": nullable("array"), "items": map[string]any{"type": "string"}},
			"experienceLevel": map[string]any{"type": nullable("string")},
			"targetLocation":  map[string]any{"type": nullable("string")},
		},
	},
	OpJobsSearch: {
		"type":     "object",
		"required": []string{"query", "location"},
		"properties": map[string]any{
			"query":    map[string]any{"type": "string", "minLength": 1},
			"location": map[string]any{"type": "string"},
		},
	},
	OpJobsMatch: {
		"type":     "object",
		"required": []string{"jobDescription"},
		"properties": map[string]any{
			"jobDescription": map[string]any{"type": "string", "minLength": 1},
		},
	},
	OpJobsGenerate: {
		"type":     "object",
		"required": []string{"jobDescription", "jobTitle", "companyName"},
		"properties": map[string]any{
			"jobDescription": map[string]any{"type": "string", "minLength": 1},
			"jobTitle":       map[string]any{"type": "string", "minLength": 1},
			"companyName":    map[string]any{"type": "string", "minLength": 1},
		},
	},
	OpJobsSave: {
		"type":     "object",
		"required": []string{"jobTitle", "companyName"},
		"properties": map[string]any{
			"jobTitle":        map[string]any{"type": "string", "minLength": 1},
			"companyName":     map[string]any{"type": "string", "minLength": 1},
			"matchPercentage": map[string]any{"type": nullable("integer"), "minimum": 0, "maximum": 100},
			"jobUrl":          map[string]any{"type": nullable("string")},
			"description":     map[string]any{"type": nullable("string")},
			"customCvUrl":     map[string]any{"type": nullable("string")},
			"coverLetterUrl":  map[string]any{"type": nullable("string")},
		},
	},
}
