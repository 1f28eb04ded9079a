package followup

import "strings"

const missingPlaceholderValue = "N/A"

type TemplateContext struct {
	FirstName     string
	FullName      string
	PipelineStage string
}

// RenderTemplate fills {first_name}, {full_name} and {pipeline_stage} in a single pass, so inserted
// values are never expanded again. Unknown placeholders stay as written.
func RenderTemplate(body string, tc TemplateContext) string {
	return strings.NewReplacer(
		"{first_name}", placeholderValue(tc.FirstName),
		"{full_name}", placeholderValue(tc.FullName),
		"{pipeline_stage}", placeholderValue(tc.PipelineStage),
	).Replace(body)
}

func placeholderValue(v string) string {
	if strings.TrimSpace(v) == "" {
		return missingPlaceholderValue
	}
	return v
}

// FirstName returns the first word of a full name.
func FirstName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
