package config

import (
	"fmt"
	"strings"
)

// templateHeader opens every generated configuration file.
const templateHeader = `# docgate configuration
#
# The checks themselves are fixed: heading hierarchy (error), list markers
# (warning), code block languages (warning) and anchor links (info).
# These settings only change how the report is presented.
`

// GenerateTemplate creates the commented default configuration file.
func GenerateTemplate() []byte {
	defaults := NewConfig()

	var builder strings.Builder
	builder.WriteString(templateHeader)
	builder.WriteString("\n")

	writeOption(&builder, "Report format: text or json.", "format", string(defaults.Format))
	writeOption(&builder, "Terminal colors: auto, always or never.", "color", string(defaults.Color))
	writeOption(&builder, "Show a hint under findings that carry one.",
		"suggestions", fmt.Sprint(defaults.Suggestions))
	writeOption(&builder, "Mark anchor links that match no heading or HTML anchor.",
		"resolve_anchors", fmt.Sprint(defaults.ResolveAnchors))

	return []byte(builder.String())
}

func writeOption(builder *strings.Builder, comment, key, value string) {
	builder.WriteString("# " + comment + "\n")
	builder.WriteString(key + ": " + value + "\n")
	builder.WriteString("\n")
}
