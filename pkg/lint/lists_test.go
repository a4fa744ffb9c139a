package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docgate/pkg/config"
	"github.com/yaklabco/docgate/pkg/document"
	"github.com/yaklabco/docgate/pkg/lint"
)

func TestCheckLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantWarnings int
		wantLines    []int
	}{
		{
			name:         "asterisks warn once per line",
			input:        "* a\n* b\n\n- c\n",
			wantWarnings: 2,
			wantLines:    []int{1, 2},
		},
		{
			name:         "hyphens never warn",
			input:        "- a\n- b\n  - nested\n",
			wantWarnings: 0,
		},
		{
			name:         "nested and indented lists",
			input:        "# Test\n\n- Good list\n  - Nested good\n  * Nested bad asterisk\n- Another good\n* Top level bad\n\n1. Ordered list\n   * Mixed bad asterisk\n   - Mixed good hyphen\n",
			wantWarnings: 3,
			wantLines:    []int{5, 7, 10},
		},
		{
			name:         "tab indentation",
			input:        "\t* tabbed\n",
			wantWarnings: 1,
			wantLines:    []int{1},
		},
		{
			name:         "emphasis is not a list item",
			input:        "*emphasis* text\n**bold**\n",
			wantWarnings: 0,
		},
		{
			name:         "asterisk without space",
			input:        "*\n",
			wantWarnings: 0,
		},
		{
			name:         "empty document",
			input:        "",
			wantWarnings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := lint.CheckLists(document.FromString("lists.md", tt.input))

			assert.Zero(t, res.Errors)
			assert.Equal(t, tt.wantWarnings, res.Warnings)
			require.Len(t, res.Findings, tt.wantWarnings)

			for idx, finding := range res.Findings {
				assert.Equal(t, config.SeverityWarning, finding.Category)
				assert.Equal(t, tt.wantLines[idx], finding.Line)
				assert.Contains(t, finding.Message, "Use hyphens (-) for unordered lists")
			}

			if tt.wantWarnings == 0 {
				assert.Equal(t, []string{"✅ List formatting is consistent"}, res.Lines())
			}
		})
	}
}

func TestCheckLists_RenderedMessage(t *testing.T) {
	t.Parallel()

	res := lint.CheckLists(document.FromString("l.md", "    * deep\n"))
	assert.Equal(t,
		[]string{"! Line 1: Use hyphens (-) for unordered lists instead of asterisks (*)"},
		res.Lines())
}
