package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docgate/internal/cli"
	"github.com/yaklabco/docgate/pkg/reporter"
)

func TestCheck_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		code     int
		errors   string
		warnings string
		contains []string
	}{
		{
			name:     "valid hierarchy",
			content:  "# T\n\n## S1\n",
			code:     cli.ExitSuccess,
			errors:   "Errors: 0",
			warnings: "Warnings: 0",
			contains: []string{"✅ Validation passed"},
		},
		{
			name:     "skipped heading level",
			content:  "# T\n\n### S\n",
			code:     cli.ExitValidationFailed,
			errors:   "Errors: 1",
			warnings: "Warnings: 0",
			contains: []string{"Heading level H3 jumps from H1", "❌ Validation failed"},
		},
		{
			name:     "asterisk list markers",
			content:  "* a\n* b\n\n- c\n",
			code:     cli.ExitSuccess,
			errors:   "Errors: 0",
			warnings: "Warnings: 2",
		},
		{
			name:     "missing code block language",
			content:  "```\ncode\n```\n\n```js\ncode\n```\n",
			code:     cli.ExitSuccess,
			errors:   "Errors: 0",
			warnings: "Warnings: 1",
		},
		{
			name:     "anchor link",
			content:  "[x](#y)\n",
			code:     cli.ExitSuccess,
			errors:   "Errors: 0",
			warnings: "Warnings: 0",
			contains: []string{"Line 1: [x](#y)"},
		},
		{
			name:     "empty document",
			content:  "",
			code:     cli.ExitSuccess,
			errors:   "Errors: 0",
			warnings: "Warnings: 0",
			contains: []string{
				"✅ Heading hierarchy is correct",
				"✅ List formatting is consistent",
				"✅ All code blocks specify languages",
				"✅ No anchor links found",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := writeDoc(t, dir, "doc.md", tt.content)

			res := execute(t, "check", path)
			assert.Equal(t, tt.code, res.code())
			assert.Empty(t, res.stderr)
			assert.Contains(t, res.stdout, "=== MARKDOWN VALIDATION: doc.md ===")
			assert.Contains(t, res.stdout, tt.errors+"\n")
			assert.Contains(t, res.stdout, tt.warnings+"\n")
			for _, want := range tt.contains {
				assert.Contains(t, res.stdout, want)
			}
		})
	}
}

func TestCheck_Usage(t *testing.T) {
	for _, args := range [][]string{
		{"check"},
		{"check", "a.md", "b.md"},
	} {
		isolate(t)

		res := execute(t, args...)
		assert.ErrorIs(t, res.err, cli.ErrUsage)
		assert.True(t, cli.IsReported(res.err))
		assert.Equal(t, cli.ExitInvalidUsage, res.code())
		assert.Equal(t, "Usage: docgate check <file-path>\n", res.stderr)
		assert.Empty(t, res.stdout)
	}
}

func TestCheck_MissingFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "missing.md")

	res := execute(t, "check", path)
	assert.Equal(t, cli.ExitFileNotFound, res.code())
	assert.True(t, cli.IsReported(res.err))
	assert.Equal(t, "Error: File does not exist: "+path+"\n", res.stderr)
	assert.Empty(t, res.stdout)
}

func TestCheck_Directory(t *testing.T) {
	dir := isolate(t)

	res := execute(t, "check", dir)
	require.Error(t, res.err)
	assert.False(t, cli.IsReported(res.err))
	assert.Equal(t, cli.ExitIOError, res.code())
}

func TestCheck_JSON(t *testing.T) {
	dir := isolate(t)
	path := writeDoc(t, dir, "doc.md", "# T\n\n### S\n\n[x](#t) [y](#nowhere)\n")

	res := execute(t, "check", "--format", "json", "--resolve-anchors", path)
	assert.Equal(t, cli.ExitValidationFailed, res.code())

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	assert.Equal(t, "doc.md", out.Document)
	assert.Equal(t, 1, out.Summary.Errors)
	assert.False(t, out.Summary.Passed)
	require.Len(t, out.Sections, 4)

	anchors := out.Sections[3].Findings
	require.Len(t, anchors, 1)
	require.Len(t, anchors[0].Anchors, 2)
	require.NotNil(t, anchors[0].Anchors[0].Resolved)
	assert.True(t, *anchors[0].Anchors[0].Resolved)
	assert.False(t, *anchors[0].Anchors[1].Resolved)
}

func TestCheck_Compact(t *testing.T) {
	dir := isolate(t)
	path := writeDoc(t, dir, "doc.md", "# T\n")

	res := execute(t, "check", "--format", "json", "--compact", path)
	require.NoError(t, res.err)
	assert.Equal(t, 1, strings.Count(res.stdout, "\n"))
}

func TestCheck_SuggestionsAndAnchorsKeepCounts(t *testing.T) {
	dir := isolate(t)
	path := writeDoc(t, dir, "doc.md", "# T\n\n### S\n\n* a\n\n```\npackage main\n\nfunc main() {}\n```\n\n[gone](#nowhere)\n")

	plain := execute(t, "check", path)
	extra := execute(t, "check", "--suggestions", "--resolve-anchors", path)

	assert.Equal(t, plain.code(), extra.code())
	assert.Contains(t, extra.stdout, "    Suggestion: Use H2 instead\n")
	assert.Contains(t, extra.stdout, "(unresolved: #nowhere)")
	assert.NotContains(t, plain.stdout, "Suggestion:")

	summary := func(out string) string {
		return out[len(out)-len("=== SUMMARY ===\nErrors: 1\nWarnings: 2\n❌ Validation failed\n"):]
	}
	assert.Equal(t, "=== SUMMARY ===\nErrors: 1\nWarnings: 2\n❌ Validation failed\n", summary(plain.stdout))
	assert.Equal(t, summary(plain.stdout), summary(extra.stdout))
}

func TestCheck_ProjectConfig(t *testing.T) {
	dir := isolate(t)
	path := writeDoc(t, dir, "doc.md", "# T\n")
	writeDoc(t, dir, ".docgate.yml", "format: json\n")

	res := execute(t, "check", path)
	require.NoError(t, res.err)
	assert.True(t, json.Valid([]byte(res.stdout)))

	res = execute(t, "check", "--format", "text", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "=== SUMMARY ===")
}

func TestCheck_EnvironmentOverridesConfig(t *testing.T) {
	dir := isolate(t)
	path := writeDoc(t, dir, "doc.md", "# T\n")
	writeDoc(t, dir, ".docgate.yml", "format: json\n")
	t.Setenv("DOCGATE_FORMAT", "text")

	res := execute(t, "check", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "=== MARKDOWN VALIDATION: doc.md ===")
}

func TestCheck_ExplicitConfig(t *testing.T) {
	dir := isolate(t)
	path := writeDoc(t, dir, "doc.md", "# T\n\n### S\n")
	cfg := writeDoc(t, dir, "custom.yml", "suggestions: true\n")

	res := execute(t, "check", "--config", cfg, path)
	assert.Equal(t, cli.ExitValidationFailed, res.code())
	assert.Contains(t, res.stdout, "Suggestion: Use H2 instead")
}

func TestCheck_ConfigErrors(t *testing.T) {
	t.Run("missing explicit config", func(t *testing.T) {
		dir := isolate(t)
		path := writeDoc(t, dir, "doc.md", "# T\n")

		res := execute(t, "check", "--config", filepath.Join(dir, "nope.yml"), path)
		assert.Equal(t, cli.ExitConfigError, res.code())
	})

	t.Run("invalid value", func(t *testing.T) {
		dir := isolate(t)
		path := writeDoc(t, dir, "doc.md", "# T\n")
		writeDoc(t, dir, ".docgate.yml", "format: xml\n")

		res := execute(t, "check", path)
		assert.Equal(t, cli.ExitConfigError, res.code())
		assert.Empty(t, res.stdout)
	})

	t.Run("invalid environment", func(t *testing.T) {
		dir := isolate(t)
		path := writeDoc(t, dir, "doc.md", "# T\n")
		t.Setenv("DOCGATE_SUGGESTIONS", "maybe")

		res := execute(t, "check", path)
		assert.Equal(t, cli.ExitConfigError, res.code())
	})
}

func TestCheck_InvalidFlagValues(t *testing.T) {
	dir := isolate(t)
	path := writeDoc(t, dir, "doc.md", "# T\n")

	res := execute(t, "check", "--format", "xml", path)
	assert.Equal(t, cli.ExitInvalidUsage, res.code())

	res = execute(t, "--color", "sometimes", "check", path)
	assert.Equal(t, cli.ExitInvalidUsage, res.code())
}

func TestCheck_ColorAlways(t *testing.T) {
	dir := isolate(t)
	path := writeDoc(t, dir, "doc.md", "# T\n")

	res := execute(t, "--color", "always", "check", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "\x1b[")

	res = execute(t, "--color", "never", "check", path)
	require.NoError(t, res.err)
	assert.NotContains(t, res.stdout, "\x1b[")
}

func TestCheck_CRLF(t *testing.T) {
	dir := isolate(t)
	lf := writeDoc(t, dir, "doc.md", "# T\n\n### S\n\n* a\n")
	crlf := writeDoc(t, dir, "crlf.md", "# T\r\n\r\n### S\r\n\r\n* a\r\n")

	want := execute(t, "check", lf)
	got := execute(t, "check", crlf)
	assert.Equal(t, want.code(), got.code())

	_, wantBody, _ := strings.Cut(want.stdout, "\n")
	_, gotBody, _ := strings.Cut(got.stdout, "\n")
	assert.Equal(t, wantBody, gotBody)
}

func TestCheck_FileUnchanged(t *testing.T) {
	dir := isolate(t)
	content := "* a\n```\nx\n```\n"
	path := writeDoc(t, dir, "doc.md", content)

	execute(t, "check", "--suggestions", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}
