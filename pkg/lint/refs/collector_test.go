package refs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docgate/pkg/document"
	"github.com/yaklabco/docgate/pkg/lint/refs"
)

func anchorIDs(anchors *refs.AnchorMap) []string {
	var ids []string
	for _, anchor := range anchors.All() {
		ids = append(ids, anchor.ID)
	}
	return ids
}

func TestCollect_Headings(t *testing.T) {
	t.Parallel()

	doc := document.FromString("t.md", "# Title\n\nIntro.\n\n## Getting *Started*\n\n### `docgate check`\n\n## Title\n")
	anchors := refs.Collect(doc)

	assert.Equal(t, []string{"title", "getting-started", "docgate-check", "title-1"}, anchorIDs(anchors))

	heading := anchors.Lookup("getting-started")
	require.NotNil(t, heading)
	assert.Equal(t, 5, heading.Line)
	assert.Equal(t, "Getting Started", heading.Text)
}

func TestCollect_SetextHeading(t *testing.T) {
	t.Parallel()

	doc := document.FromString("t.md", "Overview\n========\n\nBody\n")
	anchors := refs.Collect(doc)

	anchor := anchors.Lookup("overview")
	require.NotNil(t, anchor)
	assert.Equal(t, 1, anchor.Line)
}

func TestCollect_IgnoresHeadingsInCodeBlocks(t *testing.T) {
	t.Parallel()

	doc := document.FromString("t.md", "# Real\n\n```bash\n# not a heading\n```\n")
	anchors := refs.Collect(doc)

	assert.Equal(t, []string{"real"}, anchorIDs(anchors))
}

func TestCollect_HTMLAnchors(t *testing.T) {
	t.Parallel()

	doc := document.FromString("t.md", "<div id=\"custom-block\">\n</div>\n\nSee <a name=\"inline-target\"></a> here.\n")
	anchors := refs.Collect(doc)

	block := anchors.Lookup("custom-block")
	require.NotNil(t, block)
	assert.Equal(t, refs.AnchorFromHTMLID, block.Source)
	assert.Equal(t, 1, block.Line)

	inline := anchors.Lookup("inline-target")
	require.NotNil(t, inline)
	assert.Equal(t, refs.AnchorFromHTMLName, inline.Source)
	assert.Equal(t, 4, inline.Line)
}

func TestCollect_EmptyAndNil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, refs.Collect(nil).Count())
	assert.Equal(t, 0, refs.Collect(document.FromString("t.md", "")).Count())
	assert.Equal(t, 0, refs.Collect(document.FromString("t.md", "#\n")).Count())
}
