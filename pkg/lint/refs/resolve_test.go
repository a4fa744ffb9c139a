package refs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/docgate/pkg/document"
	"github.com/yaklabco/docgate/pkg/lint/refs"
)

func TestAnchorMap_Resolve(t *testing.T) {
	t.Parallel()

	doc := document.FromString("t.md", "# Getting Started\n\n## Café\n\n## Invalid Caps\n")
	anchors := refs.Collect(doc)

	tests := []struct {
		name      string
		fragment  string
		resolved  bool
		caseMatch string
	}{
		{name: "heading", fragment: "#getting-started", resolved: true},
		{name: "missing", fragment: "#nowhere", resolved: false},
		{name: "wrong case", fragment: "#Invalid-Caps", resolved: false, caseMatch: "invalid-caps"},
		{name: "bare hash", fragment: "#", resolved: true},
		{name: "top", fragment: "#top", resolved: true},
		{name: "line reference", fragment: "#L10-L20", resolved: true},
		{name: "percent encoded", fragment: "#caf%C3%A9", resolved: true},
		{name: "decomposed", fragment: "#cafe\u0301", resolved: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			target := anchors.Resolve(tt.fragment)
			assert.Equal(t, tt.fragment, target.Fragment)
			assert.Equal(t, tt.resolved, target.Resolved)
			assert.Equal(t, tt.caseMatch, target.CaseMatch)
		})
	}
}

func TestAnchorMap_Unresolved(t *testing.T) {
	t.Parallel()

	anchors := refs.Collect(document.FromString("t.md", "# Valid Anchor\n"))

	got := anchors.Unresolved([]string{"#valid-anchor", "#Invalid-Caps", "#gone"})
	assert.Equal(t, []string{"#Invalid-Caps", "#gone"}, got)
	assert.Nil(t, anchors.Unresolved(nil))
	assert.Nil(t, anchors.ResolveAll(nil))
}

func TestFragmentID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "section", refs.FragmentID("#section"))
	assert.Equal(t, "a b", refs.FragmentID("#a%20b"))
	assert.Equal(t, "100%zz", refs.FragmentID("#100%zz"))
	assert.Empty(t, refs.FragmentID("#"))
}
