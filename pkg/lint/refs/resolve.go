// Package refs builds the set of anchors a Markdown document defines and
// resolves in-document fragment links against it.
//
// Resolution is advisory. It never changes validation counts; it only lets
// reports say which anchor links point nowhere.
package refs

import (
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Target is the outcome of resolving one fragment.
type Target struct {
	// Fragment is the fragment as written, including the leading '#'.
	Fragment string

	// Resolved reports whether the fragment names an anchor in the document.
	Resolved bool

	// CaseMatch is the anchor ID that matches Fragment ignoring case, set only
	// when the exact fragment did not resolve.
	CaseMatch string
}

// Resolve resolves a single fragment such as "#installation".
//
// The empty fragment ("#"), "#top" and GitHub line references (#L10,
// #L10-L20) always resolve. Percent-encoded fragments are decoded before
// lookup.
func (m *AnchorMap) Resolve(fragment string) Target {
	target := Target{Fragment: fragment}
	id := FragmentID(fragment)

	switch {
	case id == "", strings.EqualFold(id, "top"), isLineReference(id):
		target.Resolved = true
	case m.Has(id):
		target.Resolved = true
	default:
		if anchor := m.LookupIgnoreCase(id); anchor != nil {
			target.CaseMatch = anchor.ID
		}
	}
	return target
}

// ResolveAll resolves fragments in order.
func (m *AnchorMap) ResolveAll(fragments []string) []Target {
	if len(fragments) == 0 {
		return nil
	}
	out := make([]Target, 0, len(fragments))
	for _, fragment := range fragments {
		out = append(out, m.Resolve(fragment))
	}
	return out
}

// Unresolved returns the fragments that do not resolve, in order.
func (m *AnchorMap) Unresolved(fragments []string) []string {
	var out []string
	for _, target := range m.ResolveAll(fragments) {
		if !target.Resolved {
			out = append(out, target.Fragment)
		}
	}
	return out
}

// FragmentID strips the leading '#', decodes percent escapes and
// NFC-normalizes the remainder.
func FragmentID(fragment string) string {
	id := strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	if decoded, err := url.PathUnescape(id); err == nil {
		id = decoded
	}
	return norm.NFC.String(id)
}

// isLineReference matches GitHub's line syntax: L20, L19C5, L19C5-L21C11.
func isLineReference(id string) bool {
	if len(id) < 2 || (id[0] != 'L' && id[0] != 'l') {
		return false
	}
	for i := 1; i < len(id); i++ {
		ch := id[i]
		if ch >= '0' && ch <= '9' {
			return true
		}
		if ch != 'C' && ch != 'c' && ch != '-' {
			return false
		}
	}
	return false
}
