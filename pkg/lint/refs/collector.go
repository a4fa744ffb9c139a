package refs

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/docgate/pkg/document"
)

// htmlAnchorPattern matches id="x" and name="x" attributes in raw HTML.
// Group 1 is the attribute name, group 2 the value.
var htmlAnchorPattern = regexp.MustCompile(`(?i)\b(id|name)\s*=\s*["']([^"']+)["']`)

// Collect parses the document and returns every anchor it defines:
// one per heading plus any id or name attribute found in raw HTML.
func Collect(doc *document.Document) *AnchorMap {
	anchors := NewAnchorMap()
	if doc == nil || doc.Len() == 0 {
		return anchors
	}

	src := []byte(doc.Text())
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	coll := &collector{anchors: anchors, src: src}
	_ = ast.Walk(root, coll.visit) //nolint:errcheck // visitor never returns error

	return anchors
}

// collector accumulates anchors while walking the goldmark AST.
type collector struct {
	anchors *AnchorMap
	src     []byte
}

func (c *collector) visit(node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	switch n := node.(type) {
	case *ast.Heading:
		c.collectHeading(n)
		// Inline HTML inside a heading still defines anchors.
		return ast.WalkContinue, nil
	case *ast.HTMLBlock:
		c.collectHTMLBlock(n)
		return ast.WalkSkipChildren, nil
	case *ast.RawHTML:
		c.collectRawHTML(n)
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

func (c *collector) collectHeading(node *ast.Heading) {
	title := plainText(node, c.src)
	if title == "" {
		return
	}

	line := 0
	if lines := node.Lines(); lines.Len() > 0 {
		line = c.lineAt(lines.At(0).Start)
	}
	c.anchors.AddFromHeading(title, line)
}

func (c *collector) collectHTMLBlock(node *ast.HTMLBlock) {
	lines := node.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		c.collectHTML(seg.Value(c.src), c.lineAt(seg.Start))
	}
	if node.HasClosure() {
		seg := node.ClosureLine
		c.collectHTML(seg.Value(c.src), c.lineAt(seg.Start))
	}
}

func (c *collector) collectRawHTML(node *ast.RawHTML) {
	segs := node.Segments
	for i := range segs.Len() {
		seg := segs.At(i)
		c.collectHTML(seg.Value(c.src), c.lineAt(seg.Start))
	}
}

func (c *collector) collectHTML(raw []byte, line int) {
	for _, match := range htmlAnchorPattern.FindAllSubmatch(raw, -1) {
		source := AnchorFromHTMLID
		if bytes.EqualFold(match[1], []byte("name")) {
			source = AnchorFromHTMLName
		}
		c.anchors.Add(&Anchor{
			ID:     string(match[2]),
			Source: source,
			Line:   line,
		})
	}
}

// lineAt converts a byte offset into a 1-based line number.
func (c *collector) lineAt(offset int) int {
	if offset > len(c.src) {
		offset = len(c.src)
	}
	return bytes.Count(c.src[:offset], []byte("\n")) + 1
}

// plainText concatenates the literal text beneath node, the way a
// renderer would show it with all markup removed.
func plainText(node ast.Node, src []byte) string {
	var buf bytes.Buffer
	writePlainText(&buf, node, src)
	return buf.String()
}

func writePlainText(buf *bytes.Buffer, node ast.Node, src []byte) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(src))
			if n.SoftLineBreak() || n.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(n.Value)
		case *ast.RawHTML:
			// Markup is not part of the slug.
		default:
			writePlainText(buf, child, src)
		}
	}
}
