package resumeprint

import (
	"fmt"
	"strings"
)

// renderGroup is one renderable unit: either a single non-list block or a
// run of list items collapsed into one list container. Grouping is the
// only transformation applied on top of the block order.
type renderGroup struct {
	block Block   // heading, paragraph, or raw passthrough
	items []Block // list-item run; non-nil means this group is a list
}

// htmlEscaper escapes the characters that are significant in HTML text
// content. Raw passthrough lines bypass it entirely.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// RenderFragment classifies src and renders the resulting block sequence
// to an HTML fragment. It is a pure function: the same input always
// yields a byte-identical fragment.
func RenderFragment(src string) string {
	return RenderBlocks(ClassifyBlocks(src))
}

// RenderBlocks renders a block sequence to an HTML fragment. Adjacent
// list items are grouped into a single <ul>; blank blocks render nothing.
func RenderBlocks(blocks []Block) string {
	groups := groupBlocks(blocks)

	var out strings.Builder
	for _, g := range groups {
		if g.items != nil {
			renderList(&out, g.items)
			continue
		}
		renderBlock(&out, g.block)
	}
	return strings.TrimSuffix(out.String(), "\n")
}

// groupBlocks folds the block sequence into renderable groups. A maximal
// contiguous run of list items becomes one group. A single blank between
// list items does not break the run; two or more consecutive blanks, or
// any other block kind, terminates it. Blanks produce no group of their
// own.
func groupBlocks(blocks []Block) []renderGroup {
	var groups []renderGroup
	var run []Block

	closeRun := func() {
		if run != nil {
			groups = append(groups, renderGroup{items: run})
			run = nil
		}
	}

	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		switch b.Kind {
		case BlockListItem:
			run = append(run, b)
		case BlockBlank:
			if run == nil {
				continue
			}
			// A lone blank keeps the run open when another item follows.
			if i+1 < len(blocks) && blocks[i+1].Kind == BlockListItem {
				continue
			}
			closeRun()
		default:
			closeRun()
			groups = append(groups, renderGroup{block: b})
		}
	}
	closeRun()

	return groups
}

// renderBlock emits a single non-list block followed by a newline.
func renderBlock(out *strings.Builder, b Block) {
	switch b.Kind {
	case BlockHeading:
		fmt.Fprintf(out, "<h%d>%s</h%d>\n", b.Level, renderSpans(ParseInline(b.Text)), b.Level)
	case BlockParagraph:
		fmt.Fprintf(out, "<p>%s</p>\n", renderSpans(ParseInline(b.Text)))
	case BlockRaw:
		out.WriteString(b.Text)
		out.WriteByte('\n')
	}
}

// renderList emits a list-item run as one <ul> container.
func renderList(out *strings.Builder, items []Block) {
	out.WriteString("<ul>\n")
	for _, item := range items {
		fmt.Fprintf(out, "<li>%s</li>\n", renderSpans(ParseInline(item.Text)))
	}
	out.WriteString("</ul>\n")
}

// renderSpans emits a span sequence as HTML, escaping literal text and
// recursing into emphasis children.
func renderSpans(spans []Span) string {
	var out strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case SpanText:
			out.WriteString(htmlEscaper.Replace(s.Text))
		case SpanBold:
			out.WriteString("<strong>")
			out.WriteString(renderSpans(s.Children))
			out.WriteString("</strong>")
		case SpanItalic:
			out.WriteString("<em>")
			out.WriteString(renderSpans(s.Children))
			out.WriteString("</em>")
		}
	}
	return out.String()
}
