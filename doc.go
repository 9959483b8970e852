// Package resumeprint converts a restricted resume-markdown dialect into
// a print-ready HTML document, and optionally into a PDF using headless
// Chrome.
//
// # Quick Start
//
// Create a service, export, and close when done:
//
//	svc := resumeprint.New()
//	defer svc.Close()
//
//	doc, err := svc.ExportHTML(ctx, resumeprint.Input{
//	    Markdown: "# Ada Lovelace\n\n## Experience\n- Analyst",
//	    Title:    "Ada Lovelace",
//	})
//
// ExportHTML cannot fail on malformed input: the dialect's parser is
// total, and anything it does not recognize degrades to literal text.
// Use ExportPDF to additionally print the document via Chrome.
//
// # Export Pipeline
//
// The export process follows these stages:
//
//  1. Block classification (headings, list items, paragraphs, raw
//     markup passthrough, blank separators), one block per input line
//  2. Inline span resolution (**bold**, *italic*) per block
//  3. Fragment rendering with adjacent list items grouped into one <ul>
//  4. Document assembly around a fixed A4 print stylesheet
//  5. Optional PDF printing via headless Chrome (go-rod)
//
// Stages 1-4 are pure functions over the input string; concurrent
// exports share no state.
//
// # The Dialect
//
// Lines starting with "# ", "## ", "### " are headings; "- " starts a
// list item; a line whose first non-whitespace character is '<' passes
// through as pre-rendered markup; blank lines separate blocks. Inline
// text may use **bold** and *italic*. Nothing else is interpreted.
//
// # Browser Requirements
//
// PDF printing requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run
// (~/.cache/rod/browser/). Use ROD_BROWSER_BIN to specify a custom
// Chrome binary; the sandbox is disabled automatically under CI.
package resumeprint
