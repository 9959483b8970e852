package resumeprint

import "strings"

// BlockKind identifies the structural variant of a Block.
type BlockKind int

// Block variants, in classification precedence order.
const (
	BlockHeading BlockKind = iota
	BlockListItem
	BlockParagraph
	BlockRaw
	BlockBlank
)

// Block is one structural unit of the document, derived from exactly one
// input line. The classifier never reorders lines: the block sequence
// matches the input line order.
type Block struct {
	Kind  BlockKind
	Level int    // heading level (1-3), zero for other kinds
	Text  string // text after the prefix, or the verbatim line for BlockRaw
}

// Line prefixes recognized by the classifier. Order matters: "### " must
// be tested before "## " and "# ".
const (
	prefixH3   = "### "
	prefixH2   = "## "
	prefixH1   = "# "
	prefixItem = "- "
)

// ClassifyBlocks splits src into lines and classifies each line
// independently into exactly one Block. Classification is first-match:
// heading prefix, then list-item prefix, then raw markup (first
// non-whitespace character is '<'), then non-blank paragraph, then blank.
//
// A line consisting only of a heading prefix (e.g. "# ") is still a
// heading, with empty text.
func ClassifyBlocks(src string) []Block {
	lines := strings.Split(src, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, classifyLine(strings.TrimSuffix(line, "\r")))
	}
	return blocks
}

// classifyLine maps a single line to its Block.
func classifyLine(line string) Block {
	switch {
	case strings.HasPrefix(line, prefixH3):
		return Block{Kind: BlockHeading, Level: 3, Text: line[len(prefixH3):]}
	case strings.HasPrefix(line, prefixH2):
		return Block{Kind: BlockHeading, Level: 2, Text: line[len(prefixH2):]}
	case strings.HasPrefix(line, prefixH1):
		return Block{Kind: BlockHeading, Level: 1, Text: line[len(prefixH1):]}
	case strings.HasPrefix(line, prefixItem):
		return Block{Kind: BlockListItem, Text: line[len(prefixItem):]}
	}

	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "<"):
		// Already markup: pass the whole line through untouched.
		return Block{Kind: BlockRaw, Text: line}
	case trimmed != "":
		return Block{Kind: BlockParagraph, Text: line}
	default:
		return Block{Kind: BlockBlank}
	}
}
