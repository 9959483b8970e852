package resumeprint

import "strings"

// SpanKind identifies the variant of an inline Span.
type SpanKind int

// Span variants.
const (
	SpanText SpanKind = iota
	SpanBold
	SpanItalic
)

// Span is one inline fragment of a block's text: literal text, or an
// emphasis span wrapping recursively parsed children. A parsed span
// sequence covers the entire source text; every character ends up either
// in a SpanText or stripped as a delimiter.
type Span struct {
	Kind     SpanKind
	Text     string // literal content, only for SpanText
	Children []Span // inner spans, only for SpanBold/SpanItalic
}

// Emphasis delimiters.
const (
	boldDelim   = "**"
	italicDelim = "*"
)

// ParseInline resolves bold and italic delimiters in text into a span
// sequence. The scan is left to right over a byte cursor: at each
// position a bold pair is attempted first (nearest non-overlapping
// closing "**"), then an italic pair, and failing both the character is
// consumed as literal text. Parsing is total: it cannot fail, and
// unterminated delimiters degrade to literal text.
//
// For "***text***" the bold delimiter claims the first two asterisks and
// closes at the nearest "**", yielding a bold span containing the literal
// "*text" followed by a literal trailing "*". The dialect defines no
// triple-emphasis form; this rule exists only to keep the output
// deterministic.
func ParseInline(text string) []Span {
	var spans []Span
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			spans = append(spans, Span{Kind: SpanText, Text: literal.String()})
			literal.Reset()
		}
	}

	i := 0
	for i < len(text) {
		if strings.HasPrefix(text[i:], boldDelim) {
			inner := text[i+len(boldDelim):]
			if close := strings.Index(inner, boldDelim); close >= 0 {
				flush()
				spans = append(spans, Span{Kind: SpanBold, Children: ParseInline(inner[:close])})
				i += len(boldDelim) + close + len(boldDelim)
				continue
			}
			// Unterminated bold: both asterisks become literal text, and
			// the second one must not serve as an italic closer.
			literal.WriteString(boldDelim)
			i += len(boldDelim)
			continue
		}
		if text[i] == '*' {
			inner := text[i+len(italicDelim):]
			if close := strings.Index(inner, italicDelim); close >= 0 {
				flush()
				spans = append(spans, Span{Kind: SpanItalic, Children: ParseInline(inner[:close])})
				i += len(italicDelim) + close + len(italicDelim)
				continue
			}
		}

		// Literal byte. Delimiters are ASCII, so advancing one byte at a
		// time cannot split a multi-byte UTF-8 sequence around a match.
		literal.WriteByte(text[i])
		i++
	}

	flush()
	return spans
}
