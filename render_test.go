package resumeprint

import (
	"strings"
	"testing"
)

func TestRenderFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input renders nothing",
			input: "",
			want:  "",
		},
		{
			name:  "level 1 heading",
			input: "# Title",
			want:  "<h1>Title</h1>",
		},
		{
			name:  "level 2 heading",
			input: "## Sub",
			want:  "<h2>Sub</h2>",
		},
		{
			name:  "level 3 heading",
			input: "### Sub2",
			want:  "<h3>Sub2</h3>",
		},
		{
			name:  "plain paragraphs, one per non-blank line",
			input: "first\nsecond",
			want:  "<p>first</p>\n<p>second</p>",
		},
		{
			name:  "bold inside paragraph",
			input: "**bold**",
			want:  "<p><strong>bold</strong></p>",
		},
		{
			name:  "italic inside paragraph",
			input: "*italic*",
			want:  "<p><em>italic</em></p>",
		},
		{
			name:  "unterminated bold stays literal",
			input: "**bold",
			want:  "<p>**bold</p>",
		},
		{
			name:  "adjacent list items share one container",
			input: "- A\n- B",
			want:  "<ul>\n<li>A</li>\n<li>B</li>\n</ul>",
		},
		{
			name:  "single blank keeps a list run open",
			input: "- A\n\n- B",
			want:  "<ul>\n<li>A</li>\n<li>B</li>\n</ul>",
		},
		{
			name:  "double blank splits a list run",
			input: "- A\n\n\n- B",
			want:  "<ul>\n<li>A</li>\n</ul>\n<ul>\n<li>B</li>\n</ul>",
		},
		{
			name:  "paragraph interrupts a list run",
			input: "- A\nbetween\n- B",
			want:  "<ul>\n<li>A</li>\n</ul>\n<p>between</p>\n<ul>\n<li>B</li>\n</ul>",
		},
		{
			name:  "heading terminates a list run",
			input: "- A\n# H\n- B",
			want:  "<ul>\n<li>A</li>\n</ul>\n<h1>H</h1>\n<ul>\n<li>B</li>\n</ul>",
		},
		{
			name:  "raw markup passes through unwrapped and unescaped",
			input: "<div class=\"page-break\"></div>",
			want:  "<div class=\"page-break\"></div>",
		},
		{
			name:  "html-special characters escaped in text",
			input: "Tom & Jerry <3 >>",
			want:  "<p>Tom &amp; Jerry &lt;3 &gt;&gt;</p>",
		},
		{
			name:  "emphasis inside list items and headings",
			input: "## **Go** *fast*\n- **lead** role",
			want:  "<h2><strong>Go</strong> <em>fast</em></h2>\n<ul>\n<li><strong>lead</strong> role</li>\n</ul>",
		},
		{
			name:  "blank lines between paragraphs render nothing",
			input: "a\n\n\n\nb",
			want:  "<p>a</p>\n<p>b</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RenderFragment(tt.input)
			if got != tt.want {
				t.Errorf("RenderFragment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderFragment_ParagraphCountMatchesLines(t *testing.T) {
	t.Parallel()

	input := "one\ntwo\nthree\n\nfour"
	got := RenderFragment(input)

	if n := strings.Count(got, "<p>"); n != 4 {
		t.Errorf("RenderFragment() produced %d <p> elements, want 4:\n%s", n, got)
	}
}

func TestRenderFragment_ListNeverSplitsWithoutBoundary(t *testing.T) {
	t.Parallel()

	got := RenderFragment("- A\n- B\n- C")
	if n := strings.Count(got, "<ul>"); n != 1 {
		t.Errorf("RenderFragment() produced %d <ul> elements, want 1:\n%s", n, got)
	}
}

func TestRenderBlocks_Idempotent(t *testing.T) {
	t.Parallel()

	blocks := ClassifyBlocks("# T\n\n- a\n- b\n\ntext **bold**\n<hr>")

	first := RenderBlocks(blocks)
	second := RenderBlocks(blocks)
	if first != second {
		t.Errorf("RenderBlocks() is not deterministic:\nfirst:  %q\nsecond: %q", first, second)
	}
}
