package resumeprint

import "fmt"

// DefaultTitle is used when the caller supplies no display title.
const DefaultTitle = "Resume"

// printStylesheet is the fixed print stylesheet embedded in every
// assembled document. The numeric values (page size, margins, point
// sizes) are part of the output contract: browsers print the document
// as-is, so changing them changes every exported resume.
const printStylesheet = `@page {
  size: A4;
  margin: 1in;
}
body {
  font-family: Georgia, "Times New Roman", serif;
  font-size: 11pt;
  line-height: 1.4;
}
h1 {
  font-size: 24pt;
  font-weight: bold;
  text-align: center;
}
h2 {
  font-size: 14pt;
  font-weight: bold;
  border-bottom: 1pt solid #000;
  padding-bottom: 4pt;
}
h3 {
  font-size: 12pt;
  font-weight: bold;
}
p {
  text-align: justify;
  margin: 6pt 0;
}
ul {
  padding-left: 20pt;
}
li {
  margin-bottom: 4pt;
}
@media print {
  body {
    -webkit-print-color-adjust: exact;
    print-color-adjust: exact;
  }
}`

// documentShell wraps a title, the print stylesheet, and a rendered
// fragment into a complete HTML5 document.
const documentShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
%s
</body>
</html>`

// AssembleDocument wraps a rendered fragment in the print stylesheet and
// metadata shell, producing a self-contained document string with no
// external resource references. An empty title falls back to
// DefaultTitle. The title is escaped; the fragment is embedded as-is.
func AssembleDocument(fragment, title string) string {
	if title == "" {
		title = DefaultTitle
	}
	return fmt.Sprintf(documentShell, htmlEscaper.Replace(title), printStylesheet, fragment)
}
